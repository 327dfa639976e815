package studioStore

import (
	"BlogStudio/internal/api/studio"
	"BlogStudio/internal/entity"
	"BlogStudio/pkg/remote"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type TaxonomySnapshot struct {
	Categories            []entity.Category
	SelectedCategoryID    string
	SelectedSubcategoryID string
}

type categoryNameRequest struct {
	Name string `json:"name"`
}

type taxonomyStore struct {
	log    *logrus.Logger
	remote remote.IRemote
	status *StatusBanner
	form   *formStore

	mu                    sync.Mutex
	categories            []entity.Category
	selectedCategoryID    string
	selectedSubcategoryID string
}

func newTaxonomyStore(log *logrus.Logger, remoteClient remote.IRemote, status *StatusBanner) *taxonomyStore {
	return &taxonomyStore{
		log:    log,
		remote: remoteClient,
		status: status,
	}
}

func (t *taxonomyStore) Snapshot() TaxonomySnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	categories := make([]entity.Category, len(t.categories))
	copy(categories, t.categories)

	return TaxonomySnapshot{
		Categories:            categories,
		SelectedCategoryID:    t.selectedCategoryID,
		SelectedSubcategoryID: t.selectedSubcategoryID,
	}
}

// Load replaces the category tree wholesale from the API, then re-derives the
// selection from the draft's names in case an entity was loaded before the
// taxonomy arrived.
func (t *taxonomyStore) Load(ctx context.Context) error {
	var envelope struct {
		Data []entity.Category `json:"data"`
	}
	if err := t.remote.Get(ctx, "/blogs/categories", &envelope); err != nil {
		t.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to load categories")
		t.status.SetError("Unable to load categories right now.")
		return err
	}

	t.mu.Lock()
	t.categories = envelope.Data
	t.mu.Unlock()

	t.ReconcileFromDraft(t.form.DraftValue())
	return nil
}

// SelectCategory adopts the id, clears the subcategory selection and mirrors
// the category's name into the draft. An unknown id mirrors an empty name,
// matching a cleared dropdown.
func (t *taxonomyStore) SelectCategory(id string) {
	t.mu.Lock()
	t.selectedCategoryID = id
	t.selectedSubcategoryID = ""

	name := ""
	for _, category := range t.categories {
		if category.ID == id {
			name = category.Name
			break
		}
	}
	t.mu.Unlock()

	t.form.setTaxonomyNames(name, true)
}

func (t *taxonomyStore) SelectSubcategory(id string) {
	t.mu.Lock()
	t.selectedSubcategoryID = id

	name := ""
	for _, subcategory := range t.subcategoriesLocked() {
		if subcategory.ID == id {
			name = subcategory.Name
			break
		}
	}
	t.mu.Unlock()

	t.form.setSubCategoryName(name)
}

// subcategoriesLocked returns the subcategories of the selected category.
func (t *taxonomyStore) subcategoriesLocked() []entity.Subcategory {
	for _, category := range t.categories {
		if category.ID == t.selectedCategoryID {
			return category.Subcategories
		}
	}
	return nil
}

// AddCategory rejects blank names locally, creates the category, refetches
// the full list so it is authoritative-fresh, then selects the created id and
// mirrors its name into the draft.
func (t *taxonomyStore) AddCategory(ctx context.Context, name string) error {
	t.status.Clear()

	name = strings.TrimSpace(name)
	if name == "" {
		t.status.SetError(studio.ErrCategoryNameRequired.Error())
		return studio.ErrCategoryNameRequired
	}

	var created entity.Category
	if err := t.remote.Post(ctx, "/blogs/categories", categoryNameRequest{Name: name}, &created); err != nil {
		t.log.WithFields(logrus.Fields{
			"name":  name,
			"error": err.Error(),
		}).Error("Failed to create category")
		t.status.SetError(err.Error())
		return err
	}

	if err := t.Load(ctx); err != nil {
		t.log.WithFields(logrus.Fields{
			"category_id": created.ID,
			"error":       err.Error(),
		}).Warn("Category list reload after create failed")
	}

	t.mu.Lock()
	t.selectedCategoryID = created.ID
	t.selectedSubcategoryID = ""
	t.mu.Unlock()

	t.form.setTaxonomyNames(created.Name, true)
	t.status.SetSuccess("Category added.")
	return nil
}

func (t *taxonomyStore) AddSubcategory(ctx context.Context, categoryID, name string) error {
	t.status.Clear()

	if categoryID == "" {
		t.status.SetError(studio.ErrSelectCategoryFirst.Error())
		return studio.ErrSelectCategoryFirst
	}

	name = strings.TrimSpace(name)
	if name == "" {
		t.status.SetError(studio.ErrSubcategoryNameRequired.Error())
		return studio.ErrSubcategoryNameRequired
	}

	var created entity.Subcategory
	if err := t.remote.Post(ctx, "/blogs/categories/"+categoryID+"/subcategories", categoryNameRequest{Name: name}, &created); err != nil {
		t.log.WithFields(logrus.Fields{
			"category_id": categoryID,
			"name":        name,
			"error":       err.Error(),
		}).Error("Failed to create subcategory")
		t.status.SetError(err.Error())
		return err
	}

	if err := t.Load(ctx); err != nil {
		t.log.WithFields(logrus.Fields{
			"subcategory_id": created.ID,
			"error":          err.Error(),
		}).Warn("Category list reload after create failed")
	}

	t.mu.Lock()
	t.selectedSubcategoryID = created.ID
	t.mu.Unlock()

	t.form.setSubCategoryName(created.Name)
	t.status.SetSuccess("Subcategory added.")
	return nil
}

// ReconcileFromDraft adopts an id-backed selection for the draft's free-text
// category names by case-insensitive match. A loaded entity carries names,
// not ids, so this is what re-arms the dependent dropdowns. It never
// overrides a selection that is already active.
func (t *taxonomyStore) ReconcileFromDraft(d Draft) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.selectedCategoryID == "" && d.Category != "" {
		for _, category := range t.categories {
			if strings.EqualFold(category.Name, d.Category) {
				t.selectedCategoryID = category.ID
				break
			}
		}
	}

	if t.selectedSubcategoryID == "" && d.SubCategory != "" && t.selectedCategoryID != "" {
		for _, subcategory := range t.subcategoriesLocked() {
			if strings.EqualFold(subcategory.Name, d.SubCategory) {
				t.selectedSubcategoryID = subcategory.ID
				break
			}
		}
	}
}

// onDraftEvent is the form store subscription. A wholesale draft swap drops
// the active selection before re-deriving it from the new draft.
func (t *taxonomyStore) onDraftEvent(e DraftEvent) {
	if e.Replaced {
		t.mu.Lock()
		t.selectedCategoryID = ""
		t.selectedSubcategoryID = ""
		t.mu.Unlock()
	}

	t.ReconcileFromDraft(e.Draft)
}
