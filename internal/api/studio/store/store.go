package studioStore

import (
	"BlogStudio/internal/api/studio"
	"BlogStudio/internal/entity"
	"BlogStudio/pkg/remote"
	"BlogStudio/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// IFormStore owns the editable draft of a single blog entity.
type IFormStore interface {
	Snapshot() FormSnapshot
	DraftValue() Draft
	Mode() string
	SelectedID() string
	LoadFromEntity(e entity.BlogSummary)
	Reset()
	UpdateField(name, value string) error
	SetSpotlight(on bool)
	AddFaq()
	UpdateFaq(index int, field, value string) error
	RemoveFaq(index int) error
	FaqCount() int
	StageFile(key string, f studio.StagedFile) error
	ClearFiles(key string) error
	ValidateForSubmit() error
	BuildPayload() (*studio.Payload, error)
	Submit(ctx context.Context) error
	Subscribe(listener DraftListener)
}

// IListStore owns the fetched blog collection, search query and page cursor.
type IListStore interface {
	Snapshot() ListSnapshot
	Load(ctx context.Context, query string) error
	Reload(ctx context.Context) error
	SetPage(page int)
	CurrentPageSlice() []entity.BlogSummary
	PatchCounters(id string, patch CounterPatch)
	Like(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Get(id string) (entity.BlogSummary, bool)
	Total() int
}

// ITaxonomyStore owns the category tree and the id-backed selection that
// drives the editor's dependent dropdowns.
type ITaxonomyStore interface {
	Snapshot() TaxonomySnapshot
	Load(ctx context.Context) error
	SelectCategory(id string)
	SelectSubcategory(id string)
	AddCategory(ctx context.Context, name string) error
	AddSubcategory(ctx context.Context, categoryID, name string) error
	ReconcileFromDraft(d Draft)
}

// libraryReloader is the slice of the list store the form store needs after a
// successful save.
type libraryReloader interface {
	Reload(ctx context.Context) error
}

// editorResetter is the slice of the form store the list store needs when the
// currently edited entity is deleted.
type editorResetter interface {
	SelectedID() string
	Reset()
}

// Stores bundles the three session stores plus the shared status banner.
type Stores struct {
	Form     IFormStore
	List     IListStore
	Taxonomy ITaxonomyStore
	Status   *StatusBanner
}

func New(log *logrus.Logger, remoteClient remote.IRemote, utilsInstance utils.IUtils) *Stores {
	status := NewStatusBanner()

	form := newFormStore(log, remoteClient, utilsInstance, status)
	list := newListStore(log, remoteClient, status)
	taxonomy := newTaxonomyStore(log, remoteClient, status)

	form.library = list
	list.editor = form
	taxonomy.form = form
	form.Subscribe(taxonomy.onDraftEvent)

	return &Stores{
		Form:     form,
		List:     list,
		Taxonomy: taxonomy,
		Status:   status,
	}
}
