package studioStore

import (
	"BlogStudio/internal/api/studio"
	"BlogStudio/internal/entity"
	"io"
	"net/http"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

const categoryTreeJSON = `{"data":[
	{"_id":"c1","name":"Nutrition","subcategories":[
		{"_id":"s1","name":"Diet Plans"},
		{"_id":"s2","name":"Supplements"}
	]},
	{"_id":"c2","name":"Recovery","subcategories":[]}
]}`

func taxonomyHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/blogs/categories" && r.Method == http.MethodGet {
			w.Write([]byte(categoryTreeJSON))
			return
		}
		w.Write([]byte(`[]`))
	}
}

func TestSelectCategoryMirrorsNameAndClearsSubcategory(t *testing.T) {
	stores, _ := newTestStores(t, taxonomyHandler(t))
	stores.Taxonomy.Load(context.Background())

	stores.Taxonomy.SelectCategory("c1")
	stores.Taxonomy.SelectSubcategory("s2")
	stores.Taxonomy.SelectCategory("c2")

	snap := stores.Taxonomy.Snapshot()
	if snap.SelectedCategoryID != "c2" || snap.SelectedSubcategoryID != "" {
		t.Errorf("selection = (%q, %q), want (c2, empty)", snap.SelectedCategoryID, snap.SelectedSubcategoryID)
	}

	draft := stores.Form.DraftValue()
	if draft.Category != "Recovery" || draft.SubCategory != "" {
		t.Errorf("draft taxonomy = (%q, %q), want (Recovery, empty)", draft.Category, draft.SubCategory)
	}
}

func TestSelectCategoryUnknownIDClearsName(t *testing.T) {
	stores, _ := newTestStores(t, taxonomyHandler(t))
	stores.Taxonomy.Load(context.Background())

	stores.Taxonomy.SelectCategory("c1")
	stores.Taxonomy.SelectCategory("")

	if draft := stores.Form.DraftValue(); draft.Category != "" {
		t.Errorf("Category = %q, want cleared", draft.Category)
	}
}

func TestReconcileMatchesCaseInsensitively(t *testing.T) {
	stores, _ := newTestStores(t, taxonomyHandler(t))
	stores.Taxonomy.Load(context.Background())

	stores.Form.LoadFromEntity(entity.BlogSummary{
		ID:          "b1",
		Category:    "nutrition",
		SubCategory: "DIET PLANS",
	})

	snap := stores.Taxonomy.Snapshot()
	if snap.SelectedCategoryID != "c1" {
		t.Errorf("SelectedCategoryID = %q, want c1", snap.SelectedCategoryID)
	}
	if snap.SelectedSubcategoryID != "s1" {
		t.Errorf("SelectedSubcategoryID = %q, want s1", snap.SelectedSubcategoryID)
	}
}

func TestReconcileNeverOverridesActiveSelection(t *testing.T) {
	stores, _ := newTestStores(t, taxonomyHandler(t))
	stores.Taxonomy.Load(context.Background())

	stores.Taxonomy.SelectCategory("c2")
	stores.Taxonomy.ReconcileFromDraft(Draft{Category: "Nutrition"})

	if snap := stores.Taxonomy.Snapshot(); snap.SelectedCategoryID != "c2" {
		t.Errorf("SelectedCategoryID = %q, want c2 kept", snap.SelectedCategoryID)
	}
}

func TestReconcileSkipsUnknownNames(t *testing.T) {
	stores, _ := newTestStores(t, taxonomyHandler(t))
	stores.Taxonomy.Load(context.Background())

	stores.Form.LoadFromEntity(entity.BlogSummary{ID: "b1", Category: "Folklore"})

	if snap := stores.Taxonomy.Snapshot(); snap.SelectedCategoryID != "" {
		t.Errorf("SelectedCategoryID = %q, want empty for unknown name", snap.SelectedCategoryID)
	}
}

func TestLoadReconcilesSelectionForLoadedDraft(t *testing.T) {
	stores, _ := newTestStores(t, taxonomyHandler(t))

	// Entity arrives before the taxonomy does.
	stores.Form.LoadFromEntity(entity.BlogSummary{ID: "b1", Category: "Recovery"})
	if snap := stores.Taxonomy.Snapshot(); snap.SelectedCategoryID != "" {
		t.Fatalf("selection should be empty before categories load")
	}

	stores.Taxonomy.Load(context.Background())

	if snap := stores.Taxonomy.Snapshot(); snap.SelectedCategoryID != "c2" {
		t.Errorf("SelectedCategoryID = %q, want c2 after load", snap.SelectedCategoryID)
	}
}

func TestAddCategoryBlankNameFailsLocally(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	})
	stores, _ := newTestStores(t, handler)

	err := stores.Taxonomy.AddCategory(context.Background(), "   ")
	if err != studio.ErrCategoryNameRequired {
		t.Fatalf("AddCategory() = %v, want %v", err, studio.ErrCategoryNameRequired)
	}
	if requests != 0 {
		t.Errorf("made %d API requests, want 0", requests)
	}

	kind, message := stores.Status.Snapshot()
	if kind != StatusError || message != studio.ErrCategoryNameRequired.Error() {
		t.Errorf("status = (%q, %q)", kind, message)
	}
}

func TestAddCategoryCreatesReloadsAndSelects(t *testing.T) {
	var postedName string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/blogs/categories":
			body, _ := io.ReadAll(r.Body)
			var req struct {
				Name string `json:"name"`
			}
			jsoniter.Unmarshal(body, &req)
			postedName = req.Name
			w.Write([]byte(`{"_id":"c3","name":"Mindfulness"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/blogs/categories":
			w.Write([]byte(`{"data":[{"_id":"c3","name":"Mindfulness","subcategories":[]}]}`))
		default:
			w.Write([]byte(`[]`))
		}
	})
	stores, _ := newTestStores(t, handler)

	if err := stores.Taxonomy.AddCategory(context.Background(), "  Mindfulness  "); err != nil {
		t.Fatalf("AddCategory() returned error: %v", err)
	}

	if postedName != "Mindfulness" {
		t.Errorf("posted name = %q, want trimmed", postedName)
	}

	snap := stores.Taxonomy.Snapshot()
	if snap.SelectedCategoryID != "c3" {
		t.Errorf("SelectedCategoryID = %q, want c3", snap.SelectedCategoryID)
	}
	if len(snap.Categories) != 1 {
		t.Errorf("Categories = %d entries, want reloaded list", len(snap.Categories))
	}

	if draft := stores.Form.DraftValue(); draft.Category != "Mindfulness" {
		t.Errorf("draft Category = %q, want mirrored", draft.Category)
	}

	kind, message := stores.Status.Snapshot()
	if kind != StatusSuccess || message != "Category added." {
		t.Errorf("status = (%q, %q)", kind, message)
	}
}

func TestAddSubcategoryRequiresSelectedCategory(t *testing.T) {
	stores, _ := newTestStores(t, taxonomyHandler(t))

	err := stores.Taxonomy.AddSubcategory(context.Background(), "", "Diet Plans")
	if err != studio.ErrSelectCategoryFirst {
		t.Fatalf("AddSubcategory() = %v, want %v", err, studio.ErrSelectCategoryFirst)
	}
}

func TestAddSubcategoryCreatesAndSelects(t *testing.T) {
	var postedPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			postedPath = r.URL.Path
			w.Write([]byte(`{"_id":"s9","name":"Hydration"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/blogs/categories":
			w.Write([]byte(`{"data":[{"_id":"c1","name":"Nutrition","subcategories":[{"_id":"s9","name":"Hydration"}]}]}`))
		default:
			w.Write([]byte(`[]`))
		}
	})
	stores, _ := newTestStores(t, handler)
	stores.Taxonomy.SelectCategory("c1")

	if err := stores.Taxonomy.AddSubcategory(context.Background(), "c1", "Hydration"); err != nil {
		t.Fatalf("AddSubcategory() returned error: %v", err)
	}

	if postedPath != "/blogs/categories/c1/subcategories" {
		t.Errorf("posted to %q", postedPath)
	}

	snap := stores.Taxonomy.Snapshot()
	if snap.SelectedSubcategoryID != "s9" {
		t.Errorf("SelectedSubcategoryID = %q, want s9", snap.SelectedSubcategoryID)
	}
	if draft := stores.Form.DraftValue(); draft.SubCategory != "Hydration" {
		t.Errorf("draft SubCategory = %q, want mirrored", draft.SubCategory)
	}

	kind, message := stores.Status.Snapshot()
	if kind != StatusSuccess || message != "Subcategory added." {
		t.Errorf("status = (%q, %q)", kind, message)
	}
}

func TestLoadFailureSetsBannerAndKeepsTree(t *testing.T) {
	fail := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(categoryTreeJSON))
	})
	stores, _ := newTestStores(t, handler)
	stores.Taxonomy.Load(context.Background())

	fail = true
	if err := stores.Taxonomy.Load(context.Background()); err == nil {
		t.Fatal("Load() should fail")
	}

	if got := len(stores.Taxonomy.Snapshot().Categories); got != 2 {
		t.Errorf("Categories = %d after failed reload, want 2 kept", got)
	}
	kind, message := stores.Status.Snapshot()
	if kind != StatusError || message != "Unable to load categories right now." {
		t.Errorf("status = (%q, %q)", kind, message)
	}
}
