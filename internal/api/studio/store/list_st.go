package studioStore

import (
	"BlogStudio/internal/entity"
	"BlogStudio/pkg/remote"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	pageSize     = 3
	listingLimit = 50
)

type ListSnapshot struct {
	Blogs       []entity.BlogSummary
	Query       string
	CurrentPage int
	TotalPages  int
	PageSize    int
	Loading     bool
}

type CounterPatch struct {
	LikesCount  *int `json:"likesCount"`
	SharesCount *int `json:"sharesCount"`
	ViewsCount  *int `json:"viewsCount"`
}

// blogListPayload accepts either a bare array or a {data: [...]} envelope.
// Any other JSON shape decodes to an empty list rather than an error.
type blogListPayload []entity.BlogSummary

func (p *blogListPayload) UnmarshalJSON(data []byte) error {
	var bare []entity.BlogSummary
	if err := jsoniter.Unmarshal(data, &bare); err == nil {
		*p = bare
		return nil
	}

	var envelope struct {
		Data []entity.BlogSummary `json:"data"`
	}
	if err := jsoniter.Unmarshal(data, &envelope); err == nil {
		*p = envelope.Data
		return nil
	}

	*p = nil
	return nil
}

type listStore struct {
	log    *logrus.Logger
	remote remote.IRemote
	status *StatusBanner
	editor editorResetter

	mu          sync.Mutex
	blogs       []entity.BlogSummary
	query       string
	currentPage int
	loading     bool

	// loadGen orders list fetches so a slow response never overwrites the
	// result of a newer one.
	loadGen uint64
}

func newListStore(log *logrus.Logger, remoteClient remote.IRemote, status *StatusBanner) *listStore {
	return &listStore{
		log:         log,
		remote:      remoteClient,
		status:      status,
		currentPage: 1,
	}
}

func (l *listStore) Snapshot() ListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	blogs := make([]entity.BlogSummary, len(l.blogs))
	copy(blogs, l.blogs)

	return ListSnapshot{
		Blogs:       blogs,
		Query:       l.query,
		CurrentPage: l.currentPage,
		TotalPages:  l.totalPagesLocked(),
		PageSize:    pageSize,
		Loading:     l.loading,
	}
}

func (l *listStore) totalPagesLocked() int {
	pages := (len(l.blogs) + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// clampPageLocked keeps the cursor valid when the backing list shrinks.
func (l *listStore) clampPageLocked() {
	totalPages := l.totalPagesLocked()
	if l.currentPage > totalPages {
		l.currentPage = totalPages
	}
	if l.currentPage < 1 {
		l.currentPage = 1
	}
}

// Load fetches the unfiltered listing when query is empty and the search
// endpoint otherwise. The previous list is kept untouched on failure, and a
// stale response that lost the race to a newer Load is discarded.
func (l *listStore) Load(ctx context.Context, query string) error {
	gen := atomic.AddUint64(&l.loadGen, 1)

	l.mu.Lock()
	l.loading = true
	l.query = query
	l.mu.Unlock()

	path := "/blogs?limit=" + strconv.Itoa(listingLimit)
	if query != "" {
		path = "/blogs/search?q=" + url.QueryEscape(query)
	}

	var payload blogListPayload
	err := l.remote.Get(ctx, path, &payload)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != atomic.LoadUint64(&l.loadGen) {
		l.log.WithFields(logrus.Fields{
			"query": query,
		}).Debug("Discarding stale blog list response")
		return nil
	}

	l.loading = false

	if err != nil {
		l.log.WithFields(logrus.Fields{
			"query": query,
			"error": err.Error(),
		}).Error("Failed to load blogs")
		l.status.SetError("Unable to load blogs right now.")
		return err
	}

	l.blogs = payload
	l.clampPageLocked()
	return nil
}

func (l *listStore) Reload(ctx context.Context) error {
	l.mu.Lock()
	query := l.query
	l.mu.Unlock()
	return l.Load(ctx, query)
}

func (l *listStore) SetPage(page int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	totalPages := l.totalPagesLocked()
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	l.currentPage = page
}

// CurrentPageSlice returns the contiguous slice of blogs for the current page.
func (l *listStore) CurrentPageSlice() []entity.BlogSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := (l.currentPage - 1) * pageSize
	if start >= len(l.blogs) {
		return []entity.BlogSummary{}
	}

	end := start + pageSize
	if end > len(l.blogs) {
		end = len(l.blogs)
	}

	slice := make([]entity.BlogSummary, end-start)
	copy(slice, l.blogs[start:end])
	return slice
}

// PatchCounters merges a counter update into the one matching entity. Unknown
// ids mutate nothing; this is what keeps like/share from forcing a reload.
func (l *listStore) PatchCounters(id string, patch CounterPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.blogs {
		if l.blogs[i].ID != id {
			continue
		}
		if patch.LikesCount != nil {
			l.blogs[i].LikesCount = *patch.LikesCount
		}
		if patch.SharesCount != nil {
			l.blogs[i].SharesCount = *patch.SharesCount
		}
		if patch.ViewsCount != nil {
			l.blogs[i].ViewsCount = *patch.ViewsCount
		}
		return
	}
}

// Like posts the action and patches the returned count. The displayed count
// is authoritative from the server; there is no optimistic increment.
func (l *listStore) Like(ctx context.Context, id string) error {
	var out struct {
		LikesCount int `json:"likesCount"`
	}
	if err := l.remote.Post(ctx, "/blogs/"+id+"/like", nil, &out); err != nil {
		l.log.WithFields(logrus.Fields{
			"id":    id,
			"error": err.Error(),
		}).Error("Failed to like blog")
		l.status.SetError("Unable to update likes right now.")
		return err
	}

	l.PatchCounters(id, CounterPatch{LikesCount: &out.LikesCount})
	return nil
}

func (l *listStore) Share(ctx context.Context, id string) error {
	var out struct {
		SharesCount int `json:"sharesCount"`
	}
	if err := l.remote.Post(ctx, "/blogs/"+id+"/share", nil, &out); err != nil {
		l.log.WithFields(logrus.Fields{
			"id":    id,
			"error": err.Error(),
		}).Error("Failed to share blog")
		l.status.SetError("Unable to update shares right now.")
		return err
	}

	l.PatchCounters(id, CounterPatch{SharesCount: &out.SharesCount})
	return nil
}

// Delete removes the blog remotely, drops the editor back to creating mode
// when it was editing that blog, and reloads with the current query.
func (l *listStore) Delete(ctx context.Context, id string) error {
	l.status.Clear()

	if err := l.remote.Delete(ctx, "/blogs/"+id); err != nil {
		l.log.WithFields(logrus.Fields{
			"id":    id,
			"error": err.Error(),
		}).Error("Failed to delete blog")
		l.status.SetError(err.Error())
		return err
	}

	l.status.SetSuccess("Blog deleted.")

	if l.editor.SelectedID() == id {
		l.editor.Reset()
	}

	return l.Reload(ctx)
}

func (l *listStore) Get(id string) (entity.BlogSummary, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, blog := range l.blogs {
		if blog.ID == id {
			return blog, true
		}
	}
	return entity.BlogSummary{}, false
}

func (l *listStore) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.blogs)
}
