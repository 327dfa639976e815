package studioStore

import "sync"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StatusBanner is the single user-facing status shared by every store. A
// failed operation only ever writes here; it never crashes a request.
type StatusBanner struct {
	mu      sync.RWMutex
	kind    string
	message string
}

func NewStatusBanner() *StatusBanner {
	return &StatusBanner{}
}

func (b *StatusBanner) SetSuccess(message string) {
	b.set(StatusSuccess, message)
}

func (b *StatusBanner) SetError(message string) {
	b.set(StatusError, message)
}

func (b *StatusBanner) Clear() {
	b.set("", "")
}

func (b *StatusBanner) set(kind, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.kind = kind
	b.message = message
}

func (b *StatusBanner) Snapshot() (kind, message string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.kind, b.message
}
