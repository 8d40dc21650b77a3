package hub

import (
	"context"
	"sync"

	"github.com/alshawwaf/dev-hub/internal/domain"
)

type CatalogState int

const (
	CatalogIdle CatalogState = iota
	CatalogLoading
	CatalogLoaded
	CatalogFailed
)

// Lister is the read side of the backend contract the catalog depends on.
type Lister interface {
	ListApps(ctx context.Context) ([]domain.Application, error)
}

// Catalog is the sole owner of the in-memory application snapshot. Mutations
// never touch it directly; they go through a Refresh round trip so the local
// copy cannot diverge from the backend.
type Catalog struct {
	mu        sync.Mutex
	lister    Lister
	seq       uint64
	state     CatalogState
	records   []domain.Application
	lastError string
}

func NewCatalog(lister Lister) *Catalog {
	return &Catalog{lister: lister}
}

// Refresh reads the full collection and replaces the snapshot. A Refresh
// started while another is in flight supersedes it: only the most recently
// issued call may apply its response. A superseded call discards its result
// and returns nil, leaving state to the newer call.
func (c *Catalog) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = CatalogLoading
	c.mu.Unlock()

	records, err := c.lister.ListApps(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return nil
	}
	if err != nil {
		c.state = CatalogFailed
		c.lastError = err.Error()
		return err
	}
	c.state = CatalogLoaded
	c.records = records
	c.lastError = ""
	return nil
}

func (c *Catalog) State() CatalogState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the last successfully loaded records. It keeps serving
// them while a newer Refresh is loading or after one has failed, so a
// consumer never sees the list flicker empty.
func (c *Catalog) Snapshot() []domain.Application {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Application, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}
