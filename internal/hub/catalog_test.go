package hub

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedLister blocks each ListApps call until its gate is released, so tests
// can control the order in which responses arrive.
type gatedLister struct {
	mu      sync.Mutex
	pending []chan struct{}
	results []listResult
}

type listResult struct {
	apps []domain.Application
	err  error
}

func (g *gatedLister) ListApps(ctx context.Context) ([]domain.Application, error) {
	g.mu.Lock()
	gate := make(chan struct{})
	g.pending = append(g.pending, gate)
	result := g.results[len(g.pending)-1]
	g.mu.Unlock()
	<-gate
	return result.apps, result.err
}

func (g *gatedLister) release(i int) {
	g.mu.Lock()
	gate := g.pending[i]
	g.mu.Unlock()
	close(gate)
}

func TestCatalogRefreshLoadsRecords(t *testing.T) {
	apps := []domain.Application{{ID: 1, Name: "Alpha"}}
	lister := &staticLister{apps: apps}
	catalog := NewCatalog(lister)

	require.NoError(t, catalog.Refresh(context.Background()))
	assert.Equal(t, CatalogLoaded, catalog.State())
	assert.Equal(t, apps, catalog.Snapshot())
}

func TestCatalogRefreshFailureKeepsSnapshot(t *testing.T) {
	lister := &staticLister{apps: []domain.Application{{ID: 1, Name: "Alpha"}}}
	catalog := NewCatalog(lister)
	require.NoError(t, catalog.Refresh(context.Background()))

	lister.err = errors.New("boom")
	err := catalog.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, CatalogFailed, catalog.State())
	assert.Equal(t, "boom", catalog.LastError())
	// previous records still served to avoid flicker
	assert.Len(t, catalog.Snapshot(), 1)
}

func TestCatalogStaleRefreshDiscarded(t *testing.T) {
	first := []domain.Application{{ID: 1, Name: "Old"}}
	second := []domain.Application{{ID: 2, Name: "New"}}
	lister := &gatedLister{results: []listResult{{apps: first}, {apps: second}}}
	catalog := NewCatalog(lister)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = catalog.Refresh(context.Background())
		}()
		// wait until the call is registered before issuing the next one
		waitFor(t, func() bool {
			lister.mu.Lock()
			defer lister.mu.Unlock()
			return len(lister.pending) == i+1
		})
	}

	// second response arrives first, then the stale first response
	lister.release(1)
	waitFor(t, func() bool { return catalog.State() == CatalogLoaded })
	lister.release(0)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, second, catalog.Snapshot())
}

func TestCatalogSnapshotDuringLoading(t *testing.T) {
	first := []domain.Application{{ID: 1, Name: "Alpha"}}
	lister := &gatedLister{results: []listResult{{apps: first}, {apps: first}}}
	catalog := NewCatalog(lister)

	go catalog.Refresh(context.Background())
	waitFor(t, func() bool {
		lister.mu.Lock()
		defer lister.mu.Unlock()
		return len(lister.pending) == 1
	})
	lister.release(0)
	waitFor(t, func() bool { return catalog.State() == CatalogLoaded })

	done := make(chan struct{})
	go func() {
		catalog.Refresh(context.Background())
		close(done)
	}()
	waitFor(t, func() bool {
		lister.mu.Lock()
		defer lister.mu.Unlock()
		return len(lister.pending) == 2
	})

	assert.Equal(t, CatalogLoading, catalog.State())
	assert.Equal(t, first, catalog.Snapshot())

	lister.release(1)
	<-done
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

type staticLister struct {
	mu   sync.Mutex
	apps []domain.Application
	err  error
}

func (s *staticLister) ListApps(ctx context.Context) ([]domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Application, len(s.apps))
	copy(out, s.apps)
	return out, nil
}
