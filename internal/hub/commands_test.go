package hub

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/alshawwaf/dev-hub/internal/api"
	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu      sync.Mutex
	calls   int
	err     error
	started chan struct{}
	gate    chan struct{}
}

func (f *fakeWriter) record() error {
	f.mu.Lock()
	f.calls++
	err := f.err
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.gate != nil {
		<-f.gate
	}
	return err
}

func (f *fakeWriter) CreateApp(ctx context.Context, input api.AppInput) (domain.Application, error) {
	return domain.Application{}, f.record()
}

func (f *fakeWriter) UpdateApp(ctx context.Context, id int64, input api.AppInput) (domain.Application, error) {
	return domain.Application{}, f.record()
}

func (f *fakeWriter) DeleteApp(ctx context.Context, id int64) error {
	return f.record()
}

func (f *fakeWriter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func adminSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(nil)
	require.NoError(t, s.Login("token", api.Identity{ID: 1, Email: "admin@cpdemo.ca", IsAdmin: true}))
	return s
}

func validInput() AppInput {
	return AppInput{
		Name:        "Alpha",
		Description: "first app",
		URL:         "https://alpha.cpdemo.ca",
		GithubURL:   "https://github.com/acme/alpha",
		Category:    "AI",
		Icon:        "app",
		IsLive:      true,
	}
}

func newTestCommands(t *testing.T, writer *fakeWriter, session *Session) (*Commands, *staticLister) {
	t.Helper()
	lister := &staticLister{}
	catalog := NewCatalog(lister)
	return NewCommands(writer, session, catalog), lister
}

func TestCreateValidInputSubmitsAndRefreshes(t *testing.T) {
	writer := &fakeWriter{}
	session := adminSession(t)
	lister := &countingLister{}
	catalog := NewCatalog(lister)
	commands := NewCommands(writer, session, catalog)

	require.NoError(t, commands.Create(context.Background(), validInput()))
	assert.Equal(t, 1, writer.callCount())
	assert.Equal(t, 1, lister.callCount())
	assert.Equal(t, CatalogLoaded, catalog.State())
}

func TestCreateEmptyNameBlocksSubmission(t *testing.T) {
	writer := &fakeWriter{}
	commands, _ := newTestCommands(t, writer, adminSession(t))

	input := validInput()
	input.Name = ""
	err := commands.Create(context.Background(), input)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Name", validationErr.Field)
	assert.Zero(t, writer.callCount(), "no request may be issued on validation failure")
}

func TestCreateMalformedURLBlocksSubmission(t *testing.T) {
	writer := &fakeWriter{}
	commands, _ := newTestCommands(t, writer, adminSession(t))

	input := validInput()
	input.URL = "not a url"
	err := commands.Create(context.Background(), input)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, writer.callCount())
}

func TestCommandsRequireAdmin(t *testing.T) {
	writer := &fakeWriter{}

	// unauthenticated
	commands, _ := newTestCommands(t, writer, NewSession(nil))
	assert.ErrorIs(t, commands.Create(context.Background(), validInput()), ErrNotAdmin)

	// authenticated but not admin
	session := NewSession(nil)
	require.NoError(t, session.Login("token", api.Identity{ID: 2, Email: "user@cpdemo.ca"}))
	commands, _ = newTestCommands(t, writer, session)
	assert.ErrorIs(t, commands.Update(context.Background(), 1, validInput()), ErrNotAdmin)
	assert.ErrorIs(t, commands.Delete(context.Background(), 1, true), ErrNotAdmin)

	assert.Zero(t, writer.callCount())
}

func TestDeleteWithoutConfirmationIssuesNoRequest(t *testing.T) {
	writer := &fakeWriter{}
	commands, _ := newTestCommands(t, writer, adminSession(t))

	err := commands.Delete(context.Background(), 1, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Zero(t, writer.callCount())
}

func TestReinvocationWhileSubmittingIsRejected(t *testing.T) {
	writer := &fakeWriter{
		started: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	commands, _ := newTestCommands(t, writer, adminSession(t))
	started := writer.started

	done := make(chan error, 1)
	go func() {
		done <- commands.Create(context.Background(), validInput())
	}()
	<-started

	assert.True(t, commands.Submitting())
	assert.ErrorIs(t, commands.Delete(context.Background(), 1, true), ErrBusy)

	close(writer.gate)
	require.NoError(t, <-done)
	assert.False(t, commands.Submitting())
	assert.Equal(t, 1, writer.callCount())
}

func TestUnauthorizedResponseExpiresSession(t *testing.T) {
	writer := &fakeWriter{err: &api.Error{StatusCode: http.StatusUnauthorized, Detail: "Could not validate credentials"}}
	session := adminSession(t)
	commands, _ := newTestCommands(t, writer, session)

	err := commands.Update(context.Background(), 1, validInput())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, session.IsAuthenticated())
}

func TestNotFoundResponseMapsToAppNotFound(t *testing.T) {
	writer := &fakeWriter{err: &api.Error{StatusCode: http.StatusNotFound, Detail: "Application not found"}}
	commands, _ := newTestCommands(t, writer, adminSession(t))

	err := commands.Update(context.Background(), 42, validInput())
	assert.ErrorIs(t, err, ErrAppNotFound)
	assert.ErrorContains(t, err, "Application not found")
}

func TestBackendErrorSurfacedVerbatim(t *testing.T) {
	writer := &fakeWriter{err: &api.Error{StatusCode: http.StatusConflict, Detail: "name already in use"}}
	commands, _ := newTestCommands(t, writer, adminSession(t))

	err := commands.Create(context.Background(), validInput())
	assert.ErrorContains(t, err, "name already in use")
}

type countingLister struct {
	mu    sync.Mutex
	calls int
}

func (c *countingLister) ListApps(ctx context.Context) ([]domain.Application, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return []domain.Application{}, nil
}

func (c *countingLister) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
