package hub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alshawwaf/dev-hub/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempTokenStore(t *testing.T) *FileTokenStore {
	t.Helper()
	return NewFileTokenStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestSessionLoginLogout(t *testing.T) {
	session := NewSession(nil)
	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.IsAdmin())

	identity := api.Identity{ID: 1, Email: "admin@cpdemo.ca", IsAdmin: true}
	require.NoError(t, session.Login("token-1", identity))
	assert.True(t, session.IsAuthenticated())
	assert.True(t, session.IsAdmin())
	assert.Equal(t, "token-1", session.Token())

	got, ok := session.Identity()
	assert.True(t, ok)
	assert.Equal(t, identity, got)

	require.NoError(t, session.Logout())
	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, session.Token())
	_, ok = session.Identity()
	assert.False(t, ok)
}

func TestSessionIsAdminFalseForRegularUser(t *testing.T) {
	session := NewSession(nil)
	require.NoError(t, session.Login("token-1", api.Identity{ID: 2, Email: "user@cpdemo.ca"}))
	assert.True(t, session.IsAuthenticated())
	assert.False(t, session.IsAdmin())
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	store := tempTokenStore(t)
	identity := api.Identity{ID: 1, Email: "admin@cpdemo.ca", IsAdmin: true}

	session := NewSession(store)
	require.NoError(t, session.Login("token-1", identity))

	restored := NewSession(store)
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "token-1", restored.Token())
	got, _ := restored.Identity()
	assert.Equal(t, identity, got)
}

func TestSessionLogoutClearsPersistedToken(t *testing.T) {
	store := tempTokenStore(t)
	session := NewSession(store)
	require.NoError(t, session.Login("token-1", api.Identity{ID: 1}))
	require.NoError(t, session.Logout())

	restored := NewSession(store)
	assert.False(t, restored.IsAuthenticated())
}

func TestSessionCorruptStoreMeansUnauthenticated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	session := NewSession(NewFileTokenStore(path))
	assert.False(t, session.IsAuthenticated())
}

func TestFileTokenStoreMissingFile(t *testing.T) {
	store := tempTokenStore(t)
	_, _, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	// clearing a missing file is not an error
	assert.NoError(t, store.Clear())
}
