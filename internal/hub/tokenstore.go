package hub

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alshawwaf/dev-hub/internal/api"
)

const sessionFileName = "session.json"

// FileTokenStore keeps the session credential in a single JSON file under
// the user config dir, the CLI equivalent of the browser's local storage key.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// DefaultFileTokenStore places the session file under the user config dir,
// unless DEVHUB_SESSION_FILE overrides the location.
func DefaultFileTokenStore() (*FileTokenStore, error) {
	if path := os.Getenv("DEVHUB_SESSION_FILE"); path != "" {
		return &FileTokenStore{path: path}, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileTokenStore{path: filepath.Join(configDir, "dev-hub", sessionFileName)}, nil
}

type storedSession struct {
	Token string       `json:"token"`
	User  api.Identity `json:"user"`
}

// Load implements TokenStore.
func (f *FileTokenStore) Load() (string, api.Identity, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", api.Identity{}, false, nil
		}
		return "", api.Identity{}, false, err
	}
	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", api.Identity{}, false, err
	}
	if stored.Token == "" {
		return "", api.Identity{}, false, nil
	}
	return stored.Token, stored.User, true, nil
}

// Save implements TokenStore.
func (f *FileTokenStore) Save(token string, identity api.Identity) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(storedSession{Token: token, User: identity})
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

// Clear implements TokenStore.
func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
