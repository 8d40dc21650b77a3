package hub

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alshawwaf/dev-hub/internal/api"
)

// ErrInvalidCredentials is returned when the backend rejects a login
// attempt. There is no retry or lockout handling on the client side.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Hub wires the state containers to one API client. The session supplies
// the bearer token for every authenticated request the client sends.
type Hub struct {
	Session  *Session
	Catalog  *Catalog
	Commands *Commands

	client *api.Client
}

func New(baseURL string, store TokenStore) *Hub {
	session := NewSession(store)
	client := api.NewClient(baseURL, session)
	catalog := NewCatalog(client)
	return &Hub{
		Session:  session,
		Catalog:  catalog,
		Commands: NewCommands(client, session, catalog),
		client:   client,
	}
}

// Login exchanges credentials for a token and stores it in the session. A
// 401-class rejection surfaces as ErrInvalidCredentials wrapping the
// backend's own message.
func (h *Hub) Login(ctx context.Context, username string, password string) error {
	result, err := h.client.Login(ctx, username, password)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %v", ErrInvalidCredentials, apiErr)
		}
		return err
	}
	return h.Session.Login(result.AccessToken, result.User)
}

func (h *Hub) Logout() error {
	return h.Session.Logout()
}
