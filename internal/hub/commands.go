package hub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/alshawwaf/dev-hub/internal/api"
	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrBusy is returned when a command is invoked while a previous
	// submission is still in flight. Re-invocation is rejected, not queued.
	ErrBusy = errors.New("a submission is already in flight")
	// ErrNotAdmin is returned when the session lacks admin privileges.
	// Mutations are admin-only.
	ErrNotAdmin = errors.New("admin session required")
	// ErrConfirmationRequired is returned by Delete when the caller has not
	// confirmed the deletion. No request is issued.
	ErrConfirmationRequired = errors.New("deletion requires confirmation")
	// ErrSessionExpired is returned when the backend rejects the session
	// token. The session has been logged out by the time the caller sees it.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrAppNotFound is returned when the target record no longer exists.
	ErrAppNotFound = errors.New("application no longer exists")
)

// ValidationError is a client-side pre-submission failure; nothing was sent.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is missing or invalid", e.Field)
}

// AppInput is the structured input for create and update. All fields except
// Icon and IsLive are required; the backend validates again and stays
// authoritative.
type AppInput struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	URL         string `validate:"required,url"`
	GithubURL   string `validate:"required,url"`
	Category    string `validate:"required"`
	Icon        string
	IsLive      bool
}

// AppWriter is the write side of the backend contract.
type AppWriter interface {
	CreateApp(ctx context.Context, input api.AppInput) (domain.Application, error)
	UpdateApp(ctx context.Context, id int64, input api.AppInput) (domain.Application, error)
	DeleteApp(ctx context.Context, id int64) error
}

// Commands submits catalog mutations. One submission may be in flight at a
// time; a successful submission triggers a catalog refresh before the
// command reports success. In-flight submissions are never cancelled.
type Commands struct {
	mu         sync.Mutex
	submitting bool

	writer   AppWriter
	session  *Session
	catalog  *Catalog
	validate *validator.Validate
}

func NewCommands(writer AppWriter, session *Session, catalog *Catalog) *Commands {
	return &Commands{
		writer:   writer,
		session:  session,
		catalog:  catalog,
		validate: validator.New(),
	}
}

func (c *Commands) Create(ctx context.Context, input AppInput) error {
	if !c.session.IsAdmin() {
		return ErrNotAdmin
	}
	if err := c.validateInput(input); err != nil {
		return err
	}
	return c.submit(ctx, func(ctx context.Context) error {
		_, err := c.writer.CreateApp(ctx, input.toAPI())
		return err
	})
}

func (c *Commands) Update(ctx context.Context, id int64, input AppInput) error {
	if !c.session.IsAdmin() {
		return ErrNotAdmin
	}
	if err := c.validateInput(input); err != nil {
		return err
	}
	return c.submit(ctx, func(ctx context.Context) error {
		_, err := c.writer.UpdateApp(ctx, id, input.toAPI())
		return err
	})
}

// Delete requires an explicit confirmation signal; without it no request is
// issued and the record stays untouched.
func (c *Commands) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !c.session.IsAdmin() {
		return ErrNotAdmin
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	return c.submit(ctx, func(ctx context.Context) error {
		return c.writer.DeleteApp(ctx, id)
	})
}

// Submitting reports whether a submission is currently in flight.
func (c *Commands) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

func (c *Commands) validateInput(input AppInput) error {
	err := c.validate.Struct(input)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return &ValidationError{Field: validationErrors[0].Field()}
	}
	return err
}

func (c *Commands) submit(ctx context.Context, op func(ctx context.Context) error) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrBusy
	}
	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	if err := op(ctx); err != nil {
		return c.mapError(err)
	}
	return c.catalog.Refresh(ctx)
}

// mapError turns backend rejections into the hub's error vocabulary. A 401
// means the persisted token is stale: the session is cleared so the next
// interaction starts from the login screen.
func (c *Commands) mapError(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			_ = c.session.Logout()
			return ErrSessionExpired
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrAppNotFound, apiErr)
		}
	}
	return err
}

func (in AppInput) toAPI() api.AppInput {
	return api.AppInput{
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		GithubURL:   in.GithubURL,
		Category:    in.Category,
		Icon:        in.Icon,
		IsLive:      in.IsLive,
	}
}
