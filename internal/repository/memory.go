package repository

import (
	"context"
	"sync"
	"time"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/samber/lo"
)

// MemoryApp is an in-memory domain.ApplicationRepository. It backs the demo
// mode of the server and the handler tests, where a database is not available.
type MemoryApp struct {
	mu     sync.Mutex
	nextID int64
	apps   []domain.Application
}

func NewMemoryApp() *MemoryApp {
	return &MemoryApp{nextID: 1}
}

// GetAll implements domain.ApplicationRepository.
func (m *MemoryApp) GetAll(ctx context.Context) ([]domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Application, len(m.apps))
	copy(out, m.apps)
	return out, nil
}

// GetByID implements domain.ApplicationRepository.
func (m *MemoryApp) GetByID(ctx context.Context, id int64) (domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := lo.Find(m.apps, func(a domain.Application) bool { return a.ID == id })
	if !ok {
		return domain.Application{}, domain.ErrNotFound
	}
	return app, nil
}

// Create implements domain.ApplicationRepository.
func (m *MemoryApp) Create(ctx context.Context, app *domain.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	app.ID = m.nextID
	m.nextID++
	app.CreatedAt = time.Now().UTC()
	m.apps = append(m.apps, *app)
	return nil
}

// Update implements domain.ApplicationRepository.
func (m *MemoryApp) Update(ctx context.Context, app *domain.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.apps {
		if m.apps[i].ID == app.ID {
			now := time.Now().UTC()
			app.CreatedAt = m.apps[i].CreatedAt
			app.UpdatedAt = &now
			m.apps[i] = *app
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete implements domain.ApplicationRepository.
func (m *MemoryApp) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.apps {
		if m.apps[i].ID == id {
			m.apps = append(m.apps[:i], m.apps[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Count implements domain.ApplicationRepository.
func (m *MemoryApp) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.apps)), nil
}

// MemoryUser is an in-memory domain.UserRepository.
type MemoryUser struct {
	mu     sync.Mutex
	nextID int64
	users  []domain.User
}

func NewMemoryUser() *MemoryUser {
	return &MemoryUser{nextID: 1}
}

// GetByEmail implements domain.UserRepository.
func (m *MemoryUser) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := lo.Find(m.users, func(u domain.User) bool { return u.Email == email })
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

// GetByID implements domain.UserRepository.
func (m *MemoryUser) GetByID(ctx context.Context, id int64) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := lo.Find(m.users, func(u domain.User) bool { return u.ID == id })
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

// Create implements domain.UserRepository.
func (m *MemoryUser) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if lo.SomeBy(m.users, func(u domain.User) bool { return u.Email == user.Email }) {
		return domain.ErrConflict
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now().UTC()
	m.users = append(m.users, *user)
	return nil
}
