package domain

import (
	"context"
	"time"
)

type Application struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	GithubURL   string     `json:"github_url"`
	Category    string     `json:"category"`
	Icon        string     `json:"icon"`
	IsLive      bool       `json:"is_live"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type ApplicationRepository interface {
	GetAll(context.Context) ([]Application, error)
	GetByID(context.Context, int64) (Application, error)
	Create(context.Context, *Application) error
	Update(context.Context, *Application) error
	Delete(context.Context, int64) error
	Count(context.Context) (int64, error)
}
