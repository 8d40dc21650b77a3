package domain

import (
	"context"
	"time"
)

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
}

type UserRepository interface {
	GetByEmail(context.Context, string) (User, error)
	GetByID(context.Context, int64) (User, error)
	Create(context.Context, *User) error
}
