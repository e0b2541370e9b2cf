package repository

import (
	"context"

	"github.com/gbmfoods/admin-api/internal/domain/entity"
)

// UserRepository provides read access to marketplace customer accounts.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
}

// AgentRepository provides read access to delivery agents.
type AgentRepository interface {
	List(ctx context.Context) ([]entity.Agent, error)
}

// AdminRepository provides lookup of staff accounts for authentication.
type AdminRepository interface {
	// GetByEmail returns apperror.ErrNotFound when no staff account exists
	// for the given email.
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
