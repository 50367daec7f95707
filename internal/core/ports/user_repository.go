package ports

import (
	"context"

	"github.com/teampulse/admin-console/internal/core/domain"
)

// UserRepository defines persistence operations for managed users.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail is used to enforce email uniqueness on create/update.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
