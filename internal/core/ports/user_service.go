package ports

import (
	"context"

	"github.com/teampulse/admin-console/internal/core/domain"
)

// CreateUserInput carries all data needed to create a managed user.
type CreateUserInput struct {
	Name       string
	Email      string
	Role       domain.Role
	Phone      string
	Department string
	// PrincipalID identifies the acting operator for the audit trail.
	PrincipalID string
	// IdempotencyKey, when non-empty, makes the create safe to retry.
	IdempotencyKey string
}

// UpdateUserInput carries the mutable fields of a managed user.
type UpdateUserInput struct {
	Name        string
	Email       string
	Role        domain.Role
	Phone       string
	Department  string
	PrincipalID string
}

// UserService defines use-case operations for user management.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id, principalID string) error
}
