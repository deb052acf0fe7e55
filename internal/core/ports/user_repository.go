package ports

import (
	"context"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

// ListUsersFilter carries query parameters for listing users.
type ListUsersFilter struct {
	ExcludeRole domain.Role // non-empty = omit users with this role
	Limit       int64       // max rows returned (0 = repository default)
}

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
