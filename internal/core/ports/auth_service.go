package ports

import (
	"context"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new user account.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Role     string
	Username string
	Password string
}

// AdminCheck reports whether an email belongs to an admin account.
type AdminCheck struct {
	IsAdmin bool
	Email   string
	Role    domain.Role
}

// AuthService implements registration and the login variants. Login methods
// return the authenticated user together with a freshly issued session token.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// AdminLogin behaves like Login but additionally fails with
	// domain.ErrForbidden when the account's role is not admin.
	AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error)
	CheckAdmin(ctx context.Context, email string) (*AdminCheck, error)
}
