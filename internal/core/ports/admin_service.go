package ports

import (
	"context"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

// RoleStats holds per-role user counts for the admin dashboard.
type RoleStats struct {
	TotalUsers int64 `json:"total_users"`
	Exporters  int64 `json:"exporters"`
	Importers  int64 `json:"importers"`
	Inspectors int64 `json:"inspectors"`
	Admins     int64 `json:"admins"`
}

// AdminService defines admin-only user management operations.
type AdminService interface {
	Stats(ctx context.Context) (*RoleStats, error)
	// ListUsers returns all non-admin users. Password hashes are never part of
	// the serialized form (structural, via the domain type).
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// DeleteUser removes a user by id. Deleting an admin account fails with
	// domain.ErrForbidden.
	DeleteUser(ctx context.Context, id string) error
}
