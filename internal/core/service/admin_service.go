package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

const listUsersLimit = 100

// AdminService implements admin-only user management.
type AdminService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, log: log}
}

// Stats returns the total user count and the count per role.
func (s *AdminService) Stats(ctx context.Context) (*ports.RoleStats, error) {
	stats := &ports.RoleStats{}

	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Exporters, err = s.users.CountByRole(ctx, domain.RoleExporter); err != nil {
		return nil, err
	}
	if stats.Importers, err = s.users.CountByRole(ctx, domain.RoleImporter); err != nil {
		return nil, err
	}
	if stats.Inspectors, err = s.users.CountByRole(ctx, domain.RoleInspector); err != nil {
		return nil, err
	}
	if stats.Admins, err = s.users.CountByRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return stats, nil
}

// ListUsers returns all non-admin users.
func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx, ports.ListUsersFilter{
		ExcludeRole: domain.RoleAdmin,
		Limit:       listUsersLimit,
	})
}

// DeleteUser removes a user by id. Admin accounts cannot be deleted through
// this path.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Str("role", string(user.Role)).Msg("user deleted")
	return nil
}
