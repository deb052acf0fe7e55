package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

type stubAdminService struct {
	stats *ports.RoleStats
	users []*domain.User
	err   error

	deletedID string
}

func (s *stubAdminService) Stats(context.Context) (*ports.RoleStats, error) {
	return s.stats, s.err
}

func (s *stubAdminService) ListUsers(context.Context) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubAdminService) DeleteUser(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deletedID = id
	return nil
}

func TestAdminHandler_Stats(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		stats: &ports.RoleStats{TotalUsers: 5, Exporters: 2, Importers: 1, Inspectors: 1, Admins: 1},
	})

	c, rec := jsonContext(http.MethodGet, "/api/admin/stats", "")
	if err := h.Stats(c); err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	var stats ports.RoleStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if stats.TotalUsers != 5 || stats.Exporters != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestAdminHandler_ListUsers_NoPasswordHashes(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		users: []*domain.User{
			{ID: "user_1", Email: "a@example.com", Role: domain.RoleExporter, PasswordHash: "$2a$10$secret"},
		},
	})

	c, rec := jsonContext(http.MethodGet, "/api/admin/users", "")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked into listing: %s", rec.Body.String())
	}

	var users []*domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(users) != 1 || users[0].ID != "user_1" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	svc := &stubAdminService{}
	h := NewAdminHandler(svc)

	c, rec := jsonContext(http.MethodDelete, "/api/admin/users/user_9", "")
	c.SetParamNames("id")
	c.SetParamValues("user_9")

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.deletedID != "user_9" {
		t.Fatalf("expected user_9 deleted, got %q", svc.deletedID)
	}
}

func TestAdminHandler_DeleteUser_AdminTarget(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{err: domain.ErrForbidden})

	c, _ := jsonContext(http.MethodDelete, "/api/admin/users/user_1", "")
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := h.DeleteUser(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
