package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if filter.ExcludeRole != "" && u.Role == filter.ExcludeRole {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newAuthSvc(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, NewTokenService("secret", time.Hour), zerolog.Nop())
}

func registerInput(email, username string, role domain.Role) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Test User",
		Phone:    "+1234567890",
		Email:    email,
		Role:     string(role),
		Username: username,
		Password: "s3cret99",
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	user, token, err := svc.Register(context.Background(), registerInput("alice@example.com", "alice", domain.RoleExporter))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "s3cret99" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret99")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleExporter {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_HashesAreSalted(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	u1, _, err := svc.Register(context.Background(), registerInput("a@example.com", "a", domain.RoleImporter))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	u2, _, err := svc.Register(context.Background(), registerInput("b@example.com", "b", domain.RoleImporter))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if u1.PasswordHash == u2.PasswordHash {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	in := registerInput("bob@example.com", "bob", domain.RoleExporter)
	in.Role = "superuser"
	if _, _, err := svc.Register(context.Background(), in); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	if _, _, err := svc.Register(context.Background(), registerInput("bob@example.com", "bob", domain.RoleExporter)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, _, err := svc.Register(context.Background(), registerInput("bob@example.com", "other", domain.RoleExporter))
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("duplicate register must not create a second record, have %d", n)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	_, _, _ = svc.Register(context.Background(), registerInput("bob@example.com", "bob", domain.RoleExporter))
	if _, _, err := svc.Register(context.Background(), registerInput("bob2@example.com", "bob", domain.RoleExporter)); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	registered, _, err := svc.Register(context.Background(), registerInput("carol@example.com", "carol", domain.RoleInspector))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The token asserts only the subject; role is resolved from the store.
	subject, err := NewTokenService("secret", time.Hour).Validate(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if subject != registered.ID {
		t.Fatalf("expected subject %s, got %s", registered.ID, subject)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	_, _, _ = svc.Register(context.Background(), registerInput("dave@example.com", "dave", domain.RoleExporter))
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	// A missing account is indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// AdminLogin / CheckAdmin
// ---------------------------------------------------------------------------

func TestAuthService_AdminLogin_NonAdminForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	_, _, _ = svc.Register(context.Background(), registerInput("eve@example.com", "eve", domain.RoleExporter))
	if _, _, err := svc.AdminLogin(context.Background(), "eve@example.com", "s3cret99"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthService_AdminLogin_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	_, _, _ = svc.Register(context.Background(), registerInput("root@example.com", "root", domain.RoleAdmin))
	user, token, err := svc.AdminLogin(context.Background(), "root@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if user.Role != domain.RoleAdmin || token == "" {
		t.Fatalf("unexpected result: role=%s token=%q", user.Role, token)
	}
}

func TestAuthService_CheckAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	_, _, _ = svc.Register(context.Background(), registerInput("root@example.com", "root", domain.RoleAdmin))
	_, _, _ = svc.Register(context.Background(), registerInput("user@example.com", "user", domain.RoleImporter))

	check, err := svc.CheckAdmin(context.Background(), "root@example.com")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !check.IsAdmin || check.Role != domain.RoleAdmin {
		t.Fatalf("expected admin, got %+v", check)
	}

	check, err = svc.CheckAdmin(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if check.IsAdmin {
		t.Fatalf("expected non-admin, got %+v", check)
	}

	if _, err := svc.CheckAdmin(context.Background(), "ghost@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
