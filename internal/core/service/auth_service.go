package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradefresh/quality-api/internal/api/metrics"
	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

// AuthService implements registration and the login variants.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Register creates a user with a freshly hashed password and returns it along
// with a session token. Duplicate email/username are rejected before insert;
// the unique indexes catch the remaining race at write time.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if input.Email == "" || input.Username == "" || input.Password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	role, ok := domain.ParseRole(input.Role)
	if !ok {
		return nil, "", domain.ErrInvalidRole
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, "", domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Role:         role,
		Username:     input.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, 0)
	if err != nil {
		return nil, "", err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user registered")

	return created, token, nil
}

// Login verifies credentials and issues a session token. A missing account and
// a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, 0)
	if err != nil {
		return nil, "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("login")

	return user, token, nil
}

// AdminLogin is the admin-only login variant: same credential check, then a
// strict role gate.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, token, err := s.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if user.Role != domain.RoleAdmin {
		s.log.Warn().Str("user_id", user.ID).Msg("admin login attempt by non-admin")
		return nil, "", domain.ErrForbidden
	}
	return user, token, nil
}

// CheckAdmin reports whether the given email belongs to an admin account.
func (s *AuthService) CheckAdmin(ctx context.Context, email string) (*ports.AdminCheck, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &ports.AdminCheck{
		IsAdmin: user.Role == domain.RoleAdmin,
		Email:   user.Email,
		Role:    user.Role,
	}, nil
}
