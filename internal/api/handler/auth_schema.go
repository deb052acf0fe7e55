package handler

import (
	"time"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required,oneof=admin exporter importer inspector"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// adminLoginRequest also binds form fields: the admin console posts
// application/x-www-form-urlencoded.
type adminLoginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// authResponse is the flat login/registration payload: the user's public
// fields plus the freshly issued bearer token.
type authResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
}

func toAuthResponse(user *domain.User, token string) authResponse {
	return authResponse{
		ID:          user.ID,
		Name:        user.Name,
		Phone:       user.Phone,
		Email:       user.Email,
		Role:        string(user.Role),
		Username:    user.Username,
		CreatedAt:   user.CreatedAt,
		AccessToken: token,
		TokenType:   "bearer",
	}
}

type adminCheckResponse struct {
	IsAdmin bool   `json:"is_admin"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}
