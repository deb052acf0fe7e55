package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gradefresh/quality-api/internal/core/ports"
)

// AuthHandler handles registration and the login variants.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns it with a session token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Role:     req.Role,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAuthResponse(user, token))
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAuthResponse(user, token))
}

// AdminLogin authenticates an admin account; non-admin credentials get 403.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAuthResponse(user, token))
}

// CheckAdmin reports whether an email belongs to an admin account. Used by the
// frontend to decide whether to show admin UI before the user logs in.
//
// @Summary      Check admin status by email
// @Tags         auth
// @Produce      json
// @Param        email  query     string  true  "Email to check"
// @Success      200    {object}  adminCheckResponse
// @Failure      404    {object}  errorResponse
// @Router       /admin/check [get]
func (h *AuthHandler) CheckAdmin(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	check, err := h.authService.CheckAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminCheckResponse{
		IsAdmin: check.IsAdmin,
		Email:   check.Email,
		Role:    string(check.Role),
	})
}
