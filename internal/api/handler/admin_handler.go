package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gradefresh/quality-api/internal/core/ports"
)

// AdminHandler handles admin-only user management. All routes are behind the
// Auth and RBAC(admin) middleware.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Stats returns user counts per role for the admin dashboard.
//
// @Summary      Admin dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.RoleStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers returns all non-admin users. Password hashes are never serialized.
//
// @Summary      List non-admin users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser removes a non-admin user by id. Admin targets get 403.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

type messageResponse struct {
	Message string `json:"message"`
}
