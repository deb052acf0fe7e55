package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gradefresh/quality-api/internal/core/ports"
)

type createNewsRequest struct {
	Title       string `json:"title"   validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsPublished *bool  `json:"is_published"`
}

type updateNewsRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"is_published"`
}

// NewsHandler handles CMS operations. The admin routes sit behind Auth and
// RBAC(admin); ListPublished is public.
type NewsHandler struct {
	newsService ports.NewsService
}

func NewNewsHandler(newsService ports.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// List returns all news items, newest first.
//
// @Summary      List all news
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.News
// @Failure      401  {object}  errorResponse
// @Router       /admin/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	items, err := h.newsService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single news item by id.
//
// @Summary      Get a news item
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "News id"
// @Success      200  {object}  domain.News
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	item, err := h.newsService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create adds a news item authored by the acting admin.
//
// @Summary      Create a news item
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNewsRequest  true  "News item"
// @Success      201   {object}  domain.News
// @Failure      400   {object}  errorResponse
// @Router       /admin/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	item, err := h.newsService.Create(c.Request().Context(), ports.CreateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: published,
	}, user.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update applies a partial update to a news item.
//
// @Summary      Update a news item
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "News id"
// @Param        body  body      updateNewsRequest  true  "Fields to update"
// @Success      200   {object}  domain.News
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	var req updateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.newsService.Update(c.Request().Context(), c.Param("id"), ports.UpdateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a news item.
//
// @Summary      Delete a news item
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "News id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	if err := h.newsService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "news deleted successfully"})
}

// ListPublished returns the public feed: published items only.
//
// @Summary      List published news
// @Tags         news
// @Produce      json
// @Success      200  {array}  domain.News
// @Router       /news [get]
func (h *NewsHandler) ListPublished(c echo.Context) error {
	items, err := h.newsService.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
