package ports

import (
	"context"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

// CreateNewsInput carries the fields for a new news item.
type CreateNewsInput struct {
	Title       string
	Content     string
	IsPublished bool
}

// UpdateNewsInput carries a partial update; nil fields are not modified.
type UpdateNewsInput struct {
	Title       *string
	Content     *string
	IsPublished *bool
}

// NewsService defines the CMS use cases. The admin operations are gated by the
// transport layer; ListPublished is the public feed.
type NewsService interface {
	List(ctx context.Context) ([]*domain.News, error)
	Get(ctx context.Context, id string) (*domain.News, error)
	// Create stamps the acting admin's display name as the author.
	Create(ctx context.Context, input CreateNewsInput, author string) (*domain.News, error)
	Update(ctx context.Context, id string, input UpdateNewsInput) (*domain.News, error)
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context) ([]*domain.News, error)
}
