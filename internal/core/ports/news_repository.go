package ports

import (
	"context"

	"github.com/gradefresh/quality-api/internal/core/domain"
)

// NewsPatch holds the updatable fields of a news item. Nil fields are left
// untouched, mirroring a partial $set update.
type NewsPatch struct {
	Title       *string
	Content     *string
	IsPublished *bool
}

// NewsRepository defines persistence operations for news items.
type NewsRepository interface {
	Create(ctx context.Context, news *domain.News) (*domain.News, error)
	FindByID(ctx context.Context, id string) (*domain.News, error)
	// List returns news sorted by created_at descending. When onlyPublished is
	// true, unpublished items are filtered out.
	List(ctx context.Context, onlyPublished bool, limit int64) ([]*domain.News, error)
	Update(ctx context.Context, id string, patch NewsPatch) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}
