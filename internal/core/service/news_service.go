package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

const (
	adminNewsLimit  = 100
	publicNewsLimit = 50
)

// NewsService implements the CMS use cases.
type NewsService struct {
	repo ports.NewsRepository
	log  zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, log zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, log: log}
}

func (s *NewsService) List(ctx context.Context) ([]*domain.News, error) {
	return s.repo.List(ctx, false, adminNewsLimit)
}

func (s *NewsService) Get(ctx context.Context, id string) (*domain.News, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NewsService) Create(ctx context.Context, input ports.CreateNewsInput, author string) (*domain.News, error) {
	now := time.Now().UTC()
	news := &domain.News{
		Title:       input.Title,
		Content:     input.Content,
		Author:      author,
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.repo.Create(ctx, news)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("news_id", created.ID).Str("author", author).Msg("news created")
	return created, nil
}

func (s *NewsService) Update(ctx context.Context, id string, input ports.UpdateNewsInput) (*domain.News, error) {
	return s.repo.Update(ctx, id, ports.NewsPatch{
		Title:       input.Title,
		Content:     input.Content,
		IsPublished: input.IsPublished,
	})
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("news_id", id).Msg("news deleted")
	return nil
}

// ListPublished is the public feed: published items only, newest first.
func (s *NewsService) ListPublished(ctx context.Context) ([]*domain.News, error) {
	return s.repo.List(ctx, true, publicNewsLimit)
}
