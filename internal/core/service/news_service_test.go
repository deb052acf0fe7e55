package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

type stubNewsRepo struct {
	items map[string]*domain.News
	seq   int
}

func newStubNewsRepo() *stubNewsRepo {
	return &stubNewsRepo{items: make(map[string]*domain.News)}
}

func cloneNews(n *domain.News) *domain.News {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

func (r *stubNewsRepo) Create(_ context.Context, news *domain.News) (*domain.News, error) {
	r.seq++
	created := cloneNews(news)
	created.ID = fmt.Sprintf("news_%d", r.seq)
	r.items[created.ID] = cloneNews(created)
	return created, nil
}

func (r *stubNewsRepo) FindByID(_ context.Context, id string) (*domain.News, error) {
	if n, ok := r.items[id]; ok {
		return cloneNews(n), nil
	}
	return nil, domain.ErrNewsNotFound
}

func (r *stubNewsRepo) List(_ context.Context, onlyPublished bool, _ int64) ([]*domain.News, error) {
	var out []*domain.News
	for _, n := range r.items {
		if onlyPublished && !n.IsPublished {
			continue
		}
		out = append(out, cloneNews(n))
	}
	return out, nil
}

func (r *stubNewsRepo) Update(_ context.Context, id string, patch ports.NewsPatch) (*domain.News, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNewsNotFound
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.IsPublished != nil {
		n.IsPublished = *patch.IsPublished
	}
	return cloneNews(n), nil
}

func (r *stubNewsRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNewsNotFound
	}
	delete(r.items, id)
	return nil
}

func TestNewsService_Create(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateNewsInput{
		Title:       "Harvest report",
		Content:     "Strong season.",
		IsPublished: true,
	}, "Admin User")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.Author != "Admin User" {
		t.Fatalf("expected author stamped from acting admin, got %q", created.Author)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestNewsService_ListPublished_FiltersDrafts(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.CreateNewsInput{Title: "Public", IsPublished: true}, "a")
	_, _ = svc.Create(context.Background(), ports.CreateNewsInput{Title: "Draft", IsPublished: false}, "a")

	published, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if len(published) != 1 || published[0].Title != "Public" {
		t.Fatalf("expected only the published item, got %+v", published)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin listing must include drafts, got %d items", len(all))
	}
}

func TestNewsService_Update_Partial(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateNewsInput{Title: "Old", Content: "Body", IsPublished: true}, "a")

	title := "New"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateNewsInput{Title: &title})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "New" {
		t.Fatalf("expected title updated, got %q", updated.Title)
	}
	if updated.Content != "Body" || !updated.IsPublished {
		t.Fatalf("untouched fields must survive a partial update: %+v", updated)
	}
}

func TestNewsService_Update_NotFound(t *testing.T) {
	svc := NewNewsService(newStubNewsRepo(), zerolog.Nop())
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateNewsInput{}); err != domain.ErrNewsNotFound {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}

func TestNewsService_Delete(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateNewsInput{Title: "Gone"}, "a")
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrNewsNotFound {
		t.Fatalf("expected ErrNewsNotFound on second delete, got %v", err)
	}
}
