package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

type stubNewsService struct {
	item *domain.News
	err  error

	gotInput  ports.CreateNewsInput
	gotAuthor string
}

func (s *stubNewsService) List(context.Context) ([]*domain.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.News{s.item}, nil
}

func (s *stubNewsService) Get(context.Context, string) (*domain.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubNewsService) Create(_ context.Context, input ports.CreateNewsInput, author string) (*domain.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.gotInput, s.gotAuthor = input, author
	return s.item, nil
}

func (s *stubNewsService) Update(context.Context, string, ports.UpdateNewsInput) (*domain.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubNewsService) Delete(context.Context, string) error { return s.err }

func (s *stubNewsService) ListPublished(context.Context) ([]*domain.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.News{s.item}, nil
}

func sampleNews() *domain.News {
	return &domain.News{ID: "news_1", Title: "Harvest report", Content: "Strong season.", Author: "Admin User", IsPublished: true}
}

func TestNewsHandler_Create(t *testing.T) {
	svc := &stubNewsService{item: sampleNews()}
	h := NewNewsHandler(svc)

	c, rec := jsonContext(http.MethodPost, "/api/admin/news", `{"title":"Harvest report","content":"Strong season."}`)
	c.Set("user", &domain.User{ID: "user_1", Name: "Admin User", Role: domain.RoleAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotAuthor != "Admin User" {
		t.Fatalf("expected author from acting admin, got %q", svc.gotAuthor)
	}
	if !svc.gotInput.IsPublished {
		t.Fatalf("is_published must default to true when omitted")
	}
}

func TestNewsHandler_Create_ExplicitDraft(t *testing.T) {
	svc := &stubNewsService{item: sampleNews()}
	h := NewNewsHandler(svc)

	c, _ := jsonContext(http.MethodPost, "/api/admin/news", `{"title":"Draft","content":"wip","is_published":false}`)
	c.Set("user", &domain.User{ID: "user_1", Name: "Admin User", Role: domain.RoleAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if svc.gotInput.IsPublished {
		t.Fatalf("explicit is_published=false must be honored")
	}
}

func TestNewsHandler_Create_Validation(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{item: sampleNews()})

	c, _ := jsonContext(http.MethodPost, "/api/admin/news", `{"title":"No content"}`)
	c.Set("user", &domain.User{ID: "user_1", Name: "Admin User", Role: domain.RoleAdmin})

	err := h.Create(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestNewsHandler_Get_NotFound(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{err: domain.ErrNewsNotFound})

	c, _ := jsonContext(http.MethodGet, "/api/admin/news/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}

func TestNewsHandler_ListPublished(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{item: sampleNews()})

	c, rec := jsonContext(http.MethodGet, "/api/news", "")
	if err := h.ListPublished(c); err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}

	var items []*domain.News
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Harvest report" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestNewsHandler_Delete(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{item: sampleNews()})

	c, rec := jsonContext(http.MethodDelete, "/api/admin/news/news_1", "")
	c.SetParamNames("id")
	c.SetParamValues("news_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
