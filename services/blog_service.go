package services

import (
	"context"
	"strings"

	"github.com/rpupo63/corporate-site-backend/database"
	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rpupo63/corporate-site-backend/models"
)

const blogPostEntity = "blog post"

// ListQuery selects which posts List returns. Only one filter applies, in the
// order search, tag, featured.
type ListQuery struct {
	Search             string
	Tag                string
	Featured           bool
	IncludeUnpublished bool
}

// BlogService is the single entry point the HTTP layer uses for posts. It does
// not know which store backs it.
type BlogService struct {
	store database.BlogPostStore
	mode  database.Mode
}

func NewBlogService(db database.Database) *BlogService {
	return &BlogService{store: db.BlogPostStore(), mode: db.Mode()}
}

// Mode reports which store the process resolved to at startup
func (s *BlogService) Mode() database.Mode {
	return s.mode
}

func (s *BlogService) List(ctx context.Context, q ListQuery) ([]models.BlogPost, error) {
	switch {
	case strings.TrimSpace(q.Search) != "":
		return s.Search(ctx, strings.TrimSpace(q.Search))
	case q.Tag != "":
		return s.ByTag(ctx, q.Tag)
	case q.Featured:
		return s.Featured(ctx)
	}

	posts, err := s.store.GetAll(ctx, q.IncludeUnpublished)
	return posts, errs.NewDatabaseError("list", "blog posts", err)
}

func (s *BlogService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewNotFound(blogPostEntity)
	}
	post, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("get", blogPostEntity, err)
	}
	return post, nil
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, errs.NewNotFound(blogPostEntity)
	}
	post, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errs.NewDatabaseError("get", blogPostEntity, err)
	}
	return post, nil
}

// Create validates input and stores a new post. Required fields are checked in
// the order title, content, excerpt, author.
func (s *BlogService) Create(ctx context.Context, input models.CreateBlogPost) (*models.BlogPost, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Excerpt = strings.TrimSpace(input.Excerpt)
	input.Author = strings.TrimSpace(input.Author)

	required := []struct{ name, value string }{
		{"title", input.Title},
		{"content", strings.TrimSpace(input.Content)},
		{"excerpt", input.Excerpt},
		{"author", input.Author},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, errs.NewMissingRequiredFieldError(field.name)
		}
	}
	if models.GenerateSlug(input.Title) == "" {
		return nil, errs.NewInvalidFieldError("title", "must contain at least one letter or digit")
	}

	if input.Status == "" {
		input.Status = models.StatusPublished
	} else if !models.ValidStatus(input.Status) {
		return nil, invalidStatus()
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}

	post, err := s.store.Create(ctx, input)
	if err != nil {
		return nil, errs.NewDatabaseError("create", blogPostEntity, err)
	}
	return post, nil
}

// Update applies a partial update. Supplied required fields may not be blank.
func (s *BlogService) Update(ctx context.Context, id string, input models.UpdateBlogPost) (*models.BlogPost, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewNotFound(blogPostEntity)
	}

	supplied := []struct {
		name  string
		value *string
	}{
		{"title", input.Title},
		{"content", input.Content},
		{"excerpt", input.Excerpt},
		{"author", input.Author},
	}
	for _, field := range supplied {
		if field.value != nil && strings.TrimSpace(*field.value) == "" {
			return nil, errs.NewInvalidFieldError(field.name, "must not be empty")
		}
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if models.GenerateSlug(title) == "" {
			return nil, errs.NewInvalidFieldError("title", "must contain at least one letter or digit")
		}
		input.Title = &title
	}
	if input.Status != nil && !models.ValidStatus(*input.Status) {
		return nil, invalidStatus()
	}

	post, err := s.store.Update(ctx, id, input)
	if err != nil {
		return nil, errs.NewDatabaseError("update", blogPostEntity, err)
	}
	return post, nil
}

// Delete fails with not found when no post was removed
func (s *BlogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return errs.NewDatabaseError("delete", blogPostEntity, err)
	}
	if !deleted {
		return errs.NewNotFound(blogPostEntity)
	}
	return nil
}

func (s *BlogService) Search(ctx context.Context, term string) ([]models.BlogPost, error) {
	posts, err := s.store.Search(ctx, term)
	return posts, errs.NewDatabaseError("search", "blog posts", err)
}

func (s *BlogService) ByTag(ctx context.Context, tag string) ([]models.BlogPost, error) {
	posts, err := s.store.GetByTag(ctx, tag)
	return posts, errs.NewDatabaseError("filter", "blog posts", err)
}

func (s *BlogService) Featured(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.store.GetFeatured(ctx)
	return posts, errs.NewDatabaseError("list featured", "blog posts", err)
}

func invalidStatus() *errs.ApiErr {
	return errs.NewInvalidFieldError("status", "must be one of draft, published, archived")
}
