package database

import (
	"context"

	"github.com/rpupo63/corporate-site-backend/models"
)

// Mode names the backing store that is authoritative for the process
type Mode string

const (
	ModeDemo       Mode = "demo"
	ModeRelational Mode = "relational"
)

// BlogPostStore is implemented by the relational repo and the in-memory demo store.
// Lookups of unknown ids or slugs fail with errs.ErrNotFound; a slug collision on
// create or update fails with errs.ErrAlreadyExists.
type BlogPostStore interface {
	GetAll(ctx context.Context, includeUnpublished bool) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, input models.CreateBlogPost) (*models.BlogPost, error)
	Update(ctx context.Context, id string, input models.UpdateBlogPost) (*models.BlogPost, error)
	// Delete reports whether a post was actually removed
	Delete(ctx context.Context, id string) (bool, error)
	// Search matches title, excerpt and content case-insensitively, or a tag exactly
	Search(ctx context.Context, term string) ([]models.BlogPost, error)
	GetByTag(ctx context.Context, tag string) ([]models.BlogPost, error)
	GetFeatured(ctx context.Context) ([]models.BlogPost, error)
}

const blogPostEntity = "blog post"

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func defaultStatus(status string) string {
	if status == "" {
		return models.StatusPublished
	}
	return status
}
