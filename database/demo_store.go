package database

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rpupo63/corporate-site-backend/models"
)

// DemoStore keeps posts in process memory. Nothing survives a restart.
// New posts are inserted at the head of the list.
type DemoStore struct {
	mu    sync.RWMutex
	posts []models.BlogPost
	seq   int
	now   func() time.Time
}

// NewDemoStore returns a store seeded with a copy of seed
func NewDemoStore(seed []models.BlogPost) *DemoStore {
	posts := make([]models.BlogPost, 0, len(seed))
	for _, p := range seed {
		posts = append(posts, p.Clone())
	}
	return &DemoStore{posts: posts, now: time.Now}
}

func (s *DemoStore) GetAll(_ context.Context, includeUnpublished bool) ([]models.BlogPost, error) {
	return s.filter(func(p models.BlogPost) bool {
		return includeUnpublished || isPublished(p)
	}), nil
}

func (s *DemoStore) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewNotFound(blogPostEntity)
	}
	post := s.posts[i].Clone()
	return &post, nil
}

func (s *DemoStore) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.Slug == slug {
			post := p.Clone()
			return &post, nil
		}
	}
	return nil, errs.NewNotFound(blogPostEntity)
}

func (s *DemoStore) Create(_ context.Context, input models.CreateBlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slug := models.GenerateSlug(input.Title)
	if s.slugTaken(slug, "") {
		return nil, errs.NewAlreadyExists("a blog post with this slug")
	}

	now := s.now().UTC()
	post := models.BlogPost{
		ID:            s.nextID(now),
		Title:         input.Title,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		Author:        input.Author,
		PublishedAt:   now,
		UpdatedAt:     now,
		Tags:          slices.Clone(normalizeTags(input.Tags)),
		Featured:      input.Featured,
		ReadingTime:   models.CalculateReadingTime(input.Content),
		FeaturedImage: input.FeaturedImageURL,
		ImageAlt:      input.FeaturedImageAlt,
		Status:        defaultStatus(input.Status),
		Slug:          slug,
	}

	s.posts = slices.Insert(s.posts, 0, post)
	created := post.Clone()
	return &created, nil
}

func (s *DemoStore) Update(_ context.Context, id string, input models.UpdateBlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewNotFound(blogPostEntity)
	}
	if input.IsEmpty() {
		post := s.posts[i].Clone()
		return &post, nil
	}

	post := s.posts[i].Clone()
	if input.Title != nil {
		slug := models.GenerateSlug(*input.Title)
		if s.slugTaken(slug, post.ID) {
			return nil, errs.NewAlreadyExists("a blog post with this slug")
		}
		post.Title = *input.Title
		post.Slug = slug
	}
	if input.Content != nil {
		post.Content = *input.Content
		post.ReadingTime = models.CalculateReadingTime(*input.Content)
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.Tags != nil {
		post.Tags = slices.Clone(normalizeTags(*input.Tags))
	}
	if input.Featured != nil {
		post.Featured = *input.Featured
	}
	if input.FeaturedImageURL != nil {
		post.FeaturedImage = *input.FeaturedImageURL
	}
	if input.FeaturedImageAlt != nil {
		post.ImageAlt = *input.FeaturedImageAlt
	}
	if input.Status != nil {
		post.Status = *input.Status
	}

	post.UpdatedAt = s.now().UTC()
	if post.UpdatedAt.Before(post.PublishedAt) {
		post.UpdatedAt = post.PublishedAt
	}

	s.posts[i] = post
	updated := post.Clone()
	return &updated, nil
}

func (s *DemoStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.posts = slices.Delete(s.posts, i, i+1)
	return true, nil
}

func (s *DemoStore) Search(_ context.Context, term string) ([]models.BlogPost, error) {
	needle := strings.ToLower(term)
	return s.filter(func(p models.BlogPost) bool {
		if !isPublished(p) {
			return false
		}
		return strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Excerpt), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) ||
			slices.Contains(p.Tags, term)
	}), nil
}

func (s *DemoStore) GetByTag(_ context.Context, tag string) ([]models.BlogPost, error) {
	return s.filter(func(p models.BlogPost) bool {
		return isPublished(p) && slices.Contains(p.Tags, tag)
	}), nil
}

func (s *DemoStore) GetFeatured(_ context.Context) ([]models.BlogPost, error) {
	return s.filter(func(p models.BlogPost) bool {
		return isPublished(p) && p.Featured
	}), nil
}

// filter returns matching posts newest first. The sort is stable so posts
// sharing a publish time keep their list order, head first.
func (s *DemoStore) filter(keep func(models.BlogPost) bool) []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		if keep(p) {
			posts = append(posts, p.Clone())
		}
	}
	slices.SortStableFunc(posts, func(a, b models.BlogPost) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	return posts
}

// callers hold s.mu
func (s *DemoStore) indexOf(id string) int {
	return slices.IndexFunc(s.posts, func(p models.BlogPost) bool { return p.ID == id })
}

// callers hold s.mu
func (s *DemoStore) slugTaken(slug, exceptID string) bool {
	return slices.ContainsFunc(s.posts, func(p models.BlogPost) bool {
		return p.Slug == slug && p.ID != exceptID
	})
}

// nextID returns demo-<unix millis>, suffixed with a sequence number when two
// posts land in the same millisecond. Callers hold s.mu.
func (s *DemoStore) nextID(now time.Time) string {
	id := fmt.Sprintf("demo-%d", now.UnixMilli())
	for s.indexOf(id) >= 0 {
		s.seq++
		id = fmt.Sprintf("demo-%d-%d", now.UnixMilli(), s.seq)
	}
	return id
}

func isPublished(p models.BlogPost) bool {
	return defaultStatus(p.Status) == models.StatusPublished
}
