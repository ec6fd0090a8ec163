package database

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rpupo63/corporate-site-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const tagsColumn = "blog_posts.tags"

type BlogPostRepo struct {
	db      *gorm.DB
	dialect dialect
	now     func() time.Time
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db: db, dialect: dialectFor(db), now: time.Now}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *BlogPostRepo) GetDB() *gorm.DB {
	return r.db
}

// GetAll returns posts newest first, optionally including drafts and archived posts
func (r *BlogPostRepo) GetAll(ctx context.Context, includeUnpublished bool) ([]models.BlogPost, error) {
	query := r.db.WithContext(ctx)
	if !includeUnpublished {
		query = query.Where("status = ?", models.StatusPublished)
	}
	return r.find(query)
}

// GetByID returns a blog post by its ID
func (r *BlogPostRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	pk, ok := parseID(id)
	if !ok {
		return nil, errs.NewNotFound(blogPostEntity)
	}
	return r.first(r.db.WithContext(ctx).Where("id = ?", pk))
}

// GetBySlug returns a blog post by its slug
func (r *BlogPostRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.first(r.db.WithContext(ctx).Where("slug = ?", slug))
}

// Create inserts a new blog post, deriving slug and reading time
func (r *BlogPostRepo) Create(ctx context.Context, input models.CreateBlogPost) (*models.BlogPost, error) {
	now := r.now().UTC()
	record := models.BlogPostRecord{
		Slug:             models.GenerateSlug(input.Title),
		Title:            input.Title,
		Content:          input.Content,
		Excerpt:          input.Excerpt,
		Author:           input.Author,
		PublishedAt:      now,
		UpdatedAt:        now,
		Tags:             datatypes.JSONSlice[string](normalizeTags(input.Tags)),
		Featured:         input.Featured,
		ReadingTime:      models.CalculateReadingTime(input.Content),
		FeaturedImageURL: optionalString(input.FeaturedImageURL),
		FeaturedImageAlt: optionalString(input.FeaturedImageAlt),
		Status:           defaultStatus(input.Status),
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translateError(err)
	}

	post := record.ToBlogPost()
	return &post, nil
}

// Update overwrites only the supplied fields and always refreshes updated_at
func (r *BlogPostRepo) Update(ctx context.Context, id string, input models.UpdateBlogPost) (*models.BlogPost, error) {
	pk, ok := parseID(id)
	if !ok {
		return nil, errs.NewNotFound(blogPostEntity)
	}
	if input.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	updates := map[string]any{"updated_at": r.now().UTC()}
	if input.Title != nil {
		updates["title"] = *input.Title
		updates["slug"] = models.GenerateSlug(*input.Title)
	}
	if input.Content != nil {
		updates["content"] = *input.Content
		updates["reading_time"] = models.CalculateReadingTime(*input.Content)
	}
	if input.Excerpt != nil {
		updates["excerpt"] = *input.Excerpt
	}
	if input.Author != nil {
		updates["author"] = *input.Author
	}
	if input.Tags != nil {
		updates["tags"] = marshalTags(*input.Tags)
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.FeaturedImageURL != nil {
		updates["featured_image_url"] = optionalString(*input.FeaturedImageURL)
	}
	if input.FeaturedImageAlt != nil {
		updates["featured_image_alt"] = optionalString(*input.FeaturedImageAlt)
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	result := r.db.WithContext(ctx).
		Model(&models.BlogPostRecord{}).
		Where("id = ?", pk).
		Updates(updates)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewNotFound(blogPostEntity)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a blog post from the database by id
func (r *BlogPostRepo) Delete(ctx context.Context, id string) (bool, error) {
	pk, ok := parseID(id)
	if !ok {
		return false, nil
	}

	result := r.db.WithContext(ctx).Delete(&models.BlogPostRecord{}, pk)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Search returns published posts whose title, excerpt or content contain term,
// or that carry term as a tag
func (r *BlogPostRepo) Search(ctx context.Context, term string) ([]models.BlogPost, error) {
	var (
		clauses []string
		vars    []any
	)
	for _, column := range []string{"title", "excerpt", "content"} {
		sql, v := r.dialect.ContainsFold(column, term)
		clauses = append(clauses, sql)
		vars = append(vars, v...)
	}
	sql, v := r.dialect.HasTag(tagsColumn, term)
	clauses = append(clauses, sql)
	vars = append(vars, v...)

	query := r.published(ctx).Where("("+strings.Join(clauses, " OR ")+")", vars...)
	return r.find(query)
}

// GetByTag returns published posts carrying tag
func (r *BlogPostRepo) GetByTag(ctx context.Context, tag string) ([]models.BlogPost, error) {
	sql, vars := r.dialect.HasTag(tagsColumn, tag)
	return r.find(r.published(ctx).Where(sql, vars...))
}

// GetFeatured returns published posts flagged as featured
func (r *BlogPostRepo) GetFeatured(ctx context.Context) ([]models.BlogPost, error) {
	return r.find(r.published(ctx).Where("featured = ?", true))
}

func (r *BlogPostRepo) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("status = ?", models.StatusPublished)
}

func (r *BlogPostRepo) find(query *gorm.DB) ([]models.BlogPost, error) {
	var records []models.BlogPostRecord
	if err := query.Order("published_at DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	posts := make([]models.BlogPost, 0, len(records))
	for _, record := range records {
		posts = append(posts, record.ToBlogPost())
	}
	return posts, nil
}

func (r *BlogPostRepo) first(query *gorm.DB) (*models.BlogPost, error) {
	var record models.BlogPostRecord
	if err := query.Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound(blogPostEntity)
		}
		return nil, err
	}

	post := record.ToBlogPost()
	return &post, nil
}

// translateError maps driver constraint violations onto errs kinds. It relies on
// the connection being opened with gorm's TranslateError enabled.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewAlreadyExists("a blog post with this slug")
	}
	return err
}

func parseID(id string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
