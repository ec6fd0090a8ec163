package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rpupo63/corporate-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoEpoch = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) *BlogPostRepo {
	t.Helper()
	repo := NewBlogPostRepo(openTestDB(t))
	repo.now = steppingClock(repoEpoch)
	return repo
}

func sampleCreate(title string, tags ...string) models.CreateBlogPost {
	return models.CreateBlogPost{
		Title:   title,
		Content: "Body text about " + title,
		Excerpt: "Excerpt for " + title,
		Author:  "Test Author",
		Tags:    tags,
	}
}

func strPtr(s string) *string { return &s }

func TestBlogPostRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.Equal(t, "sqlite", repo.dialect.Name())

	input := sampleCreate("Hello, World!", "news", "africa")
	input.Content = strings.TrimSpace(strings.Repeat("word ", 201))
	input.Featured = true
	input.FeaturedImageURL = "https://cdn.example.com/a.png"

	created, err := repo.Create(ctx, input)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "hello-world", created.Slug)
	assert.Equal(t, 2, created.ReadingTime)
	assert.Equal(t, models.StatusPublished, created.Status)
	assert.Equal(t, []string{"news", "africa"}, created.Tags)
	assert.Equal(t, created.PublishedAt, created.UpdatedAt)
	assert.Equal(t, "https://cdn.example.com/a.png", created.FeaturedImage)
	assert.Empty(t, created.ImageAlt)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, byID.Title)
	assert.Equal(t, []string{"news", "africa"}, byID.Tags)
	assert.True(t, byID.Featured)
	assert.True(t, byID.PublishedAt.Equal(created.PublishedAt))

	bySlug, err := repo.GetBySlug(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

func TestBlogPostRepoCreateWithoutTags(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Create(context.Background(), sampleCreate("No Tags"))
	require.NoError(t, err)
	assert.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)

	fetched, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched.Tags)
	assert.Empty(t, fetched.Tags)
}

func TestBlogPostRepoDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Create(ctx, sampleCreate("Same Title"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleCreate("same   title!"))
	require.Error(t, err)
	assert.True(t, errs.IsAlreadyExists(err))

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestBlogPostRepoNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.GetByID(ctx, "42")
	assert.True(t, errs.IsNotFound(err))

	_, err = repo.GetByID(ctx, "demo-123")
	assert.True(t, errs.IsNotFound(err))

	_, err = repo.GetBySlug(ctx, "missing")
	assert.True(t, errs.IsNotFound(err))

	_, err = repo.Update(ctx, "42", models.UpdateBlogPost{Title: strPtr("x")})
	assert.True(t, errs.IsNotFound(err))

	_, err = repo.Update(ctx, "not-a-number", models.UpdateBlogPost{Title: strPtr("x")})
	assert.True(t, errs.IsNotFound(err))
}

func TestBlogPostRepoUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.Create(ctx, sampleCreate("Original Title", "a"))
	require.NoError(t, err)

	tags := []string{"b", "c"}
	featured := true
	updated, err := repo.Update(ctx, created.ID, models.UpdateBlogPost{
		Title:    strPtr("Renamed Title"),
		Content:  strPtr(strings.TrimSpace(strings.Repeat("word ", 401))),
		Tags:     &tags,
		Featured: &featured,
		Status:   strPtr(models.StatusDraft),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed Title", updated.Title)
	assert.Equal(t, "renamed-title", updated.Slug)
	assert.Equal(t, 3, updated.ReadingTime)
	assert.Equal(t, []string{"b", "c"}, updated.Tags)
	assert.True(t, updated.Featured)
	assert.Equal(t, models.StatusDraft, updated.Status)
	assert.Equal(t, created.Excerpt, updated.Excerpt)
	assert.Equal(t, created.Author, updated.Author)
	assert.True(t, updated.PublishedAt.Equal(created.PublishedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	_, err = repo.GetBySlug(ctx, "original-title")
	assert.True(t, errs.IsNotFound(err))
}

func TestBlogPostRepoUpdateEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.Create(ctx, sampleCreate("Untouched"))
	require.NoError(t, err)

	same, err := repo.Update(ctx, created.ID, models.UpdateBlogPost{})
	require.NoError(t, err)
	assert.True(t, same.UpdatedAt.Equal(created.UpdatedAt))
}

func TestBlogPostRepoUpdateSlugCollision(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Create(ctx, sampleCreate("First"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleCreate("Second"))
	require.NoError(t, err)

	_, err = repo.Update(ctx, second.ID, models.UpdateBlogPost{Title: strPtr("FIRST")})
	assert.True(t, errs.IsAlreadyExists(err))
}

func TestBlogPostRepoDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.Create(ctx, sampleCreate("Short Lived"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestBlogPostRepoQueries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	oldest, err := repo.Create(ctx, sampleCreate("Lithium Mining Outlook", "mining", "news"))
	require.NoError(t, err)

	featured := sampleCreate("Solar Careers", "careers")
	featured.Featured = true
	middle, err := repo.Create(ctx, featured)
	require.NoError(t, err)

	draft := sampleCreate("Draft About Lithium", "mining")
	draft.Status = models.StatusDraft
	draft.Featured = true
	_, err = repo.Create(ctx, draft)
	require.NoError(t, err)

	newest, err := repo.Create(ctx, sampleCreate("Agritech Update", "technology"))
	require.NoError(t, err)

	all, err := repo.GetAll(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID}, ids(all))

	everything, err := repo.GetAll(ctx, true)
	require.NoError(t, err)
	assert.Len(t, everything, 4)

	found, err := repo.Search(ctx, "LITHIUM")
	require.NoError(t, err)
	assert.Equal(t, []string{oldest.ID}, ids(found))

	found, err = repo.Search(ctx, "technology")
	require.NoError(t, err)
	assert.Equal(t, []string{newest.ID}, ids(found))

	found, err = repo.Search(ctx, "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, found)

	tagged, err := repo.GetByTag(ctx, "mining")
	require.NoError(t, err)
	assert.Equal(t, []string{oldest.ID}, ids(tagged))

	tagged, err = repo.GetByTag(ctx, "Mining")
	require.NoError(t, err)
	assert.Empty(t, tagged)

	featuredPosts, err := repo.GetFeatured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{middle.ID}, ids(featuredPosts))
}

func ids(posts []models.BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
