package database

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rpupo63/corporate-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDemoStore(t *testing.T) *DemoStore {
	t.Helper()
	store := NewDemoStore(DemoPosts())
	store.now = steppingClock(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	return store
}

func TestDemoPostsSeed(t *testing.T) {
	posts := DemoPosts()
	require.Len(t, posts, 5)
	assert.Equal(t, []string{"5", "1", "2", "3", "4"}, ids(posts))

	for _, p := range posts {
		assert.Equal(t, models.GenerateSlug(p.Title), p.Slug)
		assert.Equal(t, models.CalculateReadingTime(p.Content), p.ReadingTime)
		assert.Positive(t, p.ReadingTime)
		assert.False(t, p.UpdatedAt.Before(p.PublishedAt))
		assert.Equal(t, models.StatusPublished, p.Status)
	}
}

func TestDemoStoreGetAll(t *testing.T) {
	ctx := context.Background()
	store := newTestDemoStore(t)

	posts, err := store.GetAll(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1", "2", "3", "4"}, ids(posts))

	posts[0].Title = "mutated"
	posts[0].Tags[0] = "mutated"
	again, err := store.GetByID(ctx, "5")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Title)
	assert.NotEqual(t, "mutated", again.Tags[0])
}

func TestDemoStoreLookups(t *testing.T) {
	ctx := context.Background()
	store := newTestDemoStore(t)

	post, err := store.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Contains(t, post.Content, "Lithium")

	bySlug, err := store.GetBySlug(ctx, post.Slug)
	require.NoError(t, err)
	assert.Equal(t, "3", bySlug.ID)

	_, err = store.GetByID(ctx, "999")
	assert.True(t, errs.IsNotFound(err))

	_, err = store.GetBySlug(ctx, "no-such-post")
	assert.True(t, errs.IsNotFound(err))
}

func TestDemoStoreCreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestDemoStore(t)

	created, err := store.Create(ctx, models.CreateBlogPost{
		Title:   "Fresh Demo Post",
		Content: "Some body text",
		Excerpt: "Summary",
		Author:  "Tester",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "demo-"))
	assert.Equal(t, "fresh-demo-post", created.Slug)
	assert.Equal(t, 1, created.ReadingTime)
	assert.NotNil(t, created.Tags)
	assert.Equal(t, models.StatusPublished, created.Status)

	all, err := store.GetAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, created.ID, all[0].ID)

	updated, err := store.Update(ctx, created.ID, models.UpdateBlogPost{Content: strPtr("one two three")})
	require.NoError(t, err)
	assert.Equal(t, "one two three", updated.Content)
	assert.Equal(t, "Fresh Demo Post", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err = store.GetAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestDemoStoreIDsStayUniqueWithinOneMillisecond(t *testing.T) {
	ctx := context.Background()
	store := NewDemoStore(nil)
	frozen := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return frozen }

	first, err := store.Create(ctx, models.CreateBlogPost{Title: "One", Content: "a", Excerpt: "a", Author: "a"})
	require.NoError(t, err)
	second, err := store.Create(ctx, models.CreateBlogPost{Title: "Two", Content: "a", Excerpt: "a", Author: "a"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDemoStoreSlugConflicts(t *testing.T) {
	ctx := context.Background()
	store := newTestDemoStore(t)

	_, err := store.Create(ctx, models.CreateBlogPost{
		Title:   "How AI and Blockchain are Transforming African Agriculture",
		Content: "dup",
		Excerpt: "dup",
		Author:  "dup",
	})
	assert.True(t, errs.IsAlreadyExists(err))

	_, err = store.Update(ctx, "1", models.UpdateBlogPost{
		Title: strPtr("Career Opportunities in Africa's Renewable Energy Boom"),
	})
	assert.True(t, errs.IsAlreadyExists(err))

	_, err = store.Update(ctx, "missing", models.UpdateBlogPost{Title: strPtr("x")})
	assert.True(t, errs.IsNotFound(err))
}

func TestDemoStoreFilters(t *testing.T) {
	ctx := context.Background()
	store := newTestDemoStore(t)

	found, err := store.Search(ctx, "lithium")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(found))

	found, err = store.Search(ctx, "harare")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, ids(found))

	tagged, err := store.GetByTag(ctx, "careers")
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "2"}, ids(tagged))

	tagged, err = store.GetByTag(ctx, "unknown-tag")
	require.NoError(t, err)
	assert.Empty(t, tagged)

	featured, err := store.GetFeatured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1", "2"}, ids(featured))
}

func TestDemoStoreHidesDraftsFromPublicQueries(t *testing.T) {
	ctx := context.Background()
	store := newTestDemoStore(t)

	_, err := store.Update(ctx, "2", models.UpdateBlogPost{Status: strPtr(models.StatusDraft)})
	require.NoError(t, err)

	public, err := store.GetAll(ctx, false)
	require.NoError(t, err)
	assert.NotContains(t, ids(public), "2")

	all, err := store.GetAll(ctx, true)
	require.NoError(t, err)
	assert.Contains(t, ids(all), "2")

	featured, err := store.GetFeatured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1"}, ids(featured))
}

func TestDemoStoreConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	store := NewDemoStore(nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, models.CreateBlogPost{
				Title:   "Concurrent " + string(rune('a'+i)),
				Content: "c",
				Excerpt: "c",
				Author:  "c",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := store.GetAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 20)

	seen := map[string]bool{}
	for _, p := range all {
		assert.False(t, seen[p.ID], p.ID)
		seen[p.ID] = true
	}
}
