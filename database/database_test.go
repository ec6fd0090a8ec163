package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSelectorWithoutURLUsesDemo(t *testing.T) {
	var calls atomic.Int32
	selector := NewSelector(Options{}, func(context.Context, Options) (*gorm.DB, error) {
		calls.Add(1)
		return nil, errors.New("should not be called")
	})

	db := selector.Resolve(context.Background())
	assert.Equal(t, ModeDemo, db.Mode())
	assert.IsType(t, &DemoStore{}, db.BlogPostStore())
	assert.Zero(t, calls.Load())
	assert.NoError(t, db.Close())
}

func TestSelectorFallsBackWhenConnectionFails(t *testing.T) {
	var calls atomic.Int32
	selector := NewSelector(Options{URL: "postgres://unreachable"}, func(context.Context, Options) (*gorm.DB, error) {
		calls.Add(1)
		return nil, errs.NewDatabaseConnectionError(errors.New("connection refused"))
	})

	assert.Equal(t, ModeDemo, selector.Resolve(context.Background()).Mode())
	assert.Equal(t, ModeDemo, selector.Resolve(context.Background()).Mode())
	assert.Equal(t, int32(1), calls.Load())
}

func TestSelectorUsesRelationalStore(t *testing.T) {
	var received Options
	selector := NewSelector(Options{URL: "sqlite://memory", ReplicaURL: "sqlite://replica"}, func(_ context.Context, opts Options) (*gorm.DB, error) {
		received = opts
		return openTestDB(t), nil
	})

	db := selector.Resolve(context.Background())
	assert.Equal(t, ModeRelational, db.Mode())
	assert.IsType(t, &BlogPostRepo{}, db.BlogPostStore())
	assert.Equal(t, "sqlite://replica", received.ReplicaURL)

	posts, err := db.BlogPostStore().GetAll(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSelectorResolvesOnceUnderConcurrency(t *testing.T) {
	var calls atomic.Int32
	selector := NewSelector(Options{URL: "postgres://flaky"}, func(context.Context, Options) (*gorm.DB, error) {
		calls.Add(1)
		return nil, errors.New("boom")
	})

	var wg sync.WaitGroup
	stores := make([]BlogPostStore, 16)
	for i := range stores {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stores[i] = selector.Resolve(context.Background()).BlogPostStore()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, store := range stores {
		assert.Same(t, stores[0], store)
	}
}

func TestOpenRequiresURL(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	assert.True(t, errs.IsDatabaseConnection(err))
}
