package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rpupo63/corporate-site-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

type Database struct {
	blogPostStore BlogPostStore
	mode          Mode
	db            *gorm.DB
}

// New wraps an open relational connection
func New(db *gorm.DB) Database {
	return Database{
		blogPostStore: NewBlogPostRepo(db),
		mode:          ModeRelational,
		db:            db,
	}
}

// NewDemo returns a Database backed by the seeded in-memory store
func NewDemo() Database {
	return Database{
		blogPostStore: NewDemoStore(DemoPosts()),
		mode:          ModeDemo,
	}
}

// NewWithStore wraps any store, for callers that build their own
func NewWithStore(store BlogPostStore, mode Mode) Database {
	return Database{blogPostStore: store, mode: mode}
}

func (d Database) BlogPostStore() BlogPostStore {
	return d.blogPostStore
}

func (d Database) Mode() Mode {
	return d.mode
}

// Close releases the relational connection pool. It is a no-op in demo mode.
func (d Database) Close() error {
	if d.db == nil {
		return nil
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type Options struct {
	URL        string
	ReplicaURL string
}

// Open connects to postgres and verifies the connection. Reads are routed to
// ReplicaURL when one is configured.
func Open(ctx context.Context, opts Options) (*gorm.DB, error) {
	if opts.URL == "" {
		return nil, errs.NewDatabaseConnectionError(errors.New("no database url configured"))
	}

	gormLog := log.With().Str("component", "gorm").Logger()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  opts.URL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
		Logger: logger.New(&gormLog, logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errs.NewDatabaseConnectionError(err)
	}

	if opts.ReplicaURL != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  opts.ReplicaURL,
				PreferSimpleProtocol: true,
			})},
			Policy: dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, errs.NewDatabaseConnectionError(err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.NewDatabaseConnectionError(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errs.NewDatabaseConnectionError(err)
	}
	return db, nil
}

// Migrate creates or updates the blog_posts table and its indexes
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&models.BlogPostRecord{}); err != nil {
		return errs.NewDatabaseConnectionError(err)
	}
	return nil
}

type Opener func(ctx context.Context, opts Options) (*gorm.DB, error)

// Selector decides once per process whether posts live in the relational
// database or in the demo store. Every later call returns the same Database.
type Selector struct {
	opts Options
	open Opener

	once sync.Once
	db   Database
}

func NewSelector(opts Options, open Opener) *Selector {
	if open == nil {
		open = Open
	}
	return &Selector{opts: opts, open: open}
}

// Resolve makes the decision on first call. A missing url selects demo mode; a
// connection or migration failure is logged and also falls back to demo mode.
func (s *Selector) Resolve(ctx context.Context) Database {
	s.once.Do(func() {
		s.db = s.resolve(ctx)
	})
	return s.db
}

func (s *Selector) resolve(ctx context.Context) Database {
	if s.opts.URL == "" {
		log.Info().Msg("No DATABASE_URL configured, serving blog posts from the demo store")
		return NewDemo()
	}

	db, err := s.open(ctx, s.opts)
	if err != nil {
		log.Warn().Err(err).Msg("Database unavailable, falling back to the demo store")
		return NewDemo()
	}
	if err := Migrate(ctx, db); err != nil {
		log.Warn().Err(err).Msg("Database migration failed, falling back to the demo store")
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return NewDemo()
	}
	reportSchemaDrift(ctx, db)

	log.Info().Bool("replica", s.opts.ReplicaURL != "").Msg("Serving blog posts from the relational database")
	return New(db)
}
