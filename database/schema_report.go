package database

import (
	"context"
	"slices"

	"github.com/rpupo63/corporate-site-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UnmappedColumns lists columns of blog_posts that no BlogPostRecord field maps
// to. They usually come from hand-run migrations and are ignored by the repo.
func UnmappedColumns(ctx context.Context, db *gorm.DB) ([]string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&models.BlogPostRecord{}); err != nil {
		return nil, err
	}

	columnTypes, err := db.WithContext(ctx).Migrator().ColumnTypes(&models.BlogPostRecord{})
	if err != nil {
		return nil, err
	}

	var unmapped []string
	for _, column := range columnTypes {
		if stmt.Schema.LookUpField(column.Name()) == nil {
			unmapped = append(unmapped, column.Name())
		}
	}
	slices.Sort(unmapped)
	return unmapped, nil
}

func reportSchemaDrift(ctx context.Context, db *gorm.DB) {
	unmapped, err := UnmappedColumns(ctx, db)
	if err != nil {
		log.Warn().Err(err).Msg("Could not inspect blog_posts columns")
		return
	}
	if len(unmapped) > 0 {
		log.Warn().Strs("columns", unmapped).Msg("blog_posts has columns the service does not map")
	}
}
