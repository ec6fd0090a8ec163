package database

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// dialect emits the parameterized predicates whose syntax differs between
// postgres (production) and sqlite (tests).
type dialect interface {
	Name() string
	// HasTag matches rows whose JSON tag array holds tag exactly
	HasTag(column, tag string) (string, []any)
	// ContainsFold matches rows whose column contains term, ignoring case
	ContainsFold(column, term string) (string, []any)
}

func dialectFor(db *gorm.DB) dialect {
	if db != nil && db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		return sqliteDialect{}
	}
	return postgresDialect{}
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) HasTag(column, tag string) (string, []any) {
	return fmt.Sprintf("%s @> ?::jsonb", column), []any{marshalTags([]string{tag})}
}

func (postgresDialect) ContainsFold(column, term string) (string, []any) {
	return fmt.Sprintf("%s ILIKE ?", column), []any{"%" + term + "%"}
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) HasTag(column, tag string) (string, []any) {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(CAST(%s AS TEXT)) WHERE json_each.value = ?)", column), []any{tag}
}

func (sqliteDialect) ContainsFold(column, term string) (string, []any) {
	return fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", column), []any{"%" + term + "%"}
}

// marshalTags renders tags as the JSON array stored in the tags column
func marshalTags(tags []string) string {
	data, err := json.Marshal(normalizeTags(tags))
	if err != nil {
		return "[]"
	}
	return string(data)
}
