package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// SchemaDrift maps each existing table to the columns it has that no model
// field maps. Tables that do not exist yet and fully mapped tables are left out.
func SchemaDrift(ctx context.Context, db *gorm.DB) (map[string][]string, error) {
	drift := make(map[string][]string)
	for _, model := range models.All() {
		table := model.(interface{ TableName() string }).TableName()

		var columns []string
		err := db.WithContext(ctx).Raw(`
			SELECT column_name
			FROM information_schema.columns
			WHERE table_name = ? AND table_schema = CURRENT_SCHEMA()
			ORDER BY ordinal_position`, table).Scan(&columns).Error
		if err != nil {
			return nil, fmt.Errorf("list columns of %s: %w", table, err)
		}

		known := make(map[string]bool)
		for _, c := range models.Columns(model) {
			known[c] = true
		}
		for _, c := range columns {
			if !known[c] {
				drift[table] = append(drift[table], c)
			}
		}
	}
	return drift, nil
}
