package database

import (
	"context"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAllWithCounts returns every tag, unused ones included, with the number of
// projects linked to it. Most used first.
func (r *TagRepo) FindAllWithCounts(ctx context.Context) ([]models.TagWithCount, error) {
	tags := []models.TagWithCount{}
	err := read(ctx, r.db).Raw(`
		SELECT t.id, t.name, COUNT(pt.project_id) AS project_count
		FROM tags t
		LEFT JOIN project_tags pt ON pt.tag_id = t.id
		GROUP BY t.id, t.name
		ORDER BY project_count DESC, t.name ASC`).Scan(&tags).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", "tags", err)
	}
	return tags, nil
}

func (r *TagRepo) Add(ctx context.Context, tag *models.Tag) error {
	tag.Name = strings.TrimSpace(tag.Name)
	err := r.db.WithContext(ctx).Raw(`INSERT INTO tags (name) VALUES (?) RETURNING id, name`, tag.Name).Scan(tag).Error
	if err != nil {
		return errs.NewDatabaseError("create", "tag", err)
	}
	return nil
}
