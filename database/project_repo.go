package database

import (
	"context"
	"encoding/json"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const projectColumns = `id, title, description, tech_stack, live_url, github_url, image_url, featured, created_at`

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// projectRow receives a project with its tags aggregated into one JSON column.
type projectRow struct {
	models.Project
	Tags datatypes.JSON `gorm:"column:tags"`
}

// FindAll returns projects newest first, optionally only the featured ones.
func (r *ProjectRepo) FindAll(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []interface{}
	if featuredOnly {
		query += ` WHERE featured = ?`
		args = append(args, true)
	}
	query += ` ORDER BY created_at DESC`

	projects := []models.Project{}
	if err := read(ctx, r.db).Raw(query, args...).Scan(&projects).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "projects", err)
	}
	return projects, nil
}

// FindByID returns the project and its tags. Tags is empty, never nil, for an
// untagged project.
func (r *ProjectRepo) FindByID(ctx context.Context, id int64) (*models.ProjectDetail, error) {
	var row projectRow
	result := read(ctx, r.db).Raw(`
		SELECT p.id, p.title, p.description, p.tech_stack, p.live_url, p.github_url,
		       p.image_url, p.featured, p.created_at,
		       COALESCE(
		           json_agg(json_build_object('id', t.id, 'name', t.name) ORDER BY t.name)
		               FILTER (WHERE t.id IS NOT NULL),
		           '[]'::json
		       ) AS tags
		FROM projects p
		LEFT JOIN project_tags pt ON pt.project_id = p.id
		LEFT JOIN tags t ON t.id = pt.tag_id
		WHERE p.id = ?
		GROUP BY p.id`, id).Scan(&row)
	if result.Error != nil {
		return nil, errs.NewDatabaseError("get", "project", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewNotFound("project")
	}

	detail := &models.ProjectDetail{Project: row.Project, Tags: []models.Tag{}}
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &detail.Tags); err != nil {
			return nil, errs.NewInternalErrorWithCause("decode project tags", err)
		}
	}
	return detail, nil
}

// Add inserts the project and links it to tagIDs in one transaction. project is
// reloaded from the inserted row.
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project, tagIDs []int64) error {
	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Raw(`
			INSERT INTO projects (title, description, tech_stack, live_url, github_url, image_url, featured)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING `+projectColumns,
			project.Title, project.Description, project.TechStack,
			project.LiveURL, project.GithubURL, project.ImageURL, project.Featured,
		).Scan(project)
		if result.Error != nil {
			return result.Error
		}
		return linkTags(tx, project.ID, tagIDs)
	})
	if err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// Update replaces every column of the project. A nil tagIDs keeps the current
// links; any other value, including an empty slice, replaces them.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project, tagIDs []int64) error {
	id := project.ID
	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Raw(`
			UPDATE projects
			SET title = ?, description = ?, tech_stack = ?, live_url = ?,
			    github_url = ?, image_url = ?, featured = ?
			WHERE id = ?
			RETURNING `+projectColumns,
			project.Title, project.Description, project.TechStack, project.LiveURL,
			project.GithubURL, project.ImageURL, project.Featured, id,
		).Scan(project)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFound("project")
		}
		if tagIDs == nil {
			return nil
		}
		if err := tx.Exec(`DELETE FROM project_tags WHERE project_id = ?`, id).Error; err != nil {
			return err
		}
		return linkTags(tx, id, tagIDs)
	})
	if err != nil {
		return errs.NewDatabaseError("update", "project", err)
	}
	return nil
}

// Delete removes the project; its tag links go with it through the cascade.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM projects WHERE id = ?`, id)
	if result.Error != nil {
		return errs.NewDatabaseError("delete", "project", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}

func linkTags(tx *gorm.DB, projectID int64, tagIDs []int64) error {
	seen := make(map[int64]struct{}, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, ok := seen[tagID]; ok {
			continue
		}
		seen[tagID] = struct{}{}
		if err := tx.Exec(`INSERT INTO project_tags (project_id, tag_id) VALUES (?, ?)`, projectID, tagID).Error; err != nil {
			return err
		}
	}
	return nil
}
