package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

const (
	postSummaryColumns = `id, title, slug, published, created_at, updated_at`
	postColumns        = `id, title, content, slug, published, created_at, updated_at`
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindPublished lists published posts newest first, without their content.
func (r *PostRepo) FindPublished(ctx context.Context) ([]models.PostSummary, error) {
	return r.findSummaries(ctx, `SELECT `+postSummaryColumns+` FROM posts WHERE published = ? ORDER BY created_at DESC`, true)
}

// FindAll lists every post, drafts included.
func (r *PostRepo) FindAll(ctx context.Context) ([]models.PostSummary, error) {
	return r.findSummaries(ctx, `SELECT `+postSummaryColumns+` FROM posts ORDER BY created_at DESC`)
}

func (r *PostRepo) findSummaries(ctx context.Context, query string, args ...interface{}) ([]models.PostSummary, error) {
	posts := []models.PostSummary{}
	if err := read(ctx, r.db).Raw(query, args...).Scan(&posts).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "posts", err)
	}
	return posts, nil
}

// FindPublishedBySlug returns the newest published post with the slug. Drafts
// are reported as not found.
func (r *PostRepo) FindPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	result := read(ctx, r.db).Raw(`
		SELECT `+postColumns+`
		FROM posts
		WHERE slug = ? AND published = ?
		ORDER BY created_at DESC
		LIMIT 1`, slug, true).Scan(&post)
	if result.Error != nil {
		return nil, errs.NewDatabaseError("get", "post", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewNotFound("post")
	}
	return &post, nil
}

// Add inserts the post, deriving the slug from the title when it is empty.
func (r *PostRepo) Add(ctx context.Context, post *models.Post) error {
	if post.Slug == "" {
		post.Slug = models.Slugify(post.Title)
	}
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO posts (title, content, slug, published)
		VALUES (?, ?, ?, ?)
		RETURNING `+postColumns,
		post.Title, post.Content, post.Slug, post.Published,
	).Scan(post).Error
	if err != nil {
		return errs.NewDatabaseError("create", "post", err)
	}
	return nil
}

// Update replaces the post by ID and refreshes updated_at. post is reloaded
// from the stored row.
func (r *PostRepo) Update(ctx context.Context, post *models.Post) error {
	if post.Slug == "" {
		post.Slug = models.Slugify(post.Title)
	}
	result := r.db.WithContext(ctx).Raw(`
		UPDATE posts
		SET title = ?, content = ?, slug = ?, published = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING `+postColumns,
		post.Title, post.Content, post.Slug, post.Published, post.ID,
	).Scan(post)
	if result.Error != nil {
		return errs.NewDatabaseError("update", "post", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("post")
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM posts WHERE id = ?`, id)
	if result.Error != nil {
		return errs.NewDatabaseError("delete", "post", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("post")
	}
	return nil
}
