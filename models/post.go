package models

import (
	"strings"
	"time"
)

// Post is a blog post. Slug is indexed but not unique.
type Post struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"column:title;type:text;not null"`
	Content   string    `json:"content" gorm:"column:content;type:text;not null"`
	Slug      string    `json:"slug" gorm:"column:slug;type:text;not null;index"`
	Published bool      `json:"published" gorm:"column:published;not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Post) TableName() string { return "posts" }

// PostSummary is a post without its content, used by list endpoints.
type PostSummary struct {
	ID        int64     `json:"id" gorm:"column:id"`
	Title     string    `json:"title" gorm:"column:title"`
	Slug      string    `json:"slug" gorm:"column:slug"`
	Published bool      `json:"published" gorm:"column:published"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// Slugify lowercases the title and turns spaces into hyphens. Nothing else is
// stripped and collisions are not detected.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}
