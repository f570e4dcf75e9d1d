package models

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"column:title;type:text;not null"`
	Description string    `json:"description" gorm:"column:description;type:text;not null;default:''"`
	TechStack   string    `json:"tech_stack" gorm:"column:tech_stack;type:text;not null;default:''"`
	LiveURL     *string   `json:"live_url" gorm:"column:live_url;type:text"`
	GithubURL   *string   `json:"github_url" gorm:"column:github_url;type:text"`
	ImageURL    *string   `json:"image_url" gorm:"column:image_url;type:text"`
	Featured    bool      `json:"featured" gorm:"column:featured;not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Project) TableName() string { return "projects" }

// ProjectDetail is a project with its tags resolved through project_tags.
// Tags is never nil so it always encodes as a JSON array.
type ProjectDetail struct {
	Project
	Tags []Tag `json:"tags"`
}
