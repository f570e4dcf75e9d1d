package models

type Tag struct {
	ID   int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;type:text;not null;uniqueIndex"`
}

func (Tag) TableName() string { return "tags" }

// TagWithCount backs the public tag cloud.
type TagWithCount struct {
	ID           int64  `json:"id" gorm:"column:id"`
	Name         string `json:"name" gorm:"column:name"`
	ProjectCount int64  `json:"project_count" gorm:"column:project_count"`
}
