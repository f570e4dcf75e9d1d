package models

// ProjectTag links a project to a tag. Both foreign keys cascade on delete.
type ProjectTag struct {
	ProjectID int64 `json:"project_id" gorm:"column:project_id;primaryKey;autoIncrement:false"`
	TagID     int64 `json:"tag_id" gorm:"column:tag_id;primaryKey;autoIncrement:false;index:idx_project_tags_tag_id"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Tag     Tag     `json:"-" gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ProjectTag) TableName() string { return "project_tags" }
