package models

import "time"

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"column:name;type:text;not null"`
	Email     string    `json:"email" gorm:"column:email;type:text;not null"`
	Message   string    `json:"message" gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
