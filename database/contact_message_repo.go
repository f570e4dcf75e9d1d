package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

const contactMessageColumns = `id, name, email, message, created_at`

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

func (r *ContactMessageRepo) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	err := read(ctx, r.db).Raw(`
		SELECT `+contactMessageColumns+`
		FROM contact_messages
		ORDER BY created_at DESC`).Scan(&messages).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", "contact messages", err)
	}
	return messages, nil
}

// Add stores the message and reloads msg from the inserted row.
func (r *ContactMessageRepo) Add(ctx context.Context, msg *models.ContactMessage) error {
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contact_messages (name, email, message)
		VALUES (?, ?, ?)
		RETURNING `+contactMessageColumns,
		msg.Name, msg.Email, msg.Message,
	).Scan(msg).Error
	if err != nil {
		return errs.NewDatabaseError("create", "contact message", err)
	}
	return nil
}

func (r *ContactMessageRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM contact_messages WHERE id = ?`, id)
	if result.Error != nil {
		return errs.NewDatabaseError("delete", "message", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("message")
	}
	return nil
}
