package repositories

import (
	"context"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/uptrace/bun"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	List(ctx context.Context, chatID string, limit int) ([]*models.Message, error)
}

type messageRepository struct {
	db *bun.DB
}

func NewMessageRepository(db *bun.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts the message and scans back the server-assigned row so the
// caller receives the authoritative id and timestamp.
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	message.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(message).
		Returning("*").
		Exec(ctx)
	return err
}

// List returns messages in append order. An empty chatID lists the global
// room (rows without a chat reference).
func (r *messageRepository) List(ctx context.Context, chatID string, limit int) ([]*models.Message, error) {
	var messages []*models.Message
	q := r.db.NewSelect().
		Model(&messages).
		Relation("Sender")

	if chatID == "" {
		q = q.Where("m.chat_id IS NULL")
	} else {
		q = q.Where("m.chat_id = ?", chatID)
	}

	err := q.Order("m.created_at ASC").
		Limit(limit).
		Scan(ctx)
	return messages, err
}
