package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/uptrace/bun"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	GetByID(ctx context.Context, id string) (*models.Chat, error)
	GetByName(ctx context.Context, name string) (*models.Chat, error)
	List(ctx context.Context, includePublic bool) ([]*models.Chat, error)
	Update(ctx context.Context, chat *models.Chat) error
}

type chatRepository struct {
	db *bun.DB
}

func NewChatRepository(db *bun.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, chat *models.Chat) error {
	chat.CreatedAt = time.Now()
	chat.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(chat).Returning("*").Exec(ctx)
	return err
}

func (r *chatRepository) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	chat := new(models.Chat)
	err := r.db.NewSelect().
		Model(chat).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (r *chatRepository) GetByName(ctx context.Context, name string) (*models.Chat, error) {
	chat := new(models.Chat)
	err := r.db.NewSelect().
		Model(chat).
		Where("name = ?", name).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return chat, nil
}

func (r *chatRepository) List(ctx context.Context, includePublic bool) ([]*models.Chat, error) {
	var chats []*models.Chat
	q := r.db.NewSelect().Model(&chats)
	if !includePublic {
		q = q.Where("type != ?", models.ChatTypePublic)
	}
	err := q.Order("created_at ASC").Scan(ctx)
	return chats, err
}

func (r *chatRepository) Update(ctx context.Context, chat *models.Chat) error {
	chat.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(chat).
		WherePK().
		Exec(ctx)
	return err
}
