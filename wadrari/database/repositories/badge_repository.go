package repositories

import (
	"context"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/uptrace/bun"
)

type BadgeRepository interface {
	Grant(ctx context.Context, userID, name string) error
	GetByUser(ctx context.Context, userID string) ([]*models.Badge, error)
	HasBadge(ctx context.Context, userID, name string) (bool, error)
}

type badgeRepository struct {
	db *bun.DB
}

func NewBadgeRepository(db *bun.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) Grant(ctx context.Context, userID, name string) error {
	badge := &models.Badge{
		UserID:   userID,
		Name:     name,
		EarnedAt: time.Now(),
	}
	_, err := r.db.NewInsert().Model(badge).Exec(ctx)
	return err
}

func (r *badgeRepository) GetByUser(ctx context.Context, userID string) ([]*models.Badge, error) {
	var badges []*models.Badge
	err := r.db.NewSelect().
		Model(&badges).
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Scan(ctx)
	return badges, err
}

func (r *badgeRepository) HasBadge(ctx context.Context, userID, name string) (bool, error) {
	return r.db.NewSelect().
		Model((*models.Badge)(nil)).
		Where("user_id = ?", userID).
		Where("name = ?", name).
		Exists(ctx)
}
