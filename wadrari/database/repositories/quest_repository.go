package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/uptrace/bun"
)

type QuestRepository interface {
	// Quest definitions
	GetByID(ctx context.Context, questID string) (*models.Quest, error)
	GetActiveQuests(ctx context.Context) ([]*models.Quest, error)
	Create(ctx context.Context, quest *models.Quest) error
	Deactivate(ctx context.Context, questID string) error

	// Completion ledger
	GetCompletion(ctx context.Context, userID, questID, day string) (*models.QuestCompletion, error)
	GetLifetimeCompletionCount(ctx context.Context, userID, questID string) (int, error)
	IncrementCompletion(ctx context.Context, userID, questID, day string, trophies int64) error
	ListCompletions(ctx context.Context, userID, day string) ([]*models.QuestCompletion, error)
}

type questRepository struct {
	db *bun.DB
}

func NewQuestRepository(db *bun.DB) QuestRepository {
	return &questRepository{db: db}
}

func (r *questRepository) GetByID(ctx context.Context, questID string) (*models.Quest, error) {
	quest := new(models.Quest)
	err := r.db.NewSelect().
		Model(quest).
		Where("id = ?", questID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("quest %s: %w", questID, err)
		}
		return nil, err
	}

	return quest, nil
}

func (r *questRepository) GetActiveQuests(ctx context.Context) ([]*models.Quest, error) {
	var quests []*models.Quest
	err := r.db.NewSelect().
		Model(&quests).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Scan(ctx)
	return quests, err
}

func (r *questRepository) Create(ctx context.Context, quest *models.Quest) error {
	quest.CreatedAt = time.Now()
	quest.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(quest).Returning("*").Exec(ctx)
	return err
}

// Deactivate soft-deletes a quest definition; completion ledger rows stay.
func (r *questRepository) Deactivate(ctx context.Context, questID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Quest)(nil)).
		Set("is_active = ?", false).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", questID).
		Exec(ctx)
	return err
}

// GetCompletion returns nil without error when no ledger row exists for the
// window yet.
func (r *questRepository) GetCompletion(ctx context.Context, userID, questID, day string) (*models.QuestCompletion, error) {
	completion := new(models.QuestCompletion)
	err := r.db.NewSelect().
		Model(completion).
		Where("user_id = ?", userID).
		Where("quest_id = ?", questID).
		Where("day = ?", day).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return completion, nil
}

// GetLifetimeCompletionCount sums completions across all windows, the check
// one-time quests use.
func (r *questRepository) GetLifetimeCompletionCount(ctx context.Context, userID, questID string) (int, error) {
	var total sql.NullInt64
	err := r.db.NewSelect().
		Model((*models.QuestCompletion)(nil)).
		ColumnExpr("SUM(completion_count)").
		Where("user_id = ?", userID).
		Where("quest_id = ?", questID).
		Scan(ctx, &total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return int(total.Int64), nil
}

// IncrementCompletion upserts the (user, quest, day) ledger row, creating
// it at count 1 or bumping the existing count.
func (r *questRepository) IncrementCompletion(ctx context.Context, userID, questID, day string, trophies int64) error {
	now := time.Now()
	completion := &models.QuestCompletion{
		UserID:          userID,
		QuestID:         questID,
		Day:             day,
		CompletionCount: 1,
		TrophiesEarned:  trophies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := r.db.NewInsert().
		Model(completion).
		On("CONFLICT (user_id, quest_id, day) DO UPDATE").
		Set("completion_count = quest_completions.completion_count + 1").
		Set("trophies_earned = quest_completions.trophies_earned + EXCLUDED.trophies_earned").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	return err
}

func (r *questRepository) ListCompletions(ctx context.Context, userID, day string) ([]*models.QuestCompletion, error) {
	var completions []*models.QuestCompletion
	err := r.db.NewSelect().
		Model(&completions).
		Where("user_id = ?", userID).
		Where("day = ?", day).
		Scan(ctx)
	return completions, err
}
