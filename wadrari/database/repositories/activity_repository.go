package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/uptrace/bun"
)

// ActivityDelta is the per-event increment applied to the daily aggregate.
type ActivityDelta struct {
	Messages        int
	Stories         int
	QuestsCompleted int
	Trophies        int64
}

type ActivityRepository interface {
	Increment(ctx context.Context, userID, day string, delta ActivityDelta) error
	Get(ctx context.Context, userID, day string) (*models.DailyActivity, error)
}

type activityRepository struct {
	db *bun.DB
}

func NewActivityRepository(db *bun.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Increment(ctx context.Context, userID, day string, delta ActivityDelta) error {
	activity := &models.DailyActivity{
		UserID:          userID,
		Day:             day,
		MessagesSent:    delta.Messages,
		StoriesPosted:   delta.Stories,
		QuestsCompleted: delta.QuestsCompleted,
		TrophiesEarned:  delta.Trophies,
		UpdatedAt:       time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(activity).
		On("CONFLICT (user_id, day) DO UPDATE").
		Set("messages_sent = daily_activities.messages_sent + EXCLUDED.messages_sent").
		Set("stories_posted = daily_activities.stories_posted + EXCLUDED.stories_posted").
		Set("quests_completed = daily_activities.quests_completed + EXCLUDED.quests_completed").
		Set("trophies_earned = daily_activities.trophies_earned + EXCLUDED.trophies_earned").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	return err
}

func (r *activityRepository) Get(ctx context.Context, userID, day string) (*models.DailyActivity, error) {
	activity := new(models.DailyActivity)
	err := r.db.NewSelect().
		Model(activity).
		Where("user_id = ?", userID).
		Where("day = ?", day).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return activity, nil
}
