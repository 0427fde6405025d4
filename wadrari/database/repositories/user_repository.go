package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	AddTrophies(ctx context.Context, userID string, trophies, xp int64) error
	SetSeasonalTrophies(ctx context.Context, userID string, seasonal int64) error
	SetStreak(ctx context.Context, userID string, streak int, activityAt time.Time) error
	TouchActivity(ctx context.Context, userID string, at time.Time) error
	IncrementMessageCount(ctx context.Context, userID string) error
	IncrementStoryCount(ctx context.Context, userID string) error
	GetTopUsers(ctx context.Context, limit int) ([]*models.User, error)
	GetUsers(ctx context.Context) ([]*models.User, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Warn("User not found in database",
				slog.String("type", "db"),
				slog.String("operation", "GetByID"),
				slog.String("user_id", id))
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("username = ?", username).
		Scan(ctx)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByCredentials performs the app's plain credential check against the
// users table. sql.ErrNoRows means the credentials did not match.
func (r *userRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("username = ?", username).
		Where("password = ?", password).
		Scan(ctx)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	return err
}

func (r *userRepository) AddTrophies(ctx context.Context, userID string, trophies, xp int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("trophies = trophies + ?", trophies).
		Set("xp = xp + ?", xp).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add trophies: %w", err)
	}
	return nil
}

func (r *userRepository) SetSeasonalTrophies(ctx context.Context, userID string, seasonal int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("seasonal_trophies = ?", seasonal).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func (r *userRepository) SetStreak(ctx context.Context, userID string, streak int, activityAt time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("current_streak = ?", streak).
		Set("last_activity = ?", activityAt).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func (r *userRepository) TouchActivity(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("last_activity = ?", at).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func (r *userRepository) IncrementMessageCount(ctx context.Context, userID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("total_messages = total_messages + 1").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func (r *userRepository) IncrementStoryCount(ctx context.Context, userID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("total_stories = total_stories + 1").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func (r *userRepository) GetTopUsers(ctx context.Context, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		OrderExpr("trophies DESC").
		Limit(limit).
		Scan(ctx)
	return users, err
}

func (r *userRepository) GetUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Order("created_at ASC").
		Scan(ctx)

	if err != nil {
		slog.Error("Database error when getting all users",
			slog.String("type", "db"),
			slog.String("operation", "GetUsers"),
			slog.String("error", err.Error()))
		return nil, err
	}

	return users, nil
}
