package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/uptrace/bun"
)

type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id string) (*models.Story, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Story, error)

	AddComment(ctx context.Context, comment *models.StoryComment) error
	GetComments(ctx context.Context, storyID string) ([]*models.StoryComment, error)

	AddReaction(ctx context.Context, reaction *models.StoryReaction) error
	DeleteReaction(ctx context.Context, storyID, userID, kind string) error
	HasReaction(ctx context.Context, storyID, userID, kind string) (bool, error)
	GetReactions(ctx context.Context, storyID string) ([]*models.StoryReaction, error)
	CountReactions(ctx context.Context, storyID, kind string) (int, error)
}

type storyRepository struct {
	db *bun.DB
}

func NewStoryRepository(db *bun.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	story.CreatedAt = time.Now()
	if story.ExpiresAt.IsZero() {
		story.ExpiresAt = story.CreatedAt.Add(models.StoryLifetime)
	}
	_, err := r.db.NewInsert().Model(story).Returning("*").Exec(ctx)
	return err
}

// GetByID intentionally does not filter on expiry; direct lookups can still
// see expired stories.
func (r *storyRepository) GetByID(ctx context.Context, id string) (*models.Story, error) {
	story := new(models.Story)
	err := r.db.NewSelect().
		Model(story).
		Relation("Author").
		Where("s.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return story, nil
}

func (r *storyRepository) ListRecent(ctx context.Context, limit int) ([]*models.Story, error) {
	var stories []*models.Story
	err := r.db.NewSelect().
		Model(&stories).
		Relation("Author").
		Order("s.created_at DESC").
		Limit(limit).
		Scan(ctx)
	return stories, err
}

func (r *storyRepository) AddComment(ctx context.Context, comment *models.StoryComment) error {
	comment.CreatedAt = time.Now()
	_, err := r.db.NewInsert().Model(comment).Returning("*").Exec(ctx)
	return err
}

func (r *storyRepository) GetComments(ctx context.Context, storyID string) ([]*models.StoryComment, error) {
	var comments []*models.StoryComment
	err := r.db.NewSelect().
		Model(&comments).
		Relation("Author").
		Where("sc.story_id = ?", storyID).
		Order("sc.created_at ASC").
		Scan(ctx)
	return comments, err
}

// AddReaction relies on the unique (story, user, kind) index; re-liking an
// already-liked story is a no-op insert.
func (r *storyRepository) AddReaction(ctx context.Context, reaction *models.StoryReaction) error {
	reaction.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(reaction).
		On("CONFLICT (story_id, user_id, kind) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *storyRepository) DeleteReaction(ctx context.Context, storyID, userID, kind string) error {
	_, err := r.db.NewDelete().
		Model((*models.StoryReaction)(nil)).
		Where("story_id = ?", storyID).
		Where("user_id = ?", userID).
		Where("kind = ?", kind).
		Exec(ctx)
	return err
}

func (r *storyRepository) HasReaction(ctx context.Context, storyID, userID, kind string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.StoryReaction)(nil)).
		Where("story_id = ?", storyID).
		Where("user_id = ?", userID).
		Where("kind = ?", kind).
		Exists(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}
	return exists, nil
}

func (r *storyRepository) GetReactions(ctx context.Context, storyID string) ([]*models.StoryReaction, error) {
	var reactions []*models.StoryReaction
	err := r.db.NewSelect().
		Model(&reactions).
		Where("story_id = ?", storyID).
		Order("created_at ASC").
		Scan(ctx)
	return reactions, err
}

func (r *storyRepository) CountReactions(ctx context.Context, storyID, kind string) (int, error) {
	return r.db.NewSelect().
		Model((*models.StoryReaction)(nil)).
		Where("story_id = ?", storyID).
		Where("kind = ?", kind).
		Count(ctx)
}
