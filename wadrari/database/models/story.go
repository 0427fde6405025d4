package models

import (
	"time"

	"github.com/uptrace/bun"
)

// StoryLifetime is the fixed time a story stays visible after posting.
// Expiry is a display-time filter, there is no purge job.
const StoryLifetime = 24 * time.Hour

type Story struct {
	bun.BaseModel `bun:"table:stories,alias:s"`

	ID        string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID    string    `bun:"user_id,notnull,type:uuid"`
	Content   string    `bun:"content,notnull"`
	MediaURL  string    `bun:"media_url"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`

	// Relations
	Author *User `bun:"rel:belongs-to,join:user_id=id"`
}

// Expired reports whether the story should be hidden from listings.
func (s *Story) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type StoryComment struct {
	bun.BaseModel `bun:"table:story_comments,alias:sc"`

	ID        string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	StoryID   string    `bun:"story_id,notnull,type:uuid"`
	UserID    string    `bun:"user_id,notnull,type:uuid"`
	Content   string    `bun:"content,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`

	Author *User `bun:"rel:belongs-to,join:user_id=id"`
}

// StoryReaction is unique per (story, user, kind). Liking is an insert,
// unliking a delete; there is no toggled flag.
type StoryReaction struct {
	bun.BaseModel `bun:"table:story_reactions,alias:sr"`

	ID        string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	StoryID   string    `bun:"story_id,notnull,type:uuid"`
	UserID    string    `bun:"user_id,notnull,type:uuid"`
	Kind      string    `bun:"kind,notnull,default:'like'"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

const ReactionKindLike = "like"
