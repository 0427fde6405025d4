package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Quest struct {
	bun.BaseModel `bun:"table:quests,alias:q"`

	ID                   string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name                 string    `bun:"name,notnull"`
	Description          string    `bun:"description,notnull"`
	ImageURL             string    `bun:"image_url"`
	TrophyReward         int64     `bun:"trophy_reward,notnull,default:0"`
	Type                 string    `bun:"type,notnull,default:'daily'"`
	MaxCompletionsPerDay int       `bun:"max_completions_per_day,notnull,default:1"`
	IsActive             bool      `bun:"is_active,notnull,default:true"`
	CreatedAt            time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt            time.Time `bun:"updated_at,notnull"`
}

// Quest type constants. "lifetime" is an alias for "one_time"; both mean
// completable once ever, with no re-arming.
const (
	QuestTypeDaily      = "daily"
	QuestTypeRepeatable = "repeatable"
	QuestTypeOneTime    = "one_time"
	QuestTypeLifetime   = "lifetime"
)

// CompletionLimit returns the per-window completion bound for the quest.
func (q *Quest) CompletionLimit() int {
	switch q.Type {
	case QuestTypeOneTime, QuestTypeLifetime:
		return 1
	default:
		if q.MaxCompletionsPerDay <= 0 {
			return 1
		}
		return q.MaxCompletionsPerDay
	}
}

// OneTime reports whether the quest never re-arms after completion.
func (q *Quest) OneTime() bool {
	return q.Type == QuestTypeOneTime || q.Type == QuestTypeLifetime
}

// QuestCompletion is the authoritative per-user-per-quest-per-day ledger
// row. Client-side progress counters are advisory; this row decides
// whether a reward was granted.
type QuestCompletion struct {
	bun.BaseModel `bun:"table:quest_completions,alias:qc"`

	ID              int64     `bun:"id,pk,autoincrement"`
	UserID          string    `bun:"user_id,notnull,type:uuid"`
	QuestID         string    `bun:"quest_id,notnull,type:uuid"`
	Day             string    `bun:"day,notnull"` // local date, YYYY-MM-DD
	CompletionCount int       `bun:"completion_count,notnull,default:0"`
	TrophiesEarned  int64     `bun:"trophies_earned,notnull,default:0"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

// QuestWithProgress pairs a quest definition with the caller's ledger state
// for the current day, the shape the quest board renders.
type QuestWithProgress struct {
	Quest           *Quest
	CompletionCount int
	Completed       bool
}
