package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Badge rows are append-only; a badge has no lifecycle beyond creation.
type Badge struct {
	bun.BaseModel `bun:"table:badges,alias:b"`

	ID       int64     `bun:"id,pk,autoincrement"`
	UserID   string    `bun:"user_id,notnull,type:uuid"`
	Name     string    `bun:"name,notnull"`
	EarnedAt time.Time `bun:"earned_at,notnull,default:current_timestamp"`
}

const (
	BadgeFirstMessage = "first_message"
	BadgeStreakWeek   = "streak_7"
	BadgeStreakMonth  = "streak_30"
)
