package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DailyActivity is a best-effort per (user, day) aggregate. It is advisory
// display data; the QuestCompletion ledger stays authoritative for grants,
// so a failed write here never rolls anything back.
type DailyActivity struct {
	bun.BaseModel `bun:"table:daily_activities,alias:da"`

	ID              int64     `bun:"id,pk,autoincrement"`
	UserID          string    `bun:"user_id,notnull,type:uuid"`
	Day             string    `bun:"day,notnull"` // local date, YYYY-MM-DD
	MessagesSent    int       `bun:"messages_sent,notnull,default:0"`
	StoriesPosted   int       `bun:"stories_posted,notnull,default:0"`
	QuestsCompleted int       `bun:"quests_completed,notnull,default:0"`
	TrophiesEarned  int64     `bun:"trophies_earned,notnull,default:0"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

// DayString formats a timestamp as the local-midnight-bounded day key used
// across quest windows, streaks and activity aggregates.
func DayString(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
