package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          string `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Username    string `bun:"username,notnull,unique"`
	Password    string `bun:"password,notnull"`
	DisplayName string `bun:"display_name"`
	AvatarURL   string `bun:"avatar_url"`

	// Trophy economy. SeasonalTrophies is always derived from Trophies by
	// the season reset, never incremented directly.
	Trophies         int64 `bun:"trophies,notnull,default:0"`
	SeasonalTrophies int64 `bun:"seasonal_trophies,notnull,default:0"`
	XP               int64 `bun:"xp,notnull,default:0"`

	// Activity counters
	TotalMessages int64 `bun:"total_messages,notnull,default:0"`
	TotalStories  int64 `bun:"total_stories,notnull,default:0"`
	CurrentStreak int   `bun:"current_streak,notnull,default:0"`

	LastActivity time.Time `bun:"last_activity"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

// Level is derived from XP, one level per 1000 points.
func (u *User) Level() int {
	return int(u.XP/1000) + 1
}
