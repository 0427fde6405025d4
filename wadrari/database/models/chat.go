package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Chat struct {
	bun.BaseModel `bun:"table:chats,alias:c"`

	ID        string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name      string    `bun:"name,notnull"`
	Type      string    `bun:"type,notnull,default:'public'"`
	ImageURL  string    `bun:"image_url"`
	CreatorID string    `bun:"creator_id,type:uuid,nullzero"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Chat type constants
const (
	ChatTypePublic = "public"
	ChatTypeGroup  = "group"
)

// DefaultChatName is the public room every install starts with.
const DefaultChatName = "General"
