package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID       string `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	ChatID   string `bun:"chat_id,type:uuid,nullzero"`
	SenderID string `bun:"sender_id,notnull,type:uuid"`
	Content  string `bun:"content,notnull"`

	// ClientToken is generated by the sending client and carried through to
	// the stored row so a realtime insert event can be matched exactly
	// against the in-flight optimistic entry instead of by content heuristics.
	ClientToken string `bun:"client_token"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`

	// Relations
	Sender *User `bun:"rel:belongs-to,join:sender_id=id"`
}
