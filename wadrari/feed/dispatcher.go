// Package feed routes realtime insert notifications into chat views. Each
// open view holds exactly one dispatcher, which scopes incoming messages
// to its chat and suppresses rows that are echoes of the view's own
// in-flight optimistic writes.
package feed

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/logger"
)

// seenCacheSize bounds replay detection. A session that has scrolled past
// this many messages can no longer be shown a replay of the oldest ones,
// which is harmless next to growing without bound.
const seenCacheSize = 1024

// MessageSource is the slice of the gateway the dispatcher subscribes
// through.
type MessageSource interface {
	SubscribeMessageInserts(onInsert func(*models.Message)) gateway.Unsubscribe
}

// PendingMessage describes one in-flight optimistic send, used to decide
// whether an incoming realtime row is our own echo.
type PendingMessage struct {
	TempID   string
	Token    string
	SenderID string
	ChatID   string
	Content  string
}

// Config wires a dispatcher to its owning view.
type Config struct {
	// ChatID scopes delivery; empty means the global room (rows with no
	// chat reference).
	ChatID string

	// SelfID is the signed-in user, used by the heuristic duplicate match.
	SelfID string

	Authors *Authors

	// Pending returns a snapshot of the view's unresolved optimistic
	// sends.
	Pending func() []PendingMessage

	// OnMessage delivers a genuinely new message with its resolved author
	// name.
	OnMessage func(msg *models.Message, author string)

	// OnDuplicate reports that msg is the server row for the pending entry
	// tempID; the view confirms that entry instead of rendering twice.
	OnDuplicate func(tempID string, msg *models.Message)
}

type Dispatcher struct {
	cfg    Config
	source MessageSource

	mu    sync.Mutex
	unsub gateway.Unsubscribe
	seen  *lru.Cache
}

func NewDispatcher(source MessageSource, cfg Config) *Dispatcher {
	seen, _ := lru.New(seenCacheSize)
	return &Dispatcher{
		cfg:    cfg,
		source: source,
		seen:   seen,
	}
}

// Start opens the single subscription for this view. Calling it twice is
// a no-op.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.unsub != nil {
		return
	}
	d.unsub = d.source.SubscribeMessageInserts(func(msg *models.Message) {
		d.handle(ctx, msg)
	})
}

// Stop releases the subscription. Safe to call more than once.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	unsub := d.unsub
	d.unsub = nil
	d.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (d *Dispatcher) handle(ctx context.Context, msg *models.Message) {
	if ctx.Err() != nil {
		return
	}
	if msg.ChatID != d.cfg.ChatID {
		return
	}

	// A channel replay or double notification of the same row is dropped.
	if dup, _ := d.seen.ContainsOrAdd(msg.ID, struct{}{}); dup {
		return
	}

	if tempID, ok := d.matchPending(msg); ok {
		logger.LogSystem("realtime echo suppressed",
			"message_id", msg.ID, "temp_id", tempID)
		if d.cfg.OnDuplicate != nil {
			d.cfg.OnDuplicate(tempID, msg)
		}
		return
	}

	author := UnknownAuthor
	if msg.Sender != nil && msg.Sender.DisplayName != "" {
		author = msg.Sender.DisplayName
	} else if d.cfg.Authors != nil {
		author = d.cfg.Authors.DisplayName(ctx, msg.SenderID)
	}

	if d.cfg.OnMessage != nil {
		d.cfg.OnMessage(msg, author)
	}
}

// matchPending decides whether msg echoes one of the view's own in-flight
// sends: first by exact idempotency token, then by a same sender, same
// chat, same content heuristic for rows written before tokens existed.
func (d *Dispatcher) matchPending(msg *models.Message) (string, bool) {
	if d.cfg.Pending == nil {
		return "", false
	}
	pending := d.cfg.Pending()

	if msg.ClientToken != "" {
		for _, p := range pending {
			if p.Token == msg.ClientToken {
				return p.TempID, true
			}
		}
	}

	if msg.SenderID != d.cfg.SelfID {
		return "", false
	}
	for _, p := range pending {
		if p.SenderID == msg.SenderID && p.ChatID == msg.ChatID && p.Content == msg.Content {
			return p.TempID, true
		}
	}
	return "", false
}
