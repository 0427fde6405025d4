// Package client composes the gateway, the optimistic reconciler and the
// realtime dispatcher into the stateful sessions screens hold on to. A
// session lives exactly as long as its screen; closing it cancels every
// in-flight operation it started.
package client

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/feed"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/optimistic"
)

// ChatBackend is the slice of the gateway a chat session uses.
type ChatBackend interface {
	ListMessages(ctx context.Context, chatID string, limit int) gateway.Result[[]*models.Message]
	SendMessage(ctx context.Context, params gateway.SendMessageParams) gateway.Result[*models.Message]
	SubscribeMessageInserts(onInsert func(*models.Message)) gateway.Unsubscribe
	GetUser(ctx context.Context, userID string) gateway.Result[*models.User]
}

// Accounting runs the engagement side effects after a confirmed send.
type Accounting interface {
	RecordMessageSent(ctx context.Context, userID, chatType string)
}

// ChatSessionConfig describes the chat a session opens into.
type ChatSessionConfig struct {
	// ChatID is empty for the global room.
	ChatID   string
	ChatType string
	SelfID   string

	// History is the number of messages loaded on open.
	History int

	// OnChange fires after any mutation of the rendered list. Optional.
	OnChange func()

	// Accounting is optional; without it a send has no engagement side
	// effects on this device.
	Accounting Accounting
}

// ChatSession is one open chat screen: the message list, its pending
// optimistic sends and its single realtime subscription.
type ChatSession struct {
	cfg     ChatSessionConfig
	backend ChatBackend

	ctx    context.Context
	cancel context.CancelFunc

	view *optimistic.ViewList[*models.Message]
	rec  *optimistic.Reconciler[*models.Message]
	disp *feed.Dispatcher
}

// OpenChat loads history and starts the realtime subscription. The
// returned session must be closed.
func OpenChat(ctx context.Context, backend ChatBackend, cfg ChatSessionConfig) (*ChatSession, *gateway.Error) {
	if cfg.History <= 0 {
		cfg.History = 50
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	view := optimistic.NewViewList[*models.Message]()
	s := &ChatSession{
		cfg:     cfg,
		backend: backend,
		ctx:     sessionCtx,
		cancel:  cancel,
		view:    view,
		rec: optimistic.NewReconciler(view, func(m *models.Message) string {
			if m == nil {
				return ""
			}
			return m.ID
		}),
	}

	res := backend.ListMessages(sessionCtx, cfg.ChatID, cfg.History)
	if !res.OK {
		cancel()
		return nil, res.Err
	}
	ids := make([]string, len(res.Data))
	for i, m := range res.Data {
		ids[i] = m.ID
	}
	view.Reset(ids, res.Data)

	s.disp = feed.NewDispatcher(backend, feed.Config{
		ChatID:      cfg.ChatID,
		SelfID:      cfg.SelfID,
		Authors:     feed.NewAuthors(backend),
		Pending:     s.pendingMessages,
		OnMessage:   s.onRealtimeMessage,
		OnDuplicate: s.onRealtimeEcho,
	})
	s.disp.Start(sessionCtx)

	return s, nil
}

// Send renders content immediately and reconciles it with the backend in
// the background. It returns the temp id the entry renders under while
// pending. Blank input is a no-op: nothing renders and no id is handed
// out.
func (s *ChatSession) Send(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	token := uuid.NewString()
	local := &models.Message{
		ChatID:      s.cfg.ChatID,
		SenderID:    s.cfg.SelfID,
		Content:     content,
		ClientToken: token,
	}

	tempID := s.rec.Submit(s.ctx, token, local,
		func(ctx context.Context) (*models.Message, error) {
			res := s.backend.SendMessage(ctx, gateway.SendMessageParams{
				SenderID:    s.cfg.SelfID,
				ChatID:      s.cfg.ChatID,
				Content:     content,
				ClientToken: token,
			})
			if !res.OK {
				return nil, res.Err
			}
			return res.Data, nil
		},
		func(tempID string, st optimistic.State, err error) {
			if st == optimistic.Confirmed && s.cfg.Accounting != nil {
				s.cfg.Accounting.RecordMessageSent(s.ctx, s.cfg.SelfID, s.cfg.ChatType)
			}
			s.changed()
		})

	s.changed()
	return tempID
}

// Messages returns the list in render order: history, then confirmed and
// pending entries interleaved as they resolved.
func (s *ChatSession) Messages() []*models.Message {
	_, values := s.view.Snapshot()
	return values
}

// PendingCount reports how many sends are still unresolved.
func (s *ChatSession) PendingCount() int {
	return s.rec.PendingCount()
}

// Close tears the session down: the subscription is released and late
// results of in-flight sends are discarded.
func (s *ChatSession) Close() {
	s.cancel()
	s.disp.Stop()
}

func (s *ChatSession) pendingMessages() []feed.PendingMessage {
	entries := s.rec.Pending()
	out := make([]feed.PendingMessage, 0, len(entries))
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		out = append(out, feed.PendingMessage{
			TempID:   e.TempID,
			Token:    e.Token,
			SenderID: e.Value.SenderID,
			ChatID:   e.Value.ChatID,
			Content:  e.Value.Content,
		})
	}
	return out
}

func (s *ChatSession) onRealtimeMessage(msg *models.Message, author string) {
	if msg.Sender == nil {
		msg.Sender = &models.User{ID: msg.SenderID, DisplayName: author}
	}
	if s.view.Contains(msg.ID) {
		return
	}
	s.view.Append(msg.ID, msg)
	s.changed()
}

// onRealtimeEcho confirms the pending entry with the authoritative server
// row instead of rendering the notification as a second message.
func (s *ChatSession) onRealtimeEcho(tempID string, msg *models.Message) {
	s.rec.Confirm(tempID, msg)
	s.changed()
}

func (s *ChatSession) changed() {
	if s.cfg.OnChange != nil {
		s.cfg.OnChange()
	}
}
