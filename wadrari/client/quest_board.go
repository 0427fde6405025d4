package client

import (
	"context"
	"sync"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/services"
)

// QuestBackend is the slice of the quest surface the board uses.
type QuestBackend interface {
	ListForUser(ctx context.Context, userID string) gateway.Result[[]*models.QuestWithProgress]
	Complete(ctx context.Context, userID, questID string) gateway.Result[*services.CompletionOutcome]
}

// QuestBoard is the quest screen. It guards against double taps locally;
// the completion ledger makes even racing taps from two devices harmless.
type QuestBoard struct {
	backend QuestBackend
	selfID  string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewQuestBoard(backend QuestBackend, selfID string) *QuestBoard {
	return &QuestBoard{
		backend:  backend,
		selfID:   selfID,
		inFlight: make(map[string]struct{}),
	}
}

// Quests returns the board with the caller's progress.
func (b *QuestBoard) Quests(ctx context.Context) gateway.Result[[]*models.QuestWithProgress] {
	return b.backend.ListForUser(ctx, b.selfID)
}

// Complete attempts one completion. A tap while the previous one is still
// in flight is skipped locally without touching the backend.
func (b *QuestBoard) Complete(ctx context.Context, questID string) gateway.Result[*services.CompletionOutcome] {
	b.mu.Lock()
	if _, busy := b.inFlight[questID]; busy {
		b.mu.Unlock()
		return gateway.Skip(&services.CompletionOutcome{QuestID: questID})
	}
	b.inFlight[questID] = struct{}{}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.inFlight, questID)
		b.mu.Unlock()
	}()

	return b.backend.Complete(ctx, b.selfID, questID)
}
