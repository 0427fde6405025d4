package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/services"
)

type fakeQuestBackend struct {
	mu       sync.Mutex
	gate     chan struct{}
	attempts int
}

func (f *fakeQuestBackend) ListForUser(ctx context.Context, userID string) gateway.Result[[]*models.QuestWithProgress] {
	return gateway.Ok([]*models.QuestWithProgress{})
}

func (f *fakeQuestBackend) Complete(ctx context.Context, userID, questID string) gateway.Result[*services.CompletionOutcome] {
	f.mu.Lock()
	f.attempts++
	f.mu.Unlock()
	if f.gate != nil {
		<-f.gate
	}
	return gateway.Ok(&services.CompletionOutcome{QuestID: questID, TrophiesEarned: 10})
}

func TestQuestBoardDoubleTapGuard(t *testing.T) {
	backend := &fakeQuestBackend{gate: make(chan struct{})}
	board := NewQuestBoard(backend, "self")

	first := make(chan gateway.Result[*services.CompletionOutcome], 1)
	go func() {
		first <- board.Complete(context.Background(), "q1")
	}()

	// Wait for the first tap to reach the backend, then tap again.
	for {
		backend.mu.Lock()
		started := backend.attempts == 1
		backend.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	second := board.Complete(context.Background(), "q1")
	if !second.OK || !second.Skipped {
		t.Errorf("second tap = %+v, want local skip", second)
	}

	close(backend.gate)
	res := <-first
	if !res.OK || res.Skipped || res.Data.TrophiesEarned != 10 {
		t.Errorf("first tap = %+v", res)
	}

	backend.mu.Lock()
	attempts := backend.attempts
	backend.mu.Unlock()
	if attempts != 1 {
		t.Errorf("backend reached %d times, want 1", attempts)
	}

	// Once the first tap resolves, a new attempt goes through again.
	backend.gate = nil
	third := board.Complete(context.Background(), "q1")
	if !third.OK || third.Skipped {
		t.Errorf("third tap = %+v, want backend call", third)
	}
}
