// Package optimistic keeps list views responsive while writes are in
// flight. An entry is appended locally under a temporary id, then either
// confirmed in place with the server row or rolled back when the write
// fails.
package optimistic

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SimaxBen/wadrari/wadrari/logger"
)

// State of one tracked mutation.
type State int

const (
	Pending State = iota
	Confirmed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case RolledBack:
		return "rolled_back"
	}
	return "unknown"
}

// TempIDPrefix marks entries that only exist locally. Anything rendered
// with this prefix has not been acknowledged by the backend yet.
const TempIDPrefix = "tmp_"

// NewTempID returns a fresh local-only identifier.
func NewTempID() string {
	return TempIDPrefix + uuid.NewString()
}

// IsTempID reports whether id was produced by NewTempID.
func IsTempID(id string) bool {
	return len(id) > len(TempIDPrefix) && id[:len(TempIDPrefix)] == TempIDPrefix
}

// Entry is one tracked mutation: the locally rendered value plus its
// lifecycle state.
type Entry[T any] struct {
	TempID string
	Token  string
	State  State
	Value  T
}

// Reconciler tracks pending mutations against a ViewList. Each mutation
// is independent: two in-flight submissions resolve separately, in any
// order. Safe for concurrent use.
type Reconciler[T any] struct {
	mu      sync.Mutex
	view    *ViewList[T]
	idFn    func(T) string
	pending map[string]*Entry[T]
	// byToken indexes pending entries by idempotency token for realtime
	// de-duplication.
	byToken map[string]string
}

// NewReconciler builds a reconciler over view. idFn extracts the
// server-assigned id from a confirmed value so the list entry can be
// rekeyed from its temp id; pass nil to keep temp ids after confirmation.
func NewReconciler[T any](view *ViewList[T], idFn func(T) string) *Reconciler[T] {
	return &Reconciler[T]{
		view:    view,
		idFn:    idFn,
		pending: make(map[string]*Entry[T]),
		byToken: make(map[string]string),
	}
}

// Submit renders value immediately and runs send in a goroutine. On
// success the local entry is replaced in place by the server value; on
// failure it is removed and the error surfaces through onDone. ctx
// cancellation rolls the entry back too: a torn-down view never applies a
// late result.
func (r *Reconciler[T]) Submit(
	ctx context.Context,
	token string,
	value T,
	send func(ctx context.Context) (T, error),
	onDone func(tempID string, st State, err error),
) string {
	tempID := NewTempID()

	r.mu.Lock()
	entry := &Entry[T]{TempID: tempID, Token: token, State: Pending, Value: value}
	r.pending[tempID] = entry
	if token != "" {
		r.byToken[token] = tempID
	}
	r.view.Append(tempID, value)
	r.mu.Unlock()

	go func() {
		confirmed, err := send(ctx)
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		if err != nil {
			r.Rollback(tempID)
			logger.LogSystem("optimistic write rolled back",
				"temp_id", tempID, "error", err)
			if onDone != nil {
				onDone(tempID, RolledBack, err)
			}
			return
		}
		r.Confirm(tempID, confirmed)
		if onDone != nil {
			onDone(tempID, Confirmed, nil)
		}
	}()

	return tempID
}

// Confirm replaces the pending entry with value at its current position.
// Unknown or already-resolved ids are ignored.
func (r *Reconciler[T]) Confirm(tempID string, value T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.pending[tempID]
	if !ok || entry.State != Pending {
		return false
	}
	entry.State = Confirmed
	entry.Value = value
	r.forget(entry)

	if r.idFn != nil {
		if serverID := r.idFn(value); serverID != "" {
			return r.view.Rekey(tempID, serverID, value)
		}
	}
	return r.view.Replace(tempID, value)
}

// Rollback removes the pending entry from the view. The remaining
// entries keep their relative order.
func (r *Reconciler[T]) Rollback(tempID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.pending[tempID]
	if !ok || entry.State != Pending {
		return false
	}
	entry.State = RolledBack
	r.forget(entry)
	return r.view.Remove(tempID)
}

func (r *Reconciler[T]) forget(entry *Entry[T]) {
	delete(r.pending, entry.TempID)
	if entry.Token != "" {
		delete(r.byToken, entry.Token)
	}
}

// PendingByToken returns the temp id of the in-flight entry carrying
// token, if any.
func (r *Reconciler[T]) PendingByToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byToken[token]
	return id, ok
}

// PendingCount reports how many mutations are still unresolved.
func (r *Reconciler[T]) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Pending returns a snapshot of the unresolved entries.
func (r *Reconciler[T]) Pending() []Entry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry[T], 0, len(r.pending))
	for _, e := range r.pending {
		out = append(out, *e)
	}
	return out
}
