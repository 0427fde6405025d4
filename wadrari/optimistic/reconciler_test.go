package optimistic

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

type note struct {
	ID   string
	Text string
}

func noteID(n note) string { return n.ID }

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	<-done
}

func TestTempIDs(t *testing.T) {
	a, b := NewTempID(), NewTempID()
	if a == b {
		t.Error("temp ids must be unique")
	}
	if !IsTempID(a) {
		t.Errorf("IsTempID(%q) = false", a)
	}
	if IsTempID("7e6a7b36-1111-4f7a-9f33-2a8a8c9c0001") {
		t.Error("server uuid misidentified as temp id")
	}
	if !strings.HasPrefix(a, TempIDPrefix) {
		t.Errorf("temp id %q missing prefix", a)
	}
}

func TestSubmitConfirmKeepsPosition(t *testing.T) {
	view := NewViewList[note]()
	view.Reset([]string{"m1", "m2"}, []note{{ID: "m1", Text: "old"}, {ID: "m2", Text: "older"}})
	r := NewReconciler(view, noteID)

	done := make(chan struct{})
	tempID := r.Submit(context.Background(), "tok-1", note{Text: "hi"},
		func(ctx context.Context) (note, error) {
			return note{ID: "srv-1", Text: "hi"}, nil
		},
		func(id string, st State, err error) {
			if st != Confirmed || err != nil {
				t.Errorf("onDone(%s, %v)", st, err)
			}
			close(done)
		})

	if view.IndexOf(tempID) != 2 {
		t.Fatalf("optimistic entry at %d, want appended at 2", view.IndexOf(tempID))
	}

	waitDone(t, done)

	// Confirmed entry is rekeyed to the server id at the same index.
	if got := view.IndexOf("srv-1"); got != 2 {
		t.Errorf("confirmed entry at index %d, want 2", got)
	}
	if view.Contains(tempID) {
		t.Error("temp id still present after confirmation")
	}
	if view.Len() != 3 {
		t.Errorf("len = %d, want 3", view.Len())
	}
	if r.PendingCount() != 0 {
		t.Errorf("pending = %d, want 0", r.PendingCount())
	}
}

func TestSubmitRollbackRestoresList(t *testing.T) {
	view := NewViewList[note]()
	view.Reset([]string{"m1"}, []note{{ID: "m1", Text: "kept"}})
	r := NewReconciler(view, noteID)

	done := make(chan struct{})
	var gotErr error
	tempID := r.Submit(context.Background(), "tok-1", note{Text: "doomed"},
		func(ctx context.Context) (note, error) {
			return note{}, errors.New("backend said no")
		},
		func(id string, st State, err error) {
			if st != RolledBack {
				t.Errorf("state = %v, want RolledBack", st)
			}
			gotErr = err
			close(done)
		})

	waitDone(t, done)

	if view.Contains(tempID) {
		t.Error("rolled back entry still rendered")
	}
	if view.Len() != 1 {
		t.Errorf("len = %d, want original 1", view.Len())
	}
	if gotErr == nil {
		t.Error("rollback must surface the failure")
	}
	if r.PendingCount() != 0 {
		t.Errorf("pending = %d, want 0", r.PendingCount())
	}
}

func TestDoubleSubmitResolvesIndependently(t *testing.T) {
	view := NewViewList[note]()
	r := NewReconciler(view, noteID)

	firstGate := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)

	// First submission blocks until released; second fails immediately.
	// Resolution order is the reverse of submission order.
	tempA := r.Submit(context.Background(), "tok-a", note{Text: "a"},
		func(ctx context.Context) (note, error) {
			<-firstGate
			return note{ID: "srv-a", Text: "a"}, nil
		},
		func(id string, st State, err error) { wg.Done() })

	tempB := r.Submit(context.Background(), "tok-b", note{Text: "b"},
		func(ctx context.Context) (note, error) {
			return note{}, errors.New("rejected")
		},
		func(id string, st State, err error) { wg.Done() })

	close(firstGate)
	wg.Wait()

	if view.Contains(tempB) {
		t.Error("failed submission still rendered")
	}
	if !view.Contains("srv-a") {
		t.Error("successful submission lost")
	}
	if view.Contains(tempA) {
		t.Error("confirmed entry kept its temp id")
	}
	if view.Len() != 1 {
		t.Errorf("len = %d, want 1", view.Len())
	}
}

func TestSubmitCanceledContextRollsBack(t *testing.T) {
	view := NewViewList[note]()
	r := NewReconciler(view, noteID)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	tempID := r.Submit(ctx, "tok-1", note{Text: "late"},
		func(ctx context.Context) (note, error) {
			cancel()
			// The write "succeeded" server-side but the view is gone.
			return note{ID: "srv-late"}, nil
		},
		func(id string, st State, err error) {
			if st != RolledBack {
				t.Errorf("state = %v, want RolledBack after cancel", st)
			}
			close(done)
		})

	waitDone(t, done)
	if view.Contains(tempID) || view.Contains("srv-late") {
		t.Error("canceled submission must not remain rendered")
	}
}

func TestPendingByToken(t *testing.T) {
	view := NewViewList[note]()
	r := NewReconciler(view, noteID)

	gate := make(chan struct{})
	done := make(chan struct{})
	tempID := r.Submit(context.Background(), "tok-x", note{Text: "x"},
		func(ctx context.Context) (note, error) {
			<-gate
			return note{ID: "srv-x"}, nil
		},
		func(id string, st State, err error) { close(done) })

	if got, ok := r.PendingByToken("tok-x"); !ok || got != tempID {
		t.Errorf("PendingByToken = %q, %v", got, ok)
	}
	if _, ok := r.PendingByToken("other"); ok {
		t.Error("unknown token reported as pending")
	}
	if _, ok := r.PendingByToken(""); ok {
		t.Error("empty token reported as pending")
	}

	close(gate)
	waitDone(t, done)
	if _, ok := r.PendingByToken("tok-x"); ok {
		t.Error("token still indexed after confirmation")
	}
}

func TestConfirmUnknownIDIsNoop(t *testing.T) {
	view := NewViewList[note]()
	r := NewReconciler(view, noteID)
	if r.Confirm("tmp_missing", note{ID: "x"}) {
		t.Error("confirming unknown id should report false")
	}
	if r.Rollback("tmp_missing") {
		t.Error("rolling back unknown id should report false")
	}
}

func TestViewListOperations(t *testing.T) {
	v := NewViewList[string]()
	v.Append("a", "1")
	v.Append("b", "2")
	v.Append("c", "3")

	if !v.Replace("b", "2x") {
		t.Fatal("Replace existing id failed")
	}
	if ids, vals := v.Snapshot(); ids[1] != "b" || vals[1] != "2x" {
		t.Errorf("snapshot after replace: %v %v", ids, vals)
	}

	if !v.Remove("a") {
		t.Fatal("Remove existing id failed")
	}
	if ids, _ := v.Snapshot(); len(ids) != 2 || ids[0] != "b" || ids[1] != "c" {
		t.Errorf("order broken after remove: %v", ids)
	}

	if v.Remove("a") {
		t.Error("removing twice should report false")
	}
	if !v.Rekey("c", "c2", "3x") {
		t.Fatal("Rekey failed")
	}
	if v.IndexOf("c2") != 1 {
		t.Errorf("rekeyed entry moved to %d", v.IndexOf("c2"))
	}
}
