package gateway

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"already typed", NewError(KindAuth, "bad creds"), KindAuth},
		{"deadline", context.DeadlineExceeded, KindTransient},
		{"canceled", context.Canceled, KindTransient},
		{"no rows", sql.ErrNoRows, KindNotFound},
		{"plain error", errors.New("boom"), KindInternal},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindConflict},
		{"fk violation", &pgconn.PgError{Code: "23503"}, KindValidation},
		{"not null", &pgconn.PgError{Code: "23502"}, KindValidation},
		{"bad uuid", &pgconn.PgError{Code: "22P02"}, KindValidation},
		{"privilege", &pgconn.PgError{Code: "42501"}, KindPermission},
		{"bad password", &pgconn.PgError{Code: "28P01"}, KindAuth},
		{"query canceled", &pgconn.PgError{Code: "57014"}, KindTransient},
		{"too many conns", &pgconn.PgError{Code: "53300"}, KindTransient},
		{"conn failure", &pgconn.PgError{Code: "08006"}, KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Fatalf("Classify(nil) = %v, want nil", got)
				}
				return
			}
			if got.Kind != tt.want {
				t.Errorf("Classify(%v).Kind = %s, want %s", tt.err, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyPreservesCause(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"}
	got := Classify(cause)
	if !errors.Is(got, cause) {
		t.Error("classified error should unwrap to its cause")
	}
}

func TestErrorRetryable(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want bool
	}{
		{KindTransient, true},
		{KindUploadNetwork, true},
		{KindAuth, false},
		{KindValidation, false},
		{KindConflict, false},
		{KindNotFound, false},
		{KindInternal, false},
	}
	for _, tt := range tests {
		if got := NewError(tt.kind, "x").Retryable(); got != tt.want {
			t.Errorf("Retryable(%s) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestCallRetriesOnlyTransient(t *testing.T) {
	t.Run("transient retries up to max attempts", func(t *testing.T) {
		attempts := 0
		err := call(context.Background(), "op", func(ctx context.Context) error {
			attempts++
			return NewError(KindTransient, "flaky")
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if attempts != maxAttempts {
			t.Errorf("attempts = %d, want %d", attempts, maxAttempts)
		}
	})

	t.Run("validation fails fast", func(t *testing.T) {
		attempts := 0
		err := call(context.Background(), "op", func(ctx context.Context) error {
			attempts++
			return NewError(KindValidation, "bad input")
		})
		if err == nil || err.Kind != KindValidation {
			t.Fatalf("err = %v, want validation", err)
		}
		if attempts != 1 {
			t.Errorf("attempts = %d, want 1", attempts)
		}
	})

	t.Run("recovers after transient failure", func(t *testing.T) {
		attempts := 0
		err := call(context.Background(), "op", func(ctx context.Context) error {
			attempts++
			if attempts < 2 {
				return NewError(KindTransient, "flaky")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("err = %v, want nil", err)
		}
		if attempts != 2 {
			t.Errorf("attempts = %d, want 2", attempts)
		}
	})

	t.Run("caller cancellation stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		err := call(ctx, "op", func(ctx context.Context) error {
			attempts++
			cancel()
			return NewError(KindTransient, "flaky")
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if attempts != 1 {
			t.Errorf("attempts = %d, want 1", attempts)
		}
	})
}

func TestResultConstructors(t *testing.T) {
	ok := Ok(42)
	if !ok.OK || ok.Data != 42 || ok.Err != nil || ok.Skipped {
		t.Errorf("Ok(42) = %+v", ok)
	}

	skip := Skip("done")
	if !skip.OK || !skip.Skipped || skip.Data != "done" {
		t.Errorf("Skip = %+v", skip)
	}

	fail := Fail[int](NewError(KindAuth, "nope"))
	if fail.OK || fail.Err == nil || fail.Err.Kind != KindAuth {
		t.Errorf("Fail = %+v", fail)
	}
}

func TestDecodeMessageRow(t *testing.T) {
	payload := []byte(`{
		"id": "7e6a7b36-1111-4f7a-9f33-2a8a8c9c0001",
		"chat_id": null,
		"sender_id": "7e6a7b36-1111-4f7a-9f33-2a8a8c9c0002",
		"content": "hello",
		"client_token": "tok-1",
		"created_at": "2026-08-30T10:15:00.123456+00:00"
	}`)

	msg, err := decodeMessageRow(payload)
	if err != nil {
		t.Fatalf("decodeMessageRow: %v", err)
	}
	if msg.ChatID != "" {
		t.Errorf("ChatID = %q, want empty for global room", msg.ChatID)
	}
	if msg.ClientToken != "tok-1" {
		t.Errorf("ClientToken = %q", msg.ClientToken)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestParsePgTime(t *testing.T) {
	values := []string{
		"2026-08-30T10:15:00.123456+00:00",
		"2026-08-30T10:15:00Z",
		"2026-08-30T10:15:00.5",
	}
	for _, v := range values {
		if parsePgTime(v).IsZero() {
			t.Errorf("parsePgTime(%q) returned zero time", v)
		}
	}
	if !parsePgTime("garbage").IsZero() {
		t.Error("garbage should parse to zero time")
	}
}

func TestListenerSubscribeUnsubscribe(t *testing.T) {
	l := NewListener(nil)

	var got []string
	unsubA := l.Subscribe("messages", func(p []byte) { got = append(got, "a:"+string(p)) })
	unsubB := l.Subscribe("messages", func(p []byte) { got = append(got, "b:"+string(p)) })
	defer unsubB()

	l.dispatch("messages_inserts", []byte("x"))
	if len(got) != 2 {
		t.Fatalf("got %d deliveries, want 2", len(got))
	}

	unsubA()
	unsubA() // second release is a no-op
	got = nil
	l.dispatch("messages_inserts", []byte("y"))
	if len(got) != 1 || got[0] != "b:y" {
		t.Errorf("after unsubscribe got %v", got)
	}

	got = nil
	l.dispatch("stories_inserts", []byte("z"))
	if len(got) != 0 {
		t.Errorf("story notification reached message subscribers: %v", got)
	}
}

func TestLoginValidation(t *testing.T) {
	g := &Gateway{}
	res := g.Login(context.Background(), "  ", "pw")
	if res.OK || res.Err.Kind != KindValidation {
		t.Errorf("blank username should fail validation, got %+v", res)
	}
}

func TestUploadWithoutUploader(t *testing.T) {
	g := &Gateway{}
	res := g.UploadImage(context.Background(), UploadRequest{Bucket: "b"})
	if res.OK || res.Err.Kind != KindUploadMissingBucket {
		t.Errorf("expected missing bucket error, got %+v", res)
	}
}

func TestCallHonorsPerAttemptTimeout(t *testing.T) {
	err := call(context.Background(), "op", func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("per-attempt context should carry a deadline")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
}
