package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/optimistic"
)

type fakeChatBackend struct {
	mu      sync.Mutex
	history []*models.Message
	users   map[string]*models.User

	sendGate chan struct{} // when set, SendMessage blocks until closed
	sendErr  *gateway.Error
	sent     []*models.Message
	handler  func(*models.Message)
	nextID   int
}

func (f *fakeChatBackend) ListMessages(ctx context.Context, chatID string, limit int) gateway.Result[[]*models.Message] {
	return gateway.Ok(f.history)
}

func (f *fakeChatBackend) SendMessage(ctx context.Context, params gateway.SendMessageParams) gateway.Result[*models.Message] {
	if f.sendGate != nil {
		<-f.sendGate
	}
	if f.sendErr != nil {
		return gateway.Fail[*models.Message](f.sendErr)
	}
	f.mu.Lock()
	f.nextID++
	msg := &models.Message{
		ID:          string(rune('0'+f.nextID)) + "-srv",
		ChatID:      params.ChatID,
		SenderID:    params.SenderID,
		Content:     params.Content,
		ClientToken: params.ClientToken,
	}
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	return gateway.Ok(msg)
}

func (f *fakeChatBackend) SubscribeMessageInserts(onInsert func(*models.Message)) gateway.Unsubscribe {
	f.handler = onInsert
	return func() { f.handler = nil }
}

func (f *fakeChatBackend) GetUser(ctx context.Context, userID string) gateway.Result[*models.User] {
	if u, ok := f.users[userID]; ok {
		return gateway.Ok(u)
	}
	return gateway.Fail[*models.User](gateway.NewError(gateway.KindNotFound, "no such user"))
}

func (f *fakeChatBackend) pushRealtime(msg *models.Message) {
	if f.handler != nil {
		f.handler(msg)
	}
}

func waitForSettled(t *testing.T, s *ChatSession) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.PendingCount() == 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("pending sends never settled")
}

func TestChatSessionSendConfirms(t *testing.T) {
	backend := &fakeChatBackend{
		history: []*models.Message{{ID: "h1", Content: "earlier"}},
	}
	s, gerr := OpenChat(context.Background(), backend, ChatSessionConfig{SelfID: "self"})
	if gerr != nil {
		t.Fatalf("OpenChat: %v", gerr)
	}
	defer s.Close()

	tempID := s.Send("hello")
	if !optimistic.IsTempID(tempID) {
		t.Errorf("Send returned %q, want a temp id", tempID)
	}
	if len(s.Messages()) != 2 {
		t.Fatalf("message not rendered immediately: %d entries", len(s.Messages()))
	}

	waitForSettled(t, s)

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len = %d after confirm, want 2", len(msgs))
	}
	if msgs[1].ID == tempID || msgs[1].Content != "hello" {
		t.Errorf("confirmed entry = %+v", msgs[1])
	}
}

func TestChatSessionSendBlankIsNoOp(t *testing.T) {
	backend := &fakeChatBackend{}
	s, gerr := OpenChat(context.Background(), backend, ChatSessionConfig{SelfID: "self"})
	if gerr != nil {
		t.Fatalf("OpenChat: %v", gerr)
	}
	defer s.Close()

	if id := s.Send("   \t"); id != "" {
		t.Errorf("blank send returned id %q, want none", id)
	}
	if n := len(s.Messages()); n != 0 {
		t.Errorf("blank send rendered %d entries", n)
	}
	if s.PendingCount() != 0 {
		t.Error("blank send left a pending entry")
	}
	if len(backend.sent) != 0 {
		t.Error("blank send reached the backend")
	}
}

func TestChatSessionSendRollsBack(t *testing.T) {
	backend := &fakeChatBackend{
		sendErr: gateway.NewError(gateway.KindValidation, "rejected"),
	}
	s, gerr := OpenChat(context.Background(), backend, ChatSessionConfig{SelfID: "self"})
	if gerr != nil {
		t.Fatalf("OpenChat: %v", gerr)
	}
	defer s.Close()

	s.Send("doomed")
	waitForSettled(t, s)

	if len(s.Messages()) != 0 {
		t.Errorf("rolled back message still rendered: %v", s.Messages())
	}
}

func TestChatSessionRealtimeEchoDeduplicated(t *testing.T) {
	// The race the reconciler exists for: the realtime notification of our
	// own insert arrives while the send call is still in flight.
	gate := make(chan struct{})
	backend := &fakeChatBackend{sendGate: gate}
	s, gerr := OpenChat(context.Background(), backend, ChatSessionConfig{SelfID: "self"})
	if gerr != nil {
		t.Fatalf("OpenChat: %v", gerr)
	}
	defer s.Close()

	tempID := s.Send("hi")

	// Realtime echo lands first, carrying the same client token.
	pending := s.rec.Pending()
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	backend.pushRealtime(&models.Message{
		ID:          "srv-1",
		SenderID:    "self",
		Content:     "hi",
		ClientToken: pending[0].Token,
	})

	if n := len(s.Messages()); n != 1 {
		t.Fatalf("echo rendered as second message: %d entries", n)
	}
	if s.view.Contains(tempID) {
		t.Error("entry not rekeyed to server id on echo")
	}
	if !s.view.Contains("srv-1") {
		t.Error("server row missing after echo confirm")
	}

	// The late send result must not duplicate either.
	close(gate)
	waitForSettled(t, s)
	if n := len(s.Messages()); n != 1 {
		t.Errorf("late send result duplicated the message: %d entries", n)
	}
}

func TestChatSessionForeignMessageDelivered(t *testing.T) {
	backend := &fakeChatBackend{users: map[string]*models.User{
		"other": {ID: "other", DisplayName: "Other"},
	}}
	s, gerr := OpenChat(context.Background(), backend, ChatSessionConfig{SelfID: "self"})
	if gerr != nil {
		t.Fatalf("OpenChat: %v", gerr)
	}
	defer s.Close()

	backend.pushRealtime(&models.Message{ID: "m1", SenderID: "other", Content: "yo"})

	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].ID != "m1" {
		t.Fatalf("messages = %v", msgs)
	}
	if msgs[0].Sender == nil || msgs[0].Sender.DisplayName != "Other" {
		t.Errorf("author not resolved: %+v", msgs[0].Sender)
	}
}

func TestChatSessionCloseStopsDelivery(t *testing.T) {
	backend := &fakeChatBackend{}
	s, gerr := OpenChat(context.Background(), backend, ChatSessionConfig{SelfID: "self"})
	if gerr != nil {
		t.Fatalf("OpenChat: %v", gerr)
	}

	s.Close()
	if backend.handler != nil {
		t.Error("subscription not released on close")
	}
}

func TestChatSessionOpenFailure(t *testing.T) {
	backend := &failingListBackend{}
	_, gerr := OpenChat(context.Background(), backend, ChatSessionConfig{SelfID: "self"})
	if gerr == nil || gerr.Kind != gateway.KindTransient {
		t.Errorf("OpenChat err = %v, want transient", gerr)
	}
}

type failingListBackend struct{ fakeChatBackend }

func (f *failingListBackend) ListMessages(ctx context.Context, chatID string, limit int) gateway.Result[[]*models.Message] {
	return gateway.Fail[[]*models.Message](gateway.WrapError(gateway.KindTransient, "offline", errors.New("dial tcp")))
}
