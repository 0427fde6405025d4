package client

import (
	"context"
	"testing"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

type fakeChatDirectory struct {
	chats   []*models.Chat
	created gateway.CreateChatParams
	updated *models.Chat
}

func (f *fakeChatDirectory) ListChats(ctx context.Context, includePublic bool) gateway.Result[[]*models.Chat] {
	return gateway.Ok(f.chats)
}

func (f *fakeChatDirectory) CreateChat(ctx context.Context, params gateway.CreateChatParams) gateway.Result[*models.Chat] {
	f.created = params
	return gateway.Ok(&models.Chat{ID: "c1", Name: params.Name, Type: params.Type})
}

func (f *fakeChatDirectory) UpdateChat(ctx context.Context, chat *models.Chat) gateway.Result[*models.Chat] {
	f.updated = chat
	return gateway.Ok(chat)
}

func TestCreateGroupChatForcesGroupType(t *testing.T) {
	backend := &fakeChatDirectory{}

	res := CreateGroupChat(context.Background(), backend, "  raid night ", "u1", "")
	if !res.OK {
		t.Fatalf("CreateGroupChat = %+v", res)
	}
	if backend.created.Type != models.ChatTypeGroup {
		t.Errorf("chat type = %q, want group", backend.created.Type)
	}
	if backend.created.Name != "raid night" {
		t.Errorf("chat name = %q, want trimmed", backend.created.Name)
	}
}

func TestRenameChatRejectsBlankName(t *testing.T) {
	backend := &fakeChatDirectory{}
	chat := &models.Chat{ID: "c1", Name: "old"}

	res := RenameChat(context.Background(), backend, chat, "   ")
	if res.OK || res.Err.Kind != gateway.KindValidation {
		t.Errorf("blank rename = %+v, want validation error", res)
	}
	if backend.updated != nil {
		t.Error("blank rename reached the backend")
	}

	res = RenameChat(context.Background(), backend, chat, "new")
	if !res.OK || backend.updated == nil || backend.updated.Name != "new" {
		t.Errorf("rename = %+v, updated = %+v", res, backend.updated)
	}
}

func TestChatsListsRooms(t *testing.T) {
	backend := &fakeChatDirectory{chats: []*models.Chat{
		{ID: "c1", Name: models.DefaultChatName, Type: models.ChatTypePublic},
		{ID: "c2", Name: "raid night", Type: models.ChatTypeGroup},
	}}

	res := Chats(context.Background(), backend)
	if !res.OK || len(res.Data) != 2 {
		t.Fatalf("Chats = %+v", res)
	}
}
