package client

import (
	"context"
	"strings"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

// ChatDirectoryBackend is the slice of the gateway the chat picker uses.
type ChatDirectoryBackend interface {
	ListChats(ctx context.Context, includePublic bool) gateway.Result[[]*models.Chat]
	CreateChat(ctx context.Context, params gateway.CreateChatParams) gateway.Result[*models.Chat]
	UpdateChat(ctx context.Context, chat *models.Chat) gateway.Result[*models.Chat]
}

// Chats lists the rooms a user can open, public rooms included.
func Chats(ctx context.Context, backend ChatDirectoryBackend) gateway.Result[[]*models.Chat] {
	return backend.ListChats(ctx, true)
}

// CreateGroupChat opens a new group room owned by creatorID. Group
// messages carry the higher trophy award, so the room type is fixed here
// rather than taken from the caller.
func CreateGroupChat(ctx context.Context, backend ChatDirectoryBackend, name, creatorID, imageURL string) gateway.Result[*models.Chat] {
	return backend.CreateChat(ctx, gateway.CreateChatParams{
		Name:      strings.TrimSpace(name),
		Type:      models.ChatTypeGroup,
		CreatorID: creatorID,
		ImageURL:  imageURL,
	})
}

// RenameChat updates a room's display name.
func RenameChat(ctx context.Context, backend ChatDirectoryBackend, chat *models.Chat, name string) gateway.Result[*models.Chat] {
	name = strings.TrimSpace(name)
	if name == "" {
		return gateway.Fail[*models.Chat](gateway.NewError(gateway.KindValidation, "chat name is required"))
	}
	chat.Name = name
	return backend.UpdateChat(ctx, chat)
}
