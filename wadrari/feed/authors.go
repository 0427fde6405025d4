package feed

import (
	"context"

	lru "github.com/hashicorp/golang-lru"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

const authorCacheSize = 256

// UnknownAuthor is rendered when a sender's profile cannot be resolved.
// Resolution failures never block message delivery.
const UnknownAuthor = "Unknown"

// UserResolver is the slice of the gateway the author cache needs.
type UserResolver interface {
	GetUser(ctx context.Context, userID string) gateway.Result[*models.User]
}

// Authors resolves user ids to display names through an LRU cache so a
// busy feed does not refetch the same profile per message.
type Authors struct {
	users UserResolver
	cache *lru.Cache
}

func NewAuthors(users UserResolver) *Authors {
	cache, _ := lru.New(authorCacheSize)
	return &Authors{users: users, cache: cache}
}

// DisplayName returns the best name for userID, falling back to the
// username and finally to UnknownAuthor.
func (a *Authors) DisplayName(ctx context.Context, userID string) string {
	if userID == "" {
		return UnknownAuthor
	}
	if cached, ok := a.cache.Get(userID); ok {
		return cached.(string)
	}

	res := a.users.GetUser(ctx, userID)
	if !res.OK || res.Data == nil {
		// Not cached: a transient failure should not pin "Unknown".
		return UnknownAuthor
	}

	name := res.Data.DisplayName
	if name == "" {
		name = res.Data.Username
	}
	if name == "" {
		name = UnknownAuthor
	}
	a.cache.Add(userID, name)
	return name
}

// Invalidate drops a cached name, e.g. after a profile update.
func (a *Authors) Invalidate(userID string) {
	a.cache.Remove(userID)
}
