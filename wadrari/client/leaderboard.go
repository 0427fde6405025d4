package client

import (
	"context"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

// LeaderboardEntry is one rendered leaderboard row.
type LeaderboardEntry struct {
	Rank  int
	User  *models.User
	Level int
}

// LeaderboardBackend is the slice of the gateway the leaderboard uses.
type LeaderboardBackend interface {
	ListLeaderboard(ctx context.Context, limit int) gateway.Result[[]*models.User]
}

// Leaderboard fetches the trophies-descending ranking with derived levels
// attached. Ties share the order the backend returned them in; ranks are
// positional.
func Leaderboard(ctx context.Context, backend LeaderboardBackend, limit int) gateway.Result[[]LeaderboardEntry] {
	res := backend.ListLeaderboard(ctx, limit)
	if !res.OK {
		return gateway.Fail[[]LeaderboardEntry](res.Err)
	}

	entries := make([]LeaderboardEntry, len(res.Data))
	for i, user := range res.Data {
		entries[i] = LeaderboardEntry{
			Rank:  i + 1,
			User:  user,
			Level: user.Level(),
		}
	}
	return gateway.Ok(entries)
}
