package client

import (
	"context"
	"testing"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

type fakeLeaderboardBackend struct {
	users []*models.User
	err   *gateway.Error
}

func (f *fakeLeaderboardBackend) ListLeaderboard(ctx context.Context, limit int) gateway.Result[[]*models.User] {
	if f.err != nil {
		return gateway.Fail[[]*models.User](f.err)
	}
	return gateway.Ok(f.users)
}

func TestLeaderboardRanksAndLevels(t *testing.T) {
	backend := &fakeLeaderboardBackend{users: []*models.User{
		{ID: "u1", Trophies: 900, XP: 2500},
		{ID: "u2", Trophies: 400, XP: 999},
		{ID: "u3", Trophies: 100, XP: 0},
	}}

	res := Leaderboard(context.Background(), backend, 10)
	if !res.OK {
		t.Fatalf("Leaderboard = %+v", res)
	}
	if len(res.Data) != 3 {
		t.Fatalf("len = %d", len(res.Data))
	}

	wantRanks := []int{1, 2, 3}
	wantLevels := []int{3, 1, 1}
	for i, entry := range res.Data {
		if entry.Rank != wantRanks[i] {
			t.Errorf("entry %d rank = %d, want %d", i, entry.Rank, wantRanks[i])
		}
		if entry.Level != wantLevels[i] {
			t.Errorf("entry %d level = %d, want %d", i, entry.Level, wantLevels[i])
		}
	}
}

func TestLeaderboardPropagatesFailure(t *testing.T) {
	backend := &fakeLeaderboardBackend{err: gateway.NewError(gateway.KindTransient, "offline")}
	res := Leaderboard(context.Background(), backend, 10)
	if res.OK || res.Err.Kind != gateway.KindTransient {
		t.Errorf("res = %+v", res)
	}
}
