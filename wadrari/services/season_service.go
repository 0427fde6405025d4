package services

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/logger"
)

const (
	// seasonalCarryover is the fraction of lifetime trophies carried into
	// the new season's ranking.
	seasonalCarryover = 0.6

	seasonResetWorkers = 8
)

// SeasonResetReport summarizes one reset run.
type SeasonResetReport struct {
	Total    int
	Updated  int
	Failed   int
	Duration time.Duration
}

// SeasonService owns the season rollover. The reset touches every user
// row; each row is updated independently so one failure never aborts the
// run.
type SeasonService struct {
	gw *gateway.Gateway
	// adminUsername is the only account allowed to trigger a reset.
	adminUsername string
}

func NewSeasonService(gw *gateway.Gateway, adminUsername string) *SeasonService {
	return &SeasonService{gw: gw, adminUsername: adminUsername}
}

// SeasonalAfterReset maps a lifetime trophy count to the seasonal value
// the new season starts from, rounding halves away from zero.
func SeasonalAfterReset(trophies int64) int64 {
	return int64(math.Round(float64(trophies) * seasonalCarryover))
}

// ResetSeason recomputes seasonal trophies for every user. Only the
// configured admin may call it.
func (s *SeasonService) ResetSeason(ctx context.Context, requestedBy string) gateway.Result[*SeasonResetReport] {
	if requestedBy != s.adminUsername || s.adminUsername == "" {
		return gateway.Fail[*SeasonResetReport](gateway.NewError(gateway.KindPermission, "season reset is admin only"))
	}

	usersRes := s.gw.ListAllUsers(ctx)
	if !usersRes.OK {
		return gateway.Fail[*SeasonResetReport](usersRes.Err)
	}
	users := usersRes.Data

	start := time.Now()
	var updated, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seasonResetWorkers)
	for _, user := range users {
		user := user
		g.Go(func() error {
			seasonal := SeasonalAfterReset(user.Trophies)
			if res := s.gw.SetSeasonalTrophies(gctx, user.ID, seasonal); !res.OK {
				failed.Add(1)
				logger.LogError("season reset row failed",
					"user_id", user.ID, "error", res.Err)
				return nil
			}
			updated.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	report := &SeasonResetReport{
		Total:    len(users),
		Updated:  int(updated.Load()),
		Failed:   int(failed.Load()),
		Duration: time.Since(start),
	}
	logger.LogSystem("season reset finished",
		"total", report.Total, "updated", report.Updated, "failed", report.Failed,
		"took", report.Duration)
	return gateway.Ok(report)
}
