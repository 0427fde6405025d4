package services

import (
	"context"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/database/repositories"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/logger"
)

// Trophy awards for engagement events.
const (
	MessageTrophiesPublic = 2
	MessageTrophiesGroup  = 5
	StoryTrophies         = 10
)

// Streak badge thresholds.
const (
	streakBadgeWeekDays  = 7
	streakBadgeMonthDays = 30
)

// ActivityService maintains the engagement side effects of user actions:
// trophies, streaks, counters, badges and the per-day aggregate. All of
// its work is best effort from the caller's point of view; a message that
// was sent stays sent even when accounting fails.
type ActivityService struct {
	gw  *gateway.Gateway
	now func() time.Time
}

func NewActivityService(gw *gateway.Gateway) *ActivityService {
	return &ActivityService{gw: gw, now: time.Now}
}

// RecordMessageSent runs the accounting for one sent message: trophy
// award sized by chat type, message counter, streak, badges and the daily
// aggregate.
func (s *ActivityService) RecordMessageSent(ctx context.Context, userID, chatType string) {
	trophies := int64(MessageTrophiesPublic)
	if chatType == models.ChatTypeGroup {
		trophies = MessageTrophiesGroup
	}

	if res := s.gw.AddTrophies(ctx, userID, trophies, trophies); !res.OK {
		logger.LogError("message trophy award failed", "user_id", userID, "error", res.Err)
	}
	if res := s.gw.IncrementMessageCount(ctx, userID); !res.OK {
		logger.LogError("message counter update failed", "user_id", userID, "error", res.Err)
	}

	s.updateStreak(ctx, userID)
	s.grantFirstMessageBadge(ctx, userID)

	day := models.DayString(s.now())
	if res := s.gw.RecordActivity(ctx, userID, day, repositories.ActivityDelta{
		Messages: 1,
		Trophies: trophies,
	}); !res.OK {
		logger.LogError("daily activity update failed", "user_id", userID, "error", res.Err)
	}
}

// RecordStoryPosted runs the accounting for one posted story.
func (s *ActivityService) RecordStoryPosted(ctx context.Context, userID string) {
	if res := s.gw.AddTrophies(ctx, userID, StoryTrophies, StoryTrophies); !res.OK {
		logger.LogError("story trophy award failed", "user_id", userID, "error", res.Err)
	}
	if res := s.gw.IncrementStoryCount(ctx, userID); !res.OK {
		logger.LogError("story counter update failed", "user_id", userID, "error", res.Err)
	}

	s.updateStreak(ctx, userID)

	day := models.DayString(s.now())
	if res := s.gw.RecordActivity(ctx, userID, day, repositories.ActivityDelta{
		Stories:  1,
		Trophies: StoryTrophies,
	}); !res.OK {
		logger.LogError("daily activity update failed", "user_id", userID, "error", res.Err)
	}
}

// NextStreak computes the streak value after activity at now, given the
// previous activity time and streak. Same local day keeps the streak,
// the day right before extends it, anything older restarts at 1.
func NextStreak(lastActivity time.Time, current int, now time.Time) int {
	if current <= 0 {
		return 1
	}
	today := models.DayString(now)
	last := models.DayString(lastActivity)
	if last == today {
		return current
	}
	if last == models.DayString(now.AddDate(0, 0, -1)) {
		return current + 1
	}
	return 1
}

func (s *ActivityService) updateStreak(ctx context.Context, userID string) {
	userRes := s.gw.GetUser(ctx, userID)
	if !userRes.OK {
		logger.LogError("streak lookup failed", "user_id", userID, "error", userRes.Err)
		return
	}
	user := userRes.Data

	now := s.now()
	next := NextStreak(user.LastActivity, user.CurrentStreak, now)
	if res := s.gw.SetStreak(ctx, userID, next, now); !res.OK {
		logger.LogError("streak update failed", "user_id", userID, "error", res.Err)
		return
	}

	if next >= streakBadgeWeekDays {
		s.grantBadgeOnce(ctx, userID, models.BadgeStreakWeek)
	}
	if next >= streakBadgeMonthDays {
		s.grantBadgeOnce(ctx, userID, models.BadgeStreakMonth)
	}
}

func (s *ActivityService) grantFirstMessageBadge(ctx context.Context, userID string) {
	s.grantBadgeOnce(ctx, userID, models.BadgeFirstMessage)
}

func (s *ActivityService) grantBadgeOnce(ctx context.Context, userID, name string) {
	hasRes := s.gw.HasBadge(ctx, userID, name)
	if !hasRes.OK || hasRes.Data {
		return
	}
	if res := s.gw.GrantBadge(ctx, userID, name); !res.OK {
		logger.LogError("badge grant failed", "user_id", userID, "badge", name, "error", res.Err)
		return
	}
	logger.LogSystem("badge granted", "user_id", userID, "badge", name)
}

// DailySummary returns the per-day aggregate for a user.
func (s *ActivityService) DailySummary(ctx context.Context, userID, day string) gateway.Result[*models.DailyActivity] {
	return s.gw.GetDailyActivity(ctx, userID, day)
}

// Badges lists everything the user has earned.
func (s *ActivityService) Badges(ctx context.Context, userID string) gateway.Result[[]*models.Badge] {
	return s.gw.ListBadges(ctx, userID)
}
