package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/database/repositories"
	"github.com/SimaxBen/wadrari/wadrari/database/repositories/mock"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	tests := []struct {
		name    string
		last    time.Time
		current int
		want    int
	}{
		{"first ever activity", time.Time{}, 0, 1},
		{"same day keeps streak", now.Add(-2 * time.Hour), 4, 4},
		{"previous day extends", now.AddDate(0, 0, -1), 4, 5},
		{"two days ago resets", now.AddDate(0, 0, -2), 4, 1},
		{"long gap resets", now.AddDate(0, -1, 0), 30, 1},
		{"late night to early morning", time.Date(2026, 8, 29, 23, 50, 0, 0, time.Local), 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.last, tt.current, now); got != tt.want {
				t.Errorf("NextStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func activityServiceForTest(t *testing.T) (*ActivityService, *mock.MockUserRepository, *mock.MockBadgeRepository, *mock.MockActivityRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	badges := mock.NewMockBadgeRepository(ctrl)
	activities := mock.NewMockActivityRepository(ctrl)
	gw := gateway.NewWithRepositories(gateway.Repositories{
		Users:      users,
		Badges:     badges,
		Activities: activities,
	}, nil, nil)
	s := NewActivityService(gw)
	s.now = func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local) }
	return s, users, badges, activities
}

func TestRecordMessageSentPublicChat(t *testing.T) {
	s, users, badges, activities := activityServiceForTest(t)
	day := models.DayString(s.now())
	user := &models.User{ID: "u1", CurrentStreak: 2, LastActivity: s.now().AddDate(0, 0, -1)}

	users.EXPECT().AddTrophies(gomock.Any(), "u1", int64(2), int64(2)).Return(nil)
	users.EXPECT().IncrementMessageCount(gomock.Any(), "u1").Return(nil)
	users.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
	users.EXPECT().SetStreak(gomock.Any(), "u1", 3, gomock.Any()).Return(nil)
	badges.EXPECT().HasBadge(gomock.Any(), "u1", models.BadgeFirstMessage).Return(true, nil)
	activities.EXPECT().Increment(gomock.Any(), "u1", day, repositories.ActivityDelta{Messages: 1, Trophies: 2}).Return(nil)

	s.RecordMessageSent(context.Background(), "u1", models.ChatTypePublic)
}

func TestRecordMessageSentGroupChatAwardsMore(t *testing.T) {
	s, users, badges, activities := activityServiceForTest(t)
	user := &models.User{ID: "u1", CurrentStreak: 1, LastActivity: s.now()}

	users.EXPECT().AddTrophies(gomock.Any(), "u1", int64(5), int64(5)).Return(nil)
	users.EXPECT().IncrementMessageCount(gomock.Any(), "u1").Return(nil)
	users.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
	users.EXPECT().SetStreak(gomock.Any(), "u1", 1, gomock.Any()).Return(nil)
	badges.EXPECT().HasBadge(gomock.Any(), "u1", models.BadgeFirstMessage).Return(true, nil)
	activities.EXPECT().Increment(gomock.Any(), "u1", gomock.Any(), repositories.ActivityDelta{Messages: 1, Trophies: 5}).Return(nil)

	s.RecordMessageSent(context.Background(), "u1", models.ChatTypeGroup)
}

func TestFirstMessageBadgeGrantedOnce(t *testing.T) {
	s, users, badges, activities := activityServiceForTest(t)
	user := &models.User{ID: "u1", CurrentStreak: 0}

	users.EXPECT().AddTrophies(gomock.Any(), "u1", gomock.Any(), gomock.Any()).Return(nil)
	users.EXPECT().IncrementMessageCount(gomock.Any(), "u1").Return(nil)
	users.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
	users.EXPECT().SetStreak(gomock.Any(), "u1", 1, gomock.Any()).Return(nil)
	badges.EXPECT().HasBadge(gomock.Any(), "u1", models.BadgeFirstMessage).Return(false, nil)
	badges.EXPECT().Grant(gomock.Any(), "u1", models.BadgeFirstMessage).Return(nil)
	activities.EXPECT().Increment(gomock.Any(), "u1", gomock.Any(), gomock.Any()).Return(nil)

	s.RecordMessageSent(context.Background(), "u1", models.ChatTypePublic)
}

func TestStreakBadgeAtSevenDays(t *testing.T) {
	s, users, badges, activities := activityServiceForTest(t)
	user := &models.User{ID: "u1", CurrentStreak: 6, LastActivity: s.now().AddDate(0, 0, -1)}

	users.EXPECT().AddTrophies(gomock.Any(), "u1", int64(StoryTrophies), int64(StoryTrophies)).Return(nil)
	users.EXPECT().IncrementStoryCount(gomock.Any(), "u1").Return(nil)
	users.EXPECT().GetByID(gomock.Any(), "u1").Return(user, nil)
	users.EXPECT().SetStreak(gomock.Any(), "u1", 7, gomock.Any()).Return(nil)
	badges.EXPECT().HasBadge(gomock.Any(), "u1", models.BadgeStreakWeek).Return(false, nil)
	badges.EXPECT().Grant(gomock.Any(), "u1", models.BadgeStreakWeek).Return(nil)
	activities.EXPECT().Increment(gomock.Any(), "u1", gomock.Any(), repositories.ActivityDelta{Stories: 1, Trophies: StoryTrophies}).Return(nil)

	s.RecordStoryPosted(context.Background(), "u1")
}
