package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/database/repositories/mock"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

func storyServiceForTest(t *testing.T) (*StoryService, *mock.MockStoryRepository) {
	return storyServiceWithUploader(t, nil)
}

func storyServiceWithUploader(t *testing.T, uploader gateway.Uploader) (*StoryService, *mock.MockStoryRepository) {
	ctrl := gomock.NewController(t)
	stories := mock.NewMockStoryRepository(ctrl)
	gw := gateway.NewWithRepositories(gateway.Repositories{Stories: stories}, nil, uploader)
	s := NewStoryService(gw, nil)
	s.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return s, stories
}

type stubUploader struct {
	url string
	err error

	gotPrefix string
}

func (u *stubUploader) Upload(ctx context.Context, req gateway.UploadRequest) (string, error) {
	u.gotPrefix = req.PathPrefix
	return u.url, u.err
}

func TestListActiveFiltersExpired(t *testing.T) {
	s, stories := storyServiceForTest(t)
	now := s.now()

	fresh := &models.Story{ID: "s1", ExpiresAt: now.Add(time.Hour)}
	stale := &models.Story{ID: "s2", ExpiresAt: now.Add(-time.Minute)}
	edge := &models.Story{ID: "s3", ExpiresAt: now}

	stories.EXPECT().ListRecent(gomock.Any(), 50).
		Return([]*models.Story{fresh, stale, edge}, nil)

	res := s.ListActive(context.Background(), 50)
	if !res.OK {
		t.Fatalf("ListActive = %+v", res)
	}
	if len(res.Data) != 2 {
		t.Fatalf("visible = %d stories, want 2", len(res.Data))
	}
	for _, story := range res.Data {
		if story.ID == "s2" {
			t.Error("expired story still listed")
		}
	}
}

func TestGetReturnsExpiredStory(t *testing.T) {
	s, stories := storyServiceForTest(t)
	stale := &models.Story{ID: "s1", ExpiresAt: s.now().Add(-time.Hour)}
	stories.EXPECT().GetByID(gomock.Any(), "s1").Return(stale, nil)

	res := s.Get(context.Background(), "s1")
	if !res.OK || res.Data.ID != "s1" {
		t.Errorf("direct open of expired story failed: %+v", res)
	}
}

func TestPostValidation(t *testing.T) {
	s, _ := storyServiceForTest(t)
	res := s.Post(context.Background(), "u1", "   ", "")
	if res.OK || res.Err.Kind != gateway.KindValidation {
		t.Errorf("blank story accepted: %+v", res)
	}
}

func TestPostMedia(t *testing.T) {
	uploader := &stubUploader{url: "https://cdn.example.com/stories/abc.jpg"}
	s, stories := storyServiceWithUploader(t, uploader)

	stories.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, story *models.Story) error {
			if story.MediaURL != uploader.url {
				t.Errorf("story media = %q, want uploaded url", story.MediaURL)
			}
			return nil
		})

	res := s.PostMedia(context.Background(), "u1", "", "/tmp/abc.jpg")
	if !res.OK {
		t.Fatalf("PostMedia = %+v", res)
	}
	if uploader.gotPrefix != "stories" {
		t.Errorf("upload prefix = %q", uploader.gotPrefix)
	}
}

func TestPostMediaWithoutUploader(t *testing.T) {
	s, _ := storyServiceForTest(t)

	res := s.PostMedia(context.Background(), "u1", "", "/tmp/abc.jpg")
	if res.OK || res.Err.Kind != gateway.KindUploadMissingBucket {
		t.Errorf("PostMedia without uploader = %+v", res)
	}
}

func TestToggleLike(t *testing.T) {
	t.Run("like when not liked", func(t *testing.T) {
		s, stories := storyServiceForTest(t)
		stories.EXPECT().HasReaction(gomock.Any(), "s1", "u1", models.ReactionKindLike).Return(false, nil)
		stories.EXPECT().AddReaction(gomock.Any(), gomock.Any()).Return(nil)

		res := s.ToggleLike(context.Background(), "s1", "u1")
		if !res.OK || !res.Data {
			t.Errorf("ToggleLike = %+v, want liked", res)
		}
	})

	t.Run("unlike when liked", func(t *testing.T) {
		s, stories := storyServiceForTest(t)
		stories.EXPECT().HasReaction(gomock.Any(), "s1", "u1", models.ReactionKindLike).Return(true, nil)
		stories.EXPECT().DeleteReaction(gomock.Any(), "s1", "u1", models.ReactionKindLike).Return(nil)

		res := s.ToggleLike(context.Background(), "s1", "u1")
		if !res.OK || res.Data {
			t.Errorf("ToggleLike = %+v, want unliked", res)
		}
	})
}

func TestCommentValidation(t *testing.T) {
	s, stories := storyServiceForTest(t)

	res := s.Comment(context.Background(), "s1", "u1", "  ")
	if res.OK || res.Err.Kind != gateway.KindValidation {
		t.Errorf("blank comment accepted: %+v", res)
	}

	stories.EXPECT().AddComment(gomock.Any(), gomock.Any()).Return(nil)
	res = s.Comment(context.Background(), "s1", "u1", "nice one")
	if !res.OK || res.Data.Content != "nice one" {
		t.Errorf("Comment = %+v", res)
	}
}
