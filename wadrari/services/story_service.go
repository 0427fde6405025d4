package services

import (
	"context"
	"strings"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

// StoryService serves the story feed. Expiry is enforced here at display
// time; rows stay in the database untouched.
type StoryService struct {
	gw       *gateway.Gateway
	activity *ActivityService
	now      func() time.Time
}

func NewStoryService(gw *gateway.Gateway, activity *ActivityService) *StoryService {
	return &StoryService{
		gw:       gw,
		activity: activity,
		now:      time.Now,
	}
}

// ListActive returns the feed with expired stories filtered out.
func (s *StoryService) ListActive(ctx context.Context, limit int) gateway.Result[[]*models.Story] {
	res := s.gw.ListStories(ctx, limit)
	if !res.OK {
		return res
	}

	now := s.now()
	visible := make([]*models.Story, 0, len(res.Data))
	for _, story := range res.Data {
		if !story.Expired(now) {
			visible = append(visible, story)
		}
	}
	return gateway.Ok(visible)
}

// Get returns a story by id regardless of expiry. Direct opens of an
// expired story still work; only the feed hides it.
func (s *StoryService) Get(ctx context.Context, storyID string) gateway.Result[*models.Story] {
	return s.gw.GetStory(ctx, storyID)
}

// Post creates a story and runs the engagement accounting.
func (s *StoryService) Post(ctx context.Context, userID, content, mediaURL string) gateway.Result[*models.Story] {
	if strings.TrimSpace(content) == "" && mediaURL == "" {
		return gateway.Fail[*models.Story](gateway.NewError(gateway.KindValidation, "story needs content or media"))
	}

	res := s.gw.CreateStory(ctx, gateway.CreateStoryParams{
		UserID:   userID,
		Content:  content,
		MediaURL: mediaURL,
	})
	if !res.OK {
		return res
	}

	if s.activity != nil {
		s.activity.RecordStoryPosted(ctx, userID)
	}
	return res
}

// PostMedia uploads a local image and posts a story referencing it.
func (s *StoryService) PostMedia(ctx context.Context, userID, content, filePath string) gateway.Result[*models.Story] {
	upload := s.gw.UploadImage(ctx, gateway.UploadRequest{
		PathPrefix: "stories",
		FilePath:   filePath,
	})
	if !upload.OK {
		return gateway.Fail[*models.Story](upload.Err)
	}
	return s.Post(ctx, userID, content, upload.Data)
}

// SubscribeInserts delivers stories as other users post them.
func (s *StoryService) SubscribeInserts(onInsert func(*models.Story)) gateway.Unsubscribe {
	return s.gw.SubscribeStoryInserts(onInsert)
}

// ToggleLike flips the caller's like on a story and reports the new
// state.
func (s *StoryService) ToggleLike(ctx context.Context, storyID, userID string) gateway.Result[bool] {
	likedRes := s.gw.HasLiked(ctx, storyID, userID)
	if !likedRes.OK {
		return likedRes
	}

	if likedRes.Data {
		if res := s.gw.UnlikeStory(ctx, storyID, userID); !res.OK {
			return gateway.Fail[bool](res.Err)
		}
		return gateway.Ok(false)
	}

	// A skipped like means a concurrent like from another device already
	// inserted the row; either way the story ends up liked.
	if res := s.gw.LikeStory(ctx, storyID, userID); !res.OK {
		return gateway.Fail[bool](res.Err)
	}
	return gateway.Ok(true)
}

// LikeCount returns the number of likes on a story.
func (s *StoryService) LikeCount(ctx context.Context, storyID string) gateway.Result[int] {
	return s.gw.CountStoryLikes(ctx, storyID)
}

// Comment appends a comment to a story.
func (s *StoryService) Comment(ctx context.Context, storyID, userID, content string) gateway.Result[*models.StoryComment] {
	return s.gw.AddStoryComment(ctx, storyID, userID, content)
}

// Comments lists a story's comments oldest first.
func (s *StoryService) Comments(ctx context.Context, storyID string) gateway.Result[[]*models.StoryComment] {
	return s.gw.GetStoryComments(ctx, storyID)
}
