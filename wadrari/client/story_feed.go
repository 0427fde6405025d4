package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/optimistic"
)

// StoryBackend is the slice of the story surface a feed screen uses.
type StoryBackend interface {
	ListActive(ctx context.Context, limit int) gateway.Result[[]*models.Story]
	Post(ctx context.Context, userID, content, mediaURL string) gateway.Result[*models.Story]
	ToggleLike(ctx context.Context, storyID, userID string) gateway.Result[bool]
	SubscribeInserts(onInsert func(*models.Story)) gateway.Unsubscribe
}

// StoryFeed is one open story screen, with optimistic posting.
type StoryFeed struct {
	backend StoryBackend
	selfID  string

	ctx    context.Context
	cancel context.CancelFunc

	view *optimistic.ViewList[*models.Story]
	rec  *optimistic.Reconciler[*models.Story]

	mu    sync.Mutex
	liked map[string]bool

	unsub    gateway.Unsubscribe
	onChange func()
}

func OpenStoryFeed(ctx context.Context, backend StoryBackend, selfID string, onChange func()) (*StoryFeed, *gateway.Error) {
	feedCtx, cancel := context.WithCancel(ctx)
	view := optimistic.NewViewList[*models.Story]()
	f := &StoryFeed{
		backend: backend,
		selfID:  selfID,
		ctx:     feedCtx,
		cancel:  cancel,
		view:    view,
		rec: optimistic.NewReconciler(view, func(s *models.Story) string {
			if s == nil {
				return ""
			}
			return s.ID
		}),
		liked:    make(map[string]bool),
		onChange: onChange,
	}

	res := backend.ListActive(feedCtx, 50)
	if !res.OK {
		cancel()
		return nil, res.Err
	}
	ids := make([]string, len(res.Data))
	for i, story := range res.Data {
		ids[i] = story.ID
	}
	view.Reset(ids, res.Data)

	f.unsub = backend.SubscribeInserts(f.onRealtimeStory)

	return f, nil
}

// onRealtimeStory appends stories other users post while the feed is
// open. The feed's own posts already render optimistically, so rows by
// selfID are echoes and dropped.
func (f *StoryFeed) onRealtimeStory(story *models.Story) {
	if f.ctx.Err() != nil || story == nil {
		return
	}
	if story.UserID == f.selfID {
		return
	}
	if story.Expired(time.Now()) || f.view.Contains(story.ID) {
		return
	}
	f.view.Append(story.ID, story)
	f.changed()
}

// Post renders the story immediately and reconciles in the background.
// Blank input is a no-op: nothing renders and no id is handed out.
func (f *StoryFeed) Post(content, mediaURL string) string {
	if strings.TrimSpace(content) == "" && mediaURL == "" {
		return ""
	}
	now := time.Now()
	local := &models.Story{
		UserID:    f.selfID,
		Content:   content,
		MediaURL:  mediaURL,
		CreatedAt: now,
		ExpiresAt: now.Add(models.StoryLifetime),
	}

	tempID := f.rec.Submit(f.ctx, "", local,
		func(ctx context.Context) (*models.Story, error) {
			res := f.backend.Post(ctx, f.selfID, content, mediaURL)
			if !res.OK {
				return nil, res.Err
			}
			return res.Data, nil
		},
		func(string, optimistic.State, error) { f.changed() })

	f.changed()
	return tempID
}

// ToggleLike flips the heart immediately and reconciles with the backend
// in the background. A failed toggle flips it back.
func (f *StoryFeed) ToggleLike(storyID string) bool {
	f.mu.Lock()
	next := !f.liked[storyID]
	f.liked[storyID] = next
	f.mu.Unlock()
	f.changed()

	go func() {
		res := f.backend.ToggleLike(f.ctx, storyID, f.selfID)
		if res.OK {
			// The backend is authoritative; a concurrent toggle from another
			// device may have landed first.
			f.mu.Lock()
			f.liked[storyID] = res.Data
			f.mu.Unlock()
			f.changed()
			return
		}
		f.mu.Lock()
		f.liked[storyID] = !next
		f.mu.Unlock()
		f.changed()
	}()

	return next
}

// Liked reports the locally rendered like state for a story.
func (f *StoryFeed) Liked(storyID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.liked[storyID]
}

// Stories returns the feed in render order.
func (f *StoryFeed) Stories() []*models.Story {
	_, values := f.view.Snapshot()
	return values
}

func (f *StoryFeed) PendingCount() int {
	return f.rec.PendingCount()
}

func (f *StoryFeed) Close() {
	f.cancel()
	if f.unsub != nil {
		f.unsub()
	}
}

func (f *StoryFeed) changed() {
	if f.onChange != nil {
		f.onChange()
	}
}
