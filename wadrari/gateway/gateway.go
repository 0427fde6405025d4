package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database"
	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/database/repositories"
)

// Uploader pushes binary payloads into the storage bucket. Implemented by
// the spaces service; injected so the gateway stays the single seam for
// every remote operation.
type Uploader interface {
	Upload(ctx context.Context, req UploadRequest) (string, error)
}

type UploadRequest struct {
	Bucket     string
	PathPrefix string
	// FilePath is tried first; Payload is the in-memory fallback.
	FilePath    string
	Payload     []byte
	ContentType string
}

// Gateway is the single seam between business logic and the hosted
// backend. It is built explicitly and passed to its consumers; there is no
// package-level instance.
type Gateway struct {
	users      repositories.UserRepository
	messages   repositories.MessageRepository
	chats      repositories.ChatRepository
	stories    repositories.StoryRepository
	quests     repositories.QuestRepository
	badges     repositories.BadgeRepository
	activities repositories.ActivityRepository

	listener *Listener
	uploader Uploader
}

// Repositories is the persistence surface the gateway drives. Split out
// so tests can build a gateway over mocks.
type Repositories struct {
	Users      repositories.UserRepository
	Messages   repositories.MessageRepository
	Chats      repositories.ChatRepository
	Stories    repositories.StoryRepository
	Quests     repositories.QuestRepository
	Badges     repositories.BadgeRepository
	Activities repositories.ActivityRepository
}

func New(db *database.DB, uploader Uploader) *Gateway {
	bunDB := db.BunDB()
	return NewWithRepositories(Repositories{
		Users:      repositories.NewUserRepository(bunDB),
		Messages:   repositories.NewMessageRepository(bunDB),
		Chats:      repositories.NewChatRepository(bunDB),
		Stories:    repositories.NewStoryRepository(bunDB),
		Quests:     repositories.NewQuestRepository(bunDB),
		Badges:     repositories.NewBadgeRepository(bunDB),
		Activities: repositories.NewActivityRepository(bunDB),
	}, NewListener(db.GetPool()), uploader)
}

// NewWithRepositories wires a gateway over an explicit repository set. A
// nil listener is allowed when realtime is not exercised.
func NewWithRepositories(repos Repositories, listener *Listener, uploader Uploader) *Gateway {
	return &Gateway{
		users:      repos.Users,
		messages:   repos.Messages,
		chats:      repos.Chats,
		stories:    repos.Stories,
		quests:     repos.Quests,
		badges:     repos.Badges,
		activities: repos.Activities,
		listener:   listener,
		uploader:   uploader,
	}
}

// StartRealtime opens the notification connection. Subscriptions made
// before this call begin delivering once it starts.
func (g *Gateway) StartRealtime(ctx context.Context) error {
	return g.listener.Start(ctx)
}

func (g *Gateway) Close() {
	g.listener.Close()
}

// --- auth ---

func (g *Gateway) Login(ctx context.Context, username, password string) Result[*models.User] {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Fail[*models.User](NewError(KindValidation, "username and password are required"))
	}

	var user *models.User
	err := call(ctx, "Login", func(ctx context.Context) error {
		var err error
		user, err = g.users.GetByCredentials(ctx, username, password)
		return err
	})
	if err != nil {
		if err.Kind == KindNotFound {
			return Fail[*models.User](NewError(KindAuth, "invalid username or password"))
		}
		return Fail[*models.User](err)
	}

	// Best-effort activity touch; a failure never fails the login.
	_ = g.users.TouchActivity(ctx, user.ID, time.Now())

	return Ok(user)
}

func (g *Gateway) Register(ctx context.Context, username, password, displayName string) Result[*models.User] {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Fail[*models.User](NewError(KindValidation, "username and password are required"))
	}

	user := &models.User{
		Username:    username,
		Password:    password,
		DisplayName: displayName,
	}
	err := call(ctx, "Register", func(ctx context.Context) error {
		return g.users.Create(ctx, user)
	})
	if err != nil {
		if err.Kind == KindConflict {
			return Fail[*models.User](NewError(KindConflict, "username already taken"))
		}
		return Fail[*models.User](err)
	}
	return Ok(user)
}

func (g *Gateway) GetUser(ctx context.Context, userID string) Result[*models.User] {
	var user *models.User
	err := call(ctx, "GetUser", func(ctx context.Context) error {
		var err error
		user, err = g.users.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return Fail[*models.User](err)
	}
	return Ok(user)
}

// --- messages ---

type SendMessageParams struct {
	SenderID    string
	ChatID      string
	Content     string
	ClientToken string
}

func (g *Gateway) ListMessages(ctx context.Context, chatID string, limit int) Result[[]*models.Message] {
	if limit <= 0 {
		limit = 50
	}
	var messages []*models.Message
	err := call(ctx, "ListMessages", func(ctx context.Context) error {
		var err error
		messages, err = g.messages.List(ctx, chatID, limit)
		return err
	})
	if err != nil {
		return Fail[[]*models.Message](err)
	}
	return Ok(messages)
}

func (g *Gateway) SendMessage(ctx context.Context, params SendMessageParams) Result[*models.Message] {
	if strings.TrimSpace(params.Content) == "" {
		return Fail[*models.Message](NewError(KindValidation, "empty message"))
	}
	if params.SenderID == "" {
		return Fail[*models.Message](NewError(KindValidation, "missing sender"))
	}

	message := &models.Message{
		ChatID:      params.ChatID,
		SenderID:    params.SenderID,
		Content:     params.Content,
		ClientToken: params.ClientToken,
	}
	err := call(ctx, "SendMessage", func(ctx context.Context) error {
		return g.messages.Create(ctx, message)
	})
	if err != nil {
		return Fail[*models.Message](err)
	}
	return Ok(message)
}

// SubscribeMessageInserts delivers each new message row pushed by the
// backend. The returned handle must be released when the owning view goes
// away.
func (g *Gateway) SubscribeMessageInserts(onInsert func(*models.Message)) Unsubscribe {
	return g.listener.Subscribe("messages", func(payload []byte) {
		if message, err := decodeMessageRow(payload); err == nil {
			onInsert(message)
		}
	})
}

func (g *Gateway) SubscribeStoryInserts(onInsert func(*models.Story)) Unsubscribe {
	return g.listener.Subscribe("stories", func(payload []byte) {
		if story, err := decodeStoryRow(payload); err == nil {
			onInsert(story)
		}
	})
}

// --- chats ---

type CreateChatParams struct {
	Name      string
	Type      string
	CreatorID string
	ImageURL  string
}

func (g *Gateway) ListChats(ctx context.Context, includePublic bool) Result[[]*models.Chat] {
	var chats []*models.Chat
	err := call(ctx, "ListChats", func(ctx context.Context) error {
		var err error
		chats, err = g.chats.List(ctx, includePublic)
		return err
	})
	if err != nil {
		return Fail[[]*models.Chat](err)
	}
	return Ok(chats)
}

func (g *Gateway) CreateChat(ctx context.Context, params CreateChatParams) Result[*models.Chat] {
	if strings.TrimSpace(params.Name) == "" {
		return Fail[*models.Chat](NewError(KindValidation, "chat name is required"))
	}
	chatType := params.Type
	if chatType == "" {
		chatType = models.ChatTypePublic
	}

	chat := &models.Chat{
		Name:      params.Name,
		Type:      chatType,
		CreatorID: params.CreatorID,
		ImageURL:  params.ImageURL,
	}
	err := call(ctx, "CreateChat", func(ctx context.Context) error {
		return g.chats.Create(ctx, chat)
	})
	if err != nil {
		return Fail[*models.Chat](err)
	}
	return Ok(chat)
}

func (g *Gateway) UpdateChat(ctx context.Context, chat *models.Chat) Result[*models.Chat] {
	err := call(ctx, "UpdateChat", func(ctx context.Context) error {
		return g.chats.Update(ctx, chat)
	})
	if err != nil {
		return Fail[*models.Chat](err)
	}
	return Ok(chat)
}

// EnsureDefaultChat finds or creates the global room messages without a
// chat reference render into.
func (g *Gateway) EnsureDefaultChat(ctx context.Context, name string) Result[*models.Chat] {
	var chat *models.Chat
	err := call(ctx, "EnsureDefaultChat", func(ctx context.Context) error {
		var err error
		chat, err = g.chats.GetByName(ctx, name)
		return err
	})
	if err != nil {
		return Fail[*models.Chat](err)
	}
	if chat != nil {
		return Ok(chat)
	}
	return g.CreateChat(ctx, CreateChatParams{Name: name, Type: models.ChatTypePublic})
}

// --- stories ---

type CreateStoryParams struct {
	UserID   string
	Content  string
	MediaURL string
}

func (g *Gateway) ListStories(ctx context.Context, limit int) Result[[]*models.Story] {
	if limit <= 0 {
		limit = 50
	}
	var stories []*models.Story
	err := call(ctx, "ListStories", func(ctx context.Context) error {
		var err error
		stories, err = g.stories.ListRecent(ctx, limit)
		return err
	})
	if err != nil {
		return Fail[[]*models.Story](err)
	}
	return Ok(stories)
}

func (g *Gateway) GetStory(ctx context.Context, storyID string) Result[*models.Story] {
	var story *models.Story
	err := call(ctx, "GetStory", func(ctx context.Context) error {
		var err error
		story, err = g.stories.GetByID(ctx, storyID)
		return err
	})
	if err != nil {
		return Fail[*models.Story](err)
	}
	return Ok(story)
}

func (g *Gateway) CreateStory(ctx context.Context, params CreateStoryParams) Result[*models.Story] {
	if strings.TrimSpace(params.Content) == "" && params.MediaURL == "" {
		return Fail[*models.Story](NewError(KindValidation, "story needs content or media"))
	}

	story := &models.Story{
		UserID:   params.UserID,
		Content:  params.Content,
		MediaURL: params.MediaURL,
	}
	err := call(ctx, "CreateStory", func(ctx context.Context) error {
		return g.stories.Create(ctx, story)
	})
	if err != nil {
		return Fail[*models.Story](err)
	}
	return Ok(story)
}

func (g *Gateway) LikeStory(ctx context.Context, storyID, userID string) Result[struct{}] {
	reaction := &models.StoryReaction{
		StoryID: storyID,
		UserID:  userID,
		Kind:    models.ReactionKindLike,
	}
	err := call(ctx, "LikeStory", func(ctx context.Context) error {
		return g.stories.AddReaction(ctx, reaction)
	})
	if err != nil {
		if err.Kind == KindConflict {
			return Skip(struct{}{})
		}
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) UnlikeStory(ctx context.Context, storyID, userID string) Result[struct{}] {
	err := call(ctx, "UnlikeStory", func(ctx context.Context) error {
		return g.stories.DeleteReaction(ctx, storyID, userID, models.ReactionKindLike)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) HasLiked(ctx context.Context, storyID, userID string) Result[bool] {
	var liked bool
	err := call(ctx, "HasLiked", func(ctx context.Context) error {
		var err error
		liked, err = g.stories.HasReaction(ctx, storyID, userID, models.ReactionKindLike)
		return err
	})
	if err != nil {
		return Fail[bool](err)
	}
	return Ok(liked)
}

func (g *Gateway) GetStoryReactions(ctx context.Context, storyID string) Result[[]*models.StoryReaction] {
	var reactions []*models.StoryReaction
	err := call(ctx, "GetStoryReactions", func(ctx context.Context) error {
		var err error
		reactions, err = g.stories.GetReactions(ctx, storyID)
		return err
	})
	if err != nil {
		return Fail[[]*models.StoryReaction](err)
	}
	return Ok(reactions)
}

func (g *Gateway) CountStoryLikes(ctx context.Context, storyID string) Result[int] {
	var count int
	err := call(ctx, "CountStoryLikes", func(ctx context.Context) error {
		var err error
		count, err = g.stories.CountReactions(ctx, storyID, models.ReactionKindLike)
		return err
	})
	if err != nil {
		return Fail[int](err)
	}
	return Ok(count)
}

func (g *Gateway) GetStoryComments(ctx context.Context, storyID string) Result[[]*models.StoryComment] {
	var comments []*models.StoryComment
	err := call(ctx, "GetStoryComments", func(ctx context.Context) error {
		var err error
		comments, err = g.stories.GetComments(ctx, storyID)
		return err
	})
	if err != nil {
		return Fail[[]*models.StoryComment](err)
	}
	return Ok(comments)
}

func (g *Gateway) AddStoryComment(ctx context.Context, storyID, userID, content string) Result[*models.StoryComment] {
	if strings.TrimSpace(content) == "" {
		return Fail[*models.StoryComment](NewError(KindValidation, "empty comment"))
	}
	comment := &models.StoryComment{
		StoryID: storyID,
		UserID:  userID,
		Content: content,
	}
	err := call(ctx, "AddStoryComment", func(ctx context.Context) error {
		return g.stories.AddComment(ctx, comment)
	})
	if err != nil {
		return Fail[*models.StoryComment](err)
	}
	return Ok(comment)
}

// --- leaderboard ---

func (g *Gateway) ListLeaderboard(ctx context.Context, limit int) Result[[]*models.User] {
	if limit <= 0 {
		limit = 100
	}
	var users []*models.User
	err := call(ctx, "ListLeaderboard", func(ctx context.Context) error {
		var err error
		users, err = g.users.GetTopUsers(ctx, limit)
		return err
	})
	if err != nil {
		return Fail[[]*models.User](err)
	}
	return Ok(users)
}

func (g *Gateway) ListAllUsers(ctx context.Context) Result[[]*models.User] {
	var users []*models.User
	err := call(ctx, "ListAllUsers", func(ctx context.Context) error {
		var err error
		users, err = g.users.GetUsers(ctx)
		return err
	})
	if err != nil {
		return Fail[[]*models.User](err)
	}
	return Ok(users)
}

// --- quests ---

func (g *Gateway) GetQuest(ctx context.Context, questID string) Result[*models.Quest] {
	var quest *models.Quest
	err := call(ctx, "GetQuest", func(ctx context.Context) error {
		var err error
		quest, err = g.quests.GetByID(ctx, questID)
		return err
	})
	if err != nil {
		return Fail[*models.Quest](err)
	}
	return Ok(quest)
}

func (g *Gateway) ListActiveQuests(ctx context.Context) Result[[]*models.Quest] {
	var quests []*models.Quest
	err := call(ctx, "ListActiveQuests", func(ctx context.Context) error {
		var err error
		quests, err = g.quests.GetActiveQuests(ctx)
		return err
	})
	if err != nil {
		return Fail[[]*models.Quest](err)
	}
	return Ok(quests)
}

func (g *Gateway) GetQuestCompletion(ctx context.Context, userID, questID, day string) Result[*models.QuestCompletion] {
	var completion *models.QuestCompletion
	err := call(ctx, "GetQuestCompletion", func(ctx context.Context) error {
		var err error
		completion, err = g.quests.GetCompletion(ctx, userID, questID, day)
		return err
	})
	if err != nil {
		return Fail[*models.QuestCompletion](err)
	}
	return Ok(completion)
}

func (g *Gateway) GetLifetimeCompletions(ctx context.Context, userID, questID string) Result[int] {
	var count int
	err := call(ctx, "GetLifetimeCompletions", func(ctx context.Context) error {
		var err error
		count, err = g.quests.GetLifetimeCompletionCount(ctx, userID, questID)
		return err
	})
	if err != nil {
		return Fail[int](err)
	}
	return Ok(count)
}

func (g *Gateway) IncrementQuestCompletion(ctx context.Context, userID, questID, day string, trophies int64) Result[struct{}] {
	err := call(ctx, "IncrementQuestCompletion", func(ctx context.Context) error {
		return g.quests.IncrementCompletion(ctx, userID, questID, day, trophies)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) ListQuestCompletions(ctx context.Context, userID, day string) Result[[]*models.QuestCompletion] {
	var completions []*models.QuestCompletion
	err := call(ctx, "ListQuestCompletions", func(ctx context.Context) error {
		var err error
		completions, err = g.quests.ListCompletions(ctx, userID, day)
		return err
	})
	if err != nil {
		return Fail[[]*models.QuestCompletion](err)
	}
	return Ok(completions)
}

func (g *Gateway) AddTrophies(ctx context.Context, userID string, trophies, xp int64) Result[struct{}] {
	err := call(ctx, "AddTrophies", func(ctx context.Context) error {
		return g.users.AddTrophies(ctx, userID, trophies, xp)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) SetSeasonalTrophies(ctx context.Context, userID string, seasonal int64) Result[struct{}] {
	err := call(ctx, "SetSeasonalTrophies", func(ctx context.Context) error {
		return g.users.SetSeasonalTrophies(ctx, userID, seasonal)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) SetStreak(ctx context.Context, userID string, streak int, at time.Time) Result[struct{}] {
	err := call(ctx, "SetStreak", func(ctx context.Context) error {
		return g.users.SetStreak(ctx, userID, streak, at)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) IncrementMessageCount(ctx context.Context, userID string) Result[struct{}] {
	err := call(ctx, "IncrementMessageCount", func(ctx context.Context) error {
		return g.users.IncrementMessageCount(ctx, userID)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) IncrementStoryCount(ctx context.Context, userID string) Result[struct{}] {
	err := call(ctx, "IncrementStoryCount", func(ctx context.Context) error {
		return g.users.IncrementStoryCount(ctx, userID)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) RecordActivity(ctx context.Context, userID, day string, delta repositories.ActivityDelta) Result[struct{}] {
	err := call(ctx, "RecordActivity", func(ctx context.Context) error {
		return g.activities.Increment(ctx, userID, day, delta)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) GetDailyActivity(ctx context.Context, userID, day string) Result[*models.DailyActivity] {
	var activity *models.DailyActivity
	err := call(ctx, "GetDailyActivity", func(ctx context.Context) error {
		var err error
		activity, err = g.activities.Get(ctx, userID, day)
		return err
	})
	if err != nil {
		return Fail[*models.DailyActivity](err)
	}
	return Ok(activity)
}

// --- badges ---

func (g *Gateway) GrantBadge(ctx context.Context, userID, name string) Result[struct{}] {
	err := call(ctx, "GrantBadge", func(ctx context.Context) error {
		return g.badges.Grant(ctx, userID, name)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

func (g *Gateway) HasBadge(ctx context.Context, userID, name string) Result[bool] {
	var has bool
	err := call(ctx, "HasBadge", func(ctx context.Context) error {
		var err error
		has, err = g.badges.HasBadge(ctx, userID, name)
		return err
	})
	if err != nil {
		return Fail[bool](err)
	}
	return Ok(has)
}

func (g *Gateway) ListBadges(ctx context.Context, userID string) Result[[]*models.Badge] {
	var badges []*models.Badge
	err := call(ctx, "ListBadges", func(ctx context.Context) error {
		var err error
		badges, err = g.badges.GetByUser(ctx, userID)
		return err
	})
	if err != nil {
		return Fail[[]*models.Badge](err)
	}
	return Ok(badges)
}

// --- admin ---

func (g *Gateway) CreateQuest(ctx context.Context, quest *models.Quest) Result[*models.Quest] {
	if strings.TrimSpace(quest.Name) == "" {
		return Fail[*models.Quest](NewError(KindValidation, "quest name is required"))
	}
	err := call(ctx, "CreateQuest", func(ctx context.Context) error {
		return g.quests.Create(ctx, quest)
	})
	if err != nil {
		return Fail[*models.Quest](err)
	}
	return Ok(quest)
}

func (g *Gateway) DeleteQuest(ctx context.Context, questID string) Result[struct{}] {
	err := call(ctx, "DeleteQuest", func(ctx context.Context) error {
		return g.quests.Deactivate(ctx, questID)
	})
	if err != nil {
		return Fail[struct{}](err)
	}
	return Ok(struct{}{})
}

// --- uploads ---

func (g *Gateway) UploadImage(ctx context.Context, req UploadRequest) Result[string] {
	if g.uploader == nil {
		return Fail[string](NewError(KindUploadMissingBucket, "no uploader configured"))
	}
	var url string
	err := call(ctx, "UploadImage", func(ctx context.Context) error {
		var err error
		url, err = g.uploader.Upload(ctx, req)
		return err
	})
	if err != nil {
		return Fail[string](err)
	}
	return Ok(url)
}
