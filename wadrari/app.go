package wadrari

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SimaxBen/wadrari/wadrari/database"
	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/services"
	"github.com/SimaxBen/wadrari/wadrari/session"
)

// App owns every long-lived component and wires them together explicitly.
// Nothing in the tree reaches for a package-level instance.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB       *database.DB
	Gateway  *gateway.Gateway
	Sessions *session.Store

	Auth     *services.AuthService
	Quests   *services.QuestService
	Activity *services.ActivityService
	Stories  *services.StoryService
	Season   *services.SeasonService
	Spaces   *services.SpacesService
}

func New(cfg Config, version, commit string) *App {
	return &App{Cfg: cfg, Version: version, Commit: commit}
}

// Setup connects the database, opens the session store and builds the
// service graph. It does not start the realtime listener; call
// StartRealtime once setup succeeded.
func (a *App) Setup(ctx context.Context) error {
	db, err := database.New(ctx, database.DBConfig{
		Host:     a.Cfg.DB.Host,
		Port:     a.Cfg.DB.Port,
		User:     a.Cfg.DB.User,
		Password: a.Cfg.DB.Password,
		Database: a.Cfg.DB.Database,
		PoolSize: a.Cfg.DB.PoolSize,
	})
	if err != nil {
		return fmt.Errorf("connecting database: %w", err)
	}
	a.DB = db

	if err := db.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	if err := db.InitializeQuestData(ctx); err != nil {
		return fmt.Errorf("seeding quests: %w", err)
	}

	sessions, err := session.Open(a.Cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	a.Sessions = sessions

	if a.Cfg.Spaces.Key != "" {
		spaces, err := services.NewSpacesService(
			a.Cfg.Spaces.Key, a.Cfg.Spaces.Secret, a.Cfg.Spaces.Region,
			a.Cfg.Spaces.Bucket, a.Cfg.Spaces.MediaRoot, a.Cfg.Spaces.AvatarRoot)
		if err != nil {
			return fmt.Errorf("configuring spaces: %w", err)
		}
		a.Spaces = spaces
	} else {
		slog.Warn("no spaces credentials configured, uploads disabled")
	}

	var uploader gateway.Uploader
	if a.Spaces != nil {
		uploader = a.Spaces
	}
	a.Gateway = gateway.New(db, uploader)

	if res := a.Gateway.EnsureDefaultChat(ctx, models.DefaultChatName); !res.OK {
		return fmt.Errorf("ensuring default chat: %w", res.Err)
	}

	a.Activity = services.NewActivityService(a.Gateway)
	a.Quests = services.NewQuestService(a.Gateway)
	a.Stories = services.NewStoryService(a.Gateway, a.Activity)
	a.Season = services.NewSeasonService(a.Gateway, a.Cfg.Admin.Username)
	a.Auth = services.NewAuthService(a.Gateway, sessions)

	return nil
}

// StartRealtime opens the notification connection.
func (a *App) StartRealtime(ctx context.Context) error {
	return a.Gateway.StartRealtime(ctx)
}

func (a *App) Close() {
	if a.Gateway != nil {
		a.Gateway.Close()
	}
	if a.Sessions != nil {
		if err := a.Sessions.Close(); err != nil {
			slog.Error("closing session store", slog.Any("error", err))
		}
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
