package services

import (
	"context"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/logger"
	"github.com/SimaxBen/wadrari/wadrari/session"
)

// Sessions persists the signed-in user across restarts. Implemented by
// the session store.
type Sessions interface {
	SaveUser(userID, username string) error
	CurrentUser() (*session.Record, error)
	ClearUser() error
}

// AuthService pairs the gateway's credential operations with local
// session persistence.
type AuthService struct {
	gw       *gateway.Gateway
	sessions Sessions
}

func NewAuthService(gw *gateway.Gateway, sessions Sessions) *AuthService {
	return &AuthService{gw: gw, sessions: sessions}
}

func (s *AuthService) Login(ctx context.Context, username, password string) gateway.Result[*models.User] {
	res := s.gw.Login(ctx, username, password)
	if !res.OK {
		return res
	}
	if err := s.sessions.SaveUser(res.Data.ID, res.Data.Username); err != nil {
		// The login itself succeeded; the user just won't be remembered.
		logger.LogError("persisting session failed", "error", err)
	}
	return res
}

func (s *AuthService) Register(ctx context.Context, username, password, displayName string) gateway.Result[*models.User] {
	res := s.gw.Register(ctx, username, password, displayName)
	if !res.OK {
		return res
	}
	if err := s.sessions.SaveUser(res.Data.ID, res.Data.Username); err != nil {
		logger.LogError("persisting session failed", "error", err)
	}
	return res
}

func (s *AuthService) Logout() error {
	return s.sessions.ClearUser()
}

// Restore resolves the persisted session into a fresh user record on
// startup. A missing session is not an error; the result is skipped.
func (s *AuthService) Restore(ctx context.Context) gateway.Result[*models.User] {
	record, err := s.sessions.CurrentUser()
	if err != nil {
		return gateway.Skip[*models.User](nil)
	}
	res := s.gw.GetUser(ctx, record.UserID)
	if !res.OK && res.Err.Kind == gateway.KindNotFound {
		// The account is gone; drop the stale session.
		_ = s.sessions.ClearUser()
	}
	return res
}
