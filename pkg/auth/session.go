// Package auth manages the authenticated session: remote-first login with
// a development-mode offline fallback, session restore from the local
// store, and the process-wide forced logout on any 401/403.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"solartech.app/field-service/pkg/api"
	"solartech.app/field-service/pkg/cache"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/fieldops"
	"solartech.app/field-service/pkg/models"
)

type Session struct {
	Engine *fieldops.Engine
	Client *api.Client
	Store  cache.Store

	mu      sync.Mutex
	token   string
	offline bool
}

func NewSession(engine *fieldops.Engine, client *api.Client, store cache.Store) *Session {
	s := &Session{Engine: engine, Client: client, Store: store}
	// register first, so even the restore path's first remote call can
	// force a logout
	client.SetOnUnauthorized(s.HandleUnauthorized)
	return s
}

// Token returns the in-process session token the gateway checks against.
// Offline sessions hold a locally generated token that is never persisted.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Offline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offline
}

// Login authenticates against the remote API first. In development mode a
// network failure falls back to the seeded credentials for offline work;
// rejected credentials are never retried or shadowed by the fallback.
func (s *Session) Login(ctx context.Context, username, password string) (models.Actor, error) {
	logger := common.GetLoggerWith(common.LoggerNameSession)

	result := s.Client.Login(ctx, username, password)
	if result.Success {
		actor := result.Data.User
		actor.Role = models.Role(strings.ToLower(string(actor.Role)))
		if result.Data.Token == "" || !actor.Role.Valid() {
			return models.Actor{}, fmt.Errorf("invalid login response from server")
		}

		s.persistAuth(ctx, result.Data.Token, actor)
		s.Client.SetToken(result.Data.Token)
		s.Engine.SetActor(&actor)
		s.Engine.ReconcileTechnician(ctx, actor)

		s.mu.Lock()
		s.token = result.Data.Token
		s.offline = false
		s.mu.Unlock()

		logger.Info("Logged in via remote API", zap.String("username", username))
		return actor, nil
	}

	logger.Warn("Remote login failed", zap.String("username", username), zap.String("error", result.Error))

	if !common.IsDevelopment() {
		return models.Actor{}, fmt.Errorf("%s", result.Error)
	}

	actor, found := s.offlineActor(username, password)
	if !found {
		return models.Actor{}, fmt.Errorf("credenziali non valide o impossibile connettersi al server")
	}

	// offline session: no server token, so any previously stored one is
	// dropped
	s.persistActorOnly(ctx, actor)
	s.Client.SetToken("")
	s.Engine.SetActor(&actor)
	s.Engine.ReconcileTechnician(ctx, actor)

	s.mu.Lock()
	s.token = "offline-" + uuid.NewString()
	s.offline = true
	s.mu.Unlock()

	logger.Info("Logged in offline (development fallback)", zap.String("username", username))
	return actor, nil
}

// Restore rebuilds the session from the local store. A stored token whose
// exp claim is already past is discarded instead of restored; the
// signature is the server's concern and is not checked here. An actor
// without a token was an offline session and forces a fresh login.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	logger := common.GetLoggerWith(common.LoggerNameSession)

	tokenBytes, tokenFound, err := s.Store.Get(ctx, cache.KeyAuthToken)
	if err != nil {
		return false, err
	}
	userBytes, userFound, err := s.Store.Get(ctx, cache.KeyAuthUser)
	if err != nil {
		return false, err
	}

	if !tokenFound {
		if userFound {
			logger.Info("Stored actor without token, forcing fresh login")
			if err := s.Store.Remove(ctx, cache.KeyAuthUser); err != nil {
				logger.Warn("Failed to drop stale actor", zap.Error(err))
			}
		}
		return false, nil
	}
	if !userFound {
		return false, nil
	}

	token := string(tokenBytes)
	if tokenExpired(token) {
		logger.Info("Stored token expired, discarding session")
		s.clearStoredAuth(ctx)
		return false, nil
	}

	var actor models.Actor
	if err := json.Unmarshal(userBytes, &actor); err != nil {
		s.clearStoredAuth(ctx)
		return false, nil
	}

	s.Client.SetToken(token)
	s.Engine.SetActor(&actor)
	s.mu.Lock()
	s.token = token
	s.offline = false
	s.mu.Unlock()

	// no eager verification: an invalid token surfaces as a 401 on the
	// first remote call and trips the forced logout
	logger.Info("Session restored", zap.String("username", actor.Username))
	return true, nil
}

func (s *Session) Logout(ctx context.Context) {
	s.clearStoredAuth(ctx)
	s.Client.SetToken("")
	s.Engine.ClearActor()
	s.mu.Lock()
	s.token = ""
	s.offline = false
	s.mu.Unlock()
}

// HandleUnauthorized is the process-wide 401/403 hook: regardless of which
// call tripped it, credentials and actor state are cleared.
func (s *Session) HandleUnauthorized() {
	common.GetLoggerWith(common.LoggerNameSession).Warn("Unauthorized response received, forcing logout")
	s.Logout(context.Background())
}

func (s *Session) offlineActor(username, password string) (models.Actor, bool) {
	username = strings.ToLower(username)
	// offline login checks the merged user records directly, bypassing
	// visibility (nobody is authenticated yet)
	for _, u := range s.Engine.AllUsers() {
		if strings.ToLower(u.Username) == username && u.Password != "" && u.Password == password {
			return models.Actor{
				ID:          u.ID,
				Username:    u.Username,
				Role:        u.Role,
				Name:        u.Name,
				Email:       u.Email,
				CompanyID:   u.CompanyID,
				CompanyName: u.CompanyName,
			}, true
		}
	}
	return models.Actor{}, false
}

func (s *Session) persistAuth(ctx context.Context, token string, actor models.Actor) {
	logger := common.GetLoggerWith(common.LoggerNameSession)
	if err := s.Store.Set(ctx, cache.KeyAuthToken, []byte(token)); err != nil {
		logger.Warn("Failed to persist token", zap.Error(err))
	}
	encoded, err := json.Marshal(actor)
	if err != nil {
		return
	}
	if err := s.Store.Set(ctx, cache.KeyAuthUser, encoded); err != nil {
		logger.Warn("Failed to persist actor", zap.Error(err))
	}
}

func (s *Session) persistActorOnly(ctx context.Context, actor models.Actor) {
	logger := common.GetLoggerWith(common.LoggerNameSession)
	if err := s.Store.Remove(ctx, cache.KeyAuthToken); err != nil {
		logger.Warn("Failed to drop token", zap.Error(err))
	}
	encoded, err := json.Marshal(actor)
	if err != nil {
		return
	}
	if err := s.Store.Set(ctx, cache.KeyAuthUser, encoded); err != nil {
		logger.Warn("Failed to persist actor", zap.Error(err))
	}
}

func (s *Session) clearStoredAuth(ctx context.Context) {
	logger := common.GetLoggerWith(common.LoggerNameSession)
	if err := s.Store.Remove(ctx, cache.KeyAuthToken); err != nil {
		logger.Warn("Failed to clear token", zap.Error(err))
	}
	if err := s.Store.Remove(ctx, cache.KeyAuthUser); err != nil {
		logger.Warn("Failed to clear actor", zap.Error(err))
	}
}

func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// opaque non-JWT tokens carry no local expiry; let the server
		// decide via 401
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
