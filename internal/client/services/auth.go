package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/voicearchive/internal/client/client"
	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/client/repositories/kv"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/cryptox"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
)

var (
	ErrNoOfflineCredentials = errors.New("no cached credentials for offline login")
	ErrOfflineSession       = errors.New("this needs an online session")
)

// AuthService signs users in and out. Online login caches an argon2id hash
// of the password so the same user can sign in offline when the server is
// unreachable.
type AuthService struct {
	client   client.Client
	sessions *SessionStore
	kv       kv.Repository
	log      logging.Logger
}

func NewAuthService(c client.Client, sessions *SessionStore, repo kv.Repository, log logging.Logger) *AuthService {
	return &AuthService{client: c, sessions: sessions, kv: repo, log: log.With("module", "auth")}
}

// Resume restores a persisted session and hands its tokens to the client.
func (a *AuthService) Resume(ctx context.Context) (*models.Session, error) {
	sess, err := a.sessions.Restore(ctx)
	if err != nil || sess == nil {
		return nil, err
	}
	a.client.SetTokens(sess.AccessToken, sess.RefreshToken)
	return sess, nil
}

func (a *AuthService) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}

	auth, err := a.client.Register(ctx, name, normalizeEmail(email), password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return a.beginOnline(ctx, auth, password)
}

// Login signs in against the server, falling back to the cached
// credentials when the server is unavailable.
func (a *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = normalizeEmail(email)

	auth, err := a.client.Login(ctx, email, password)
	if errors.Is(err, client.ErrUnavailable) {
		a.log.Info(ctx, "server unavailable, trying offline login")
		return a.offlineLogin(ctx, email, password)
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return a.beginOnline(ctx, auth, password)
}

func (a *AuthService) beginOnline(ctx context.Context, auth client.Auth, password string) (*models.Session, error) {
	if err := a.cacheCredential(ctx, auth.User, password); err != nil {
		a.log.Warn(ctx, "cache credentials", "error", err)
	}

	sess := models.Session{
		User:         auth.User,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		Mode:         models.SessionModeOnline,
	}
	if err := a.sessions.Begin(ctx, sess); err != nil {
		return nil, err
	}
	return a.sessions.Current(), nil
}

func (a *AuthService) offlineLogin(ctx context.Context, email, password string) (*models.Session, error) {
	creds, err := a.credentials(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range creds {
		if c.User.Email != email {
			continue
		}
		ok, err := cryptox.VerifyPassword(password, c.PasswordHash)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, client.ErrUnauthorized
		}
		if err := a.sessions.Begin(ctx, models.Session{User: c.User, Mode: models.SessionModeOffline}); err != nil {
			return nil, err
		}
		return a.sessions.Current(), nil
	}
	return nil, ErrNoOfflineCredentials
}

func (a *AuthService) Logout(ctx context.Context) error {
	a.client.SetTokens("", "")
	return a.sessions.End(ctx)
}

// UpdateProfile changes the display name and photo of the signed-in user.
func (a *AuthService) UpdateProfile(ctx context.Context, name, photoURL string) (*models.User, error) {
	sess, err := a.requireOnline()
	if err != nil {
		return nil, err
	}

	user, err := a.client.UpdateProfile(ctx, name, photoURL)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	user.IsLoggedIn = true

	if err := a.sessions.Update(ctx, func(s *models.Session) { s.User = user }); err != nil {
		return nil, err
	}
	if err := a.updateCredentialUser(ctx, sess.User.ID, user); err != nil {
		a.log.Warn(ctx, "refresh cached credentials", "error", err)
	}
	return &user, nil
}

// DeleteAccount removes the remote profile, the cached credentials and the
// session.
func (a *AuthService) DeleteAccount(ctx context.Context) error {
	sess, err := a.requireOnline()
	if err != nil {
		return err
	}

	if err := a.client.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := a.forgetCredential(ctx, sess.User.ID); err != nil {
		a.log.Warn(ctx, "forget cached credentials", "error", err)
	}
	return a.Logout(ctx)
}

// Ping reports whether the server is reachable.
func (a *AuthService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// PersistTokens stores refreshed tokens in the current session.
func (a *AuthService) PersistTokens(ctx context.Context, accessToken, refreshToken string) error {
	return a.sessions.Update(ctx, func(s *models.Session) {
		s.AccessToken = accessToken
		s.RefreshToken = refreshToken
	})
}

func (a *AuthService) requireOnline() (*models.Session, error) {
	sess := a.sessions.Current()
	if !sess.Active() {
		return nil, common.ErrUnauthenticated
	}
	if sess.Mode != models.SessionModeOnline {
		return nil, ErrOfflineSession
	}
	return sess, nil
}

func (a *AuthService) credentials(ctx context.Context) ([]models.Credential, error) {
	data, err := a.kv.Get(ctx, common.KeyCredentials)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var creds []models.Credential
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

func (a *AuthService) saveCredentials(ctx context.Context, creds []models.Credential) error {
	if len(creds) == 0 {
		return a.kv.Delete(ctx, common.KeyCredentials)
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, common.KeyCredentials, data)
}

func (a *AuthService) cacheCredential(ctx context.Context, user models.User, password string) error {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}
	creds, err := a.credentials(ctx)
	if err != nil {
		return err
	}

	entry := models.Credential{User: user, PasswordHash: hash}
	entry.User.Email = normalizeEmail(user.Email)
	for i := range creds {
		if creds[i].User.ID == user.ID {
			creds[i] = entry
			return a.saveCredentials(ctx, creds)
		}
	}
	return a.saveCredentials(ctx, append(creds, entry))
}

func (a *AuthService) updateCredentialUser(ctx context.Context, userID string, user models.User) error {
	creds, err := a.credentials(ctx)
	if err != nil {
		return err
	}
	for i := range creds {
		if creds[i].User.ID == userID {
			creds[i].User.Name = user.Name
			creds[i].User.PhotoURL = user.PhotoURL
		}
	}
	return a.saveCredentials(ctx, creds)
}

func (a *AuthService) forgetCredential(ctx context.Context, userID string) error {
	creds, err := a.credentials(ctx)
	if err != nil {
		return err
	}
	kept := creds[:0]
	for _, c := range creds {
		if c.User.ID != userID {
			kept = append(kept, c)
		}
	}
	return a.saveCredentials(ctx, kept)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
