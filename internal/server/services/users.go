// Package services contains server-side business logic. UserService covers
// accounts: registration, login, token rotation, profile edits and account
// deletion.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/cryptox"
	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/dmitrijs2005/voicearchive/internal/server/auth"
	"github.com/dmitrijs2005/voicearchive/internal/server/config"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/repomanager"
)

const minPasswordLength = 6

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Session is what a successful register or login returns.
type Session struct {
	Profile *models.Profile
	Tokens  *TokenPair
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		log:                          log.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}
	return nil
}

// Register creates a profile and signs it in. A taken email yields
// common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var out *Session
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := s.repomanager.Profiles(tx).Create(ctx, &models.Profile{
			Name:         strings.TrimSpace(name),
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		pair, err := s.generateTokenPair(ctx, p.ID, tx)
		if err != nil {
			return err
		}
		out = &Session{Profile: p, Tokens: pair}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		if errors.Is(err, common.ErrorInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}
	s.log.Info(ctx, "profile registered", "user", out.Profile.ID)
	return out, nil
}

// Login verifies the password against the stored argon2id hash. Unknown
// emails and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	p, err := s.repomanager.Profiles(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword(password, p.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "stored password hash unreadable", "user", p.ID, "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	if n, err := s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx, p.ID, s.now()); err != nil {
		s.log.Warn(ctx, "prune refresh tokens", "user", p.ID, "error", err)
	} else if n > 0 {
		s.log.Debug(ctx, "pruned refresh tokens", "user", p.ID, "count", n)
	}

	pair, err := s.generateTokenPair(ctx, p.ID, s.db)
	if err != nil {
		return nil, err
	}
	return &Session{Profile: p, Tokens: pair}, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(s.now()) {
		_ = repo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).GetByID(ctx, userID)
}

// UpdateProfile changes display name and photo URL. An empty name is
// rejected.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, photoURL string) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return s.repomanager.Profiles(s.db).Update(ctx, userID, name, strings.TrimSpace(photoURL))
}

// DeleteAccount removes the profile. Refresh tokens and bookmarks go with
// it; recordings stay in the archive.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.repomanager.Profiles(s.db).Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info(ctx, "profile deleted", "user", userID)
	return nil
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
