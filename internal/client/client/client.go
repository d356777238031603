package client

import (
	"context"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
)

// Auth is the outcome of a successful register or login.
type Auth struct {
	User         models.User
	AccessToken  string
	RefreshToken string
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	// SetTokens replaces the tokens sent with authenticated calls.
	SetTokens(accessToken, refreshToken string)

	Register(ctx context.Context, name, email, password string) (Auth, error)
	Login(ctx context.Context, email, password string) (Auth, error)
	UpdateProfile(ctx context.Context, name, photoURL string) (models.User, error)
	DeleteAccount(ctx context.Context) error

	PrepareAudioUpload(ctx context.Context, recordingID, contentType string) (key, url string, err error)
	PushRecordings(ctx context.Context, recs []models.Recording) error
	GetRecordings(ctx context.Context, ids []string) ([]models.Recording, error)

	ListBookmarks(ctx context.Context, userID string) ([]string, error)
	BookmarkExists(ctx context.Context, userID, recordingID string) (bool, error)
	AddBookmark(ctx context.Context, userID, recordingID string) error
	RemoveBookmark(ctx context.Context, userID, recordingID string) error
}
