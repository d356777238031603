package services

import (
	"context"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
)

// BookmarkClient is the part of the remote API the ledger needs.
type BookmarkClient interface {
	ListBookmarks(ctx context.Context, userID string) ([]string, error)
	GetRecordings(ctx context.Context, ids []string) ([]models.Recording, error)
	BookmarkExists(ctx context.Context, userID, recordingID string) (bool, error)
	AddBookmark(ctx context.Context, userID, recordingID string) error
	RemoveBookmark(ctx context.Context, userID, recordingID string) error
}

type BookmarkChange int

const (
	BookmarkAdded BookmarkChange = iota + 1
	BookmarkRemoved
)

func (c BookmarkChange) String() string {
	switch c {
	case BookmarkAdded:
		return "added"
	case BookmarkRemoved:
		return "removed"
	}
	return "unknown"
}

// BookmarkLedger reads and flips the server-side bookmarks of a user. The
// local IsBookmarked flags are refreshed on a best-effort basis.
type BookmarkLedger struct {
	remote BookmarkClient
	store  *RecordingStore
	log    logging.Logger
}

func NewBookmarkLedger(remote BookmarkClient, store *RecordingStore, log logging.Logger) *BookmarkLedger {
	return &BookmarkLedger{remote: remote, store: store, log: log.With("module", "bookmarks")}
}

// Load resolves the user's bookmarks to recordings, in bookmark order.
// Bookmarks pointing at recordings that no longer exist are dropped.
func (l *BookmarkLedger) Load(ctx context.Context, userID string) ([]models.Recording, error) {
	if userID == "" {
		return nil, common.ErrUnauthenticated
	}

	ids, err := l.remote.ListBookmarks(ctx, userID)
	if err != nil {
		return nil, err
	}

	var resolved []models.Recording
	if len(ids) > 0 {
		recs, err := l.remote.GetRecordings(ctx, ids)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]models.Recording, len(recs))
		for _, r := range recs {
			byID[r.ID] = r
		}
		for _, id := range ids {
			if r, ok := byID[id]; ok {
				r.IsBookmarked = true
				resolved = append(resolved, r)
			}
		}
	}

	if dropped := len(ids) - len(resolved); dropped > 0 {
		l.log.Debug(ctx, "dropped orphaned bookmarks", "count", dropped)
	}

	kept := make([]string, len(resolved))
	for i, r := range resolved {
		kept[i] = r.ID
	}
	if err := l.store.SetBookmarked(ctx, kept); err != nil {
		l.log.Warn(ctx, "refresh bookmark flags", "error", err)
	}
	return resolved, nil
}

// Toggle adds the bookmark if it is missing and removes it otherwise, with
// one existence check and one mutating call.
func (l *BookmarkLedger) Toggle(ctx context.Context, userID, recordingID string) (BookmarkChange, error) {
	if userID == "" {
		return 0, common.ErrUnauthenticated
	}

	exists, err := l.remote.BookmarkExists(ctx, userID, recordingID)
	if err != nil {
		return 0, err
	}

	change := BookmarkAdded
	if exists {
		change = BookmarkRemoved
		err = l.remote.RemoveBookmark(ctx, userID, recordingID)
	} else {
		err = l.remote.AddBookmark(ctx, userID, recordingID)
	}
	if err != nil {
		return 0, err
	}

	flag := change == BookmarkAdded
	if err := l.store.Update(ctx, recordingID, models.RecordingPatch{IsBookmarked: &flag}); err != nil {
		l.log.Warn(ctx, "update bookmark flag", "id", recordingID, "error", err)
	}
	return change, nil
}
