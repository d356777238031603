package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/repomanager"
)

// BookmarkService manages per-user bookmarks. Every call names the user it
// acts for; a caller may only touch their own bookmarks.
type BookmarkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBookmarkService(db *sql.DB, m repomanager.RepositoryManager) *BookmarkService {
	return &BookmarkService{db: db, repomanager: m}
}

func authorize(callerID, userID string) error {
	if userID == "" || callerID != userID {
		return fmt.Errorf("bookmarks of %q: %w", userID, common.ErrorForbidden)
	}
	return nil
}

func (s *BookmarkService) List(ctx context.Context, callerID, userID string) ([]string, error) {
	if err := authorize(callerID, userID); err != nil {
		return nil, err
	}
	return s.repomanager.Bookmarks(s.db).List(ctx, userID)
}

func (s *BookmarkService) Exists(ctx context.Context, callerID, userID, recordingID string) (bool, error) {
	if err := authorize(callerID, userID); err != nil {
		return false, err
	}
	return s.repomanager.Bookmarks(s.db).Exists(ctx, userID, recordingID)
}

// Add bookmarks an existing recording. Adding twice is not an error.
func (s *BookmarkService) Add(ctx context.Context, callerID, userID, recordingID string) error {
	if err := authorize(callerID, userID); err != nil {
		return err
	}
	if _, err := s.repomanager.Recordings(s.db).Get(ctx, recordingID); err != nil {
		return err
	}
	return s.repomanager.Bookmarks(s.db).Add(ctx, userID, recordingID)
}

// Remove drops a bookmark. Removing a missing bookmark is not an error.
func (s *BookmarkService) Remove(ctx context.Context, callerID, userID, recordingID string) error {
	if err := authorize(callerID, userID); err != nil {
		return err
	}
	_, err := s.repomanager.Bookmarks(s.db).Remove(ctx, userID, recordingID)
	return err
}
