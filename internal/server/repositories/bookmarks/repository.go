// Package bookmarks declares the repository contract for per-user
// recording bookmarks.
package bookmarks

import "context"

type Repository interface {
	// List returns the bookmarked recording ids of userID, oldest first.
	List(ctx context.Context, userID string) ([]string, error)
	Exists(ctx context.Context, userID, recordingID string) (bool, error)
	// Add is idempotent.
	Add(ctx context.Context, userID, recordingID string) error
	// Remove reports whether a bookmark was actually removed.
	Remove(ctx context.Context, userID, recordingID string) (bool, error)
}
