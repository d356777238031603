package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/client/services"
	"github.com/dmitrijs2005/voicearchive/internal/common"
)

// onlineSession returns the session if it can talk to the server.
func (a *App) onlineSession() (*models.Session, error) {
	sess := a.session()
	if !sess.Active() {
		return nil, common.ErrUnauthenticated
	}
	if sess.Mode != models.SessionModeOnline {
		return nil, services.ErrOfflineSession
	}
	return sess, nil
}

// refreshBookmarks reloads the bookmark flags for a freshly active online
// session. Failures only leave the flags stale.
func (a *App) refreshBookmarks(ctx context.Context) {
	sess, err := a.onlineSession()
	if err != nil {
		return
	}
	if _, err := a.bookmarks.Load(ctx, sess.User.ID); err != nil {
		a.log.Warn(ctx, "load bookmarks", "error", err)
	}
}

// Sync pushes every local recording to the server.
func (a *App) Sync(ctx context.Context) error {
	sess, err := a.onlineSession()
	if err != nil {
		return err
	}

	report, err := a.syncer.SyncAll(ctx, sess)
	if errors.Is(err, common.ErrNothingToSync) {
		fmt.Fprintln(a.out, "Everything is already synced")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Synced %d recording(s)\n", report.Synced)
	return nil
}

// Bookmark flips the bookmark on a recording.
func (a *App) Bookmark(ctx context.Context, args []string) error {
	sess, err := a.onlineSession()
	if err != nil {
		return err
	}
	id, err := argOrPrompt(a, args, "Enter recording id to bookmark")
	if err != nil {
		return err
	}

	change, err := a.bookmarks.Toggle(ctx, sess.User.ID, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Bookmark %s\n", change)
	return nil
}

func (a *App) Bookmarks(ctx context.Context) error {
	sess, err := a.onlineSession()
	if err != nil {
		return err
	}
	recs, err := a.bookmarks.Load(ctx, sess.User.ID)
	if err != nil {
		return err
	}
	renderRecordings(a.out, recs)
	return nil
}
