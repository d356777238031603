package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/client/capture"
	"github.com/dmitrijs2005/voicearchive/internal/client/client"
	"github.com/dmitrijs2005/voicearchive/internal/client/config"
	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/client/repositories"
	"github.com/dmitrijs2005/voicearchive/internal/client/repositories/kv"
	"github.com/dmitrijs2005/voicearchive/internal/client/services"
	"github.com/dmitrijs2005/voicearchive/internal/filex"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/gofrs/flock"
)

var ErrAlreadyRunning = errors.New("another client is using this data directory")

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	lock  *flock.Flock
	local *repositories.Local
	api   client.Client

	sessions   *services.SessionStore
	auth       *services.AuthService
	recordings *services.RecordingStore
	syncer     *services.SyncService
	bookmarks  *services.BookmarkLedger
	capture    *capture.Session

	modeMu sync.Mutex
	mode   Mode
}

// NewApp takes the data directory lock, opens the local database and
// connects the API client. Close releases all of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, err
	}

	lock := flock.New(c.DatabasePath() + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}

	local, err := repositories.OpenLocal(ctx, c.DatabasePath())
	if err != nil {
		_ = lock.Unlock()
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{lock: lock, local: local}

	api, err := client.NewGRPCClient(c.ServerEndpointAddr,
		client.WithRequestTimeout(c.RequestTimeout),
		client.WithTokenRefreshHook(a.persistTokens),
	)
	if err != nil {
		_ = local.Close()
		_ = lock.Unlock()
		return nil, err
	}

	a.wire(c, log, api, local.KV, capture.NewSystemDevice(c.CaptureDevice))
	return a, nil
}

// wire builds the services over the given collaborators.
func (a *App) wire(c *config.Config, log logging.Logger, api client.Client, repo kv.Repository, dev capture.Device) {
	a.config = c
	a.log = log
	a.api = api
	if a.reader == nil {
		a.reader = bufio.NewReader(os.Stdin)
	}
	if a.out == nil {
		a.out = os.Stdout
	}

	a.sessions = services.NewSessionStore(repo)
	a.auth = services.NewAuthService(api, a.sessions, repo, log)
	a.recordings = services.NewRecordingStore(repo, log)
	a.syncer = services.NewSyncService(a.recordings, client.NewUploader(api, nil), log)
	a.bookmarks = services.NewBookmarkLedger(api, a.recordings, log)
	a.capture = capture.NewSession(dev, c.CaptureDir(), log)
}

func (a *App) persistTokens(accessToken, refreshToken string) {
	ctx := context.Background()
	if err := a.auth.PersistTokens(ctx, accessToken, refreshToken); err != nil {
		a.log.Warn(ctx, "persist refreshed tokens", "error", err)
	}
}

func (a *App) Close() error {
	var errs []error
	if a.capture != nil {
		errs = append(errs, a.capture.Reset())
	}
	if a.api != nil {
		errs = append(errs, a.api.Close())
	}
	if a.local != nil {
		errs = append(errs, a.local.Close())
	}
	if a.lock != nil {
		errs = append(errs, a.lock.Unlock())
	}
	return errors.Join(errs...)
}

// Run loads local state, resumes the previous session and blocks in the
// REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.recordings.Load(ctx); err != nil {
		return err
	}

	sess, err := a.auth.Resume(ctx)
	if err != nil {
		a.log.Warn(ctx, "resume session", "error", err)
	}
	if sess != nil {
		a.refreshBookmarks(ctx)
		fmt.Fprintf(a.out, "Welcome back, %s\n", sess.User.Name)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "VoiceArchive CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) session() *models.Session {
	return a.sessions.Current()
}

func (a *App) isLoggedIn() bool {
	return a.session().Active()
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) status() string {
	s := ""
	if sess := a.session(); sess.Active() {
		s = sess.User.Email + " "
	}
	if m := a.currentMode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// checkOnline pings the server once and updates the connectivity mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := a.auth.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
