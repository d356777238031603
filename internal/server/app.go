// Package server wires the archive server together: database and
// migrations, object storage, the stats cache, the gRPC sync API and the
// HTTP browse API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/dmitrijs2005/voicearchive/internal/server/cache"
	"github.com/dmitrijs2005/voicearchive/internal/server/config"
	"github.com/dmitrijs2005/voicearchive/internal/server/httpapi"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/voicearchive/internal/server/services"
	"github.com/dmitrijs2005/voicearchive/internal/server/storage"

	gs "github.com/dmitrijs2005/voicearchive/internal/server/grpc"
)

// runner is a server that blocks until ctx is done or it fails.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	cache   cache.Cache
	runners map[string]runner
}

// Seams for tests.
var (
	openDB       = dbx.OpenPostgres
	newPresigner = func(ctx context.Context, o storage.S3Options) (storage.Presigner, error) {
		return storage.NewS3Presigner(ctx, o)
	}
	newRedisCache = func(ctx context.Context, url string) (cache.Cache, error) {
		return cache.NewRedisCache(ctx, url)
	}
)

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	presigner, err := newPresigner(ctx, storage.S3Options{
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Region:    c.S3Region,
		Endpoint:  c.S3BaseEndpoint,
		Bucket:    c.S3Bucket,
		Expires:   c.PresignValidityDuration,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("s3 init error: %w", err)
	}

	var statsCache cache.Cache = cache.Nop{}
	if c.RedisURL != "" {
		if statsCache, err = newRedisCache(ctx, c.RedisURL); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("redis init error: %w", err)
		}
	}

	us := services.NewUserService(db, rm, c, logger)
	rs := services.NewRecordingService(db, rm, presigner, statsCache, c.StatsCacheTTL, logger)
	bs := services.NewBookmarkService(db, rm)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		cache:  statsCache,
		runners: map[string]runner{
			"grpc": gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, rs, bs, c.SecretKey),
			"http": httpapi.NewServer(c.EndpointAddrHTTP, httpapi.NewRouter(rs, logger, c.CORSOrigins), logger),
		},
	}, nil
}

// Run starts every server and blocks until ctx is done. A server failing
// stops the others.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.logger.Info(ctx, "Starting app...")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for name, r := range app.runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Run(ctx); err != nil {
				app.logger.Error(ctx, "server failed", "server", name, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", name, err)
				}
				mu.Unlock()
				cancel()
			}
		}()
	}
	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return firstErr
}

func (app *App) Close() error {
	cerr := app.cache.Close()
	if err := app.db.Close(); err != nil {
		return err
	}
	return cerr
}
