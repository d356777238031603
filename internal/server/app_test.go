package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/dmitrijs2005/voicearchive/internal/server/cache"
	"github.com/dmitrijs2005/voicearchive/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	err     error
	stopped chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	close(f.stopped)
	return nil
}

func TestNewApp_DBError(t *testing.T) {
	old := openDB
	t.Cleanup(func() { openDB = old })
	openDB = func(context.Context, string) (*sql.DB, error) { return nil, errors.New("refused") }

	cfg := &config.Config{}
	cfg.LoadDefaults()
	_, err := NewApp(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}

func TestRun_StopsOnCancel(t *testing.T) {
	a, b := &fakeRunner{stopped: make(chan struct{})}, &fakeRunner{stopped: make(chan struct{})}
	app := &App{logger: logging.NewNop(), runners: map[string]runner{"a": a, "b": b}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRun_FailureStopsOthers(t *testing.T) {
	other := &fakeRunner{stopped: make(chan struct{})}
	app := &App{logger: logging.NewNop(), runners: map[string]runner{
		"grpc": &fakeRunner{err: errors.New("listen failed")},
		"http": other,
	}}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grpc: listen failed")

	select {
	case <-other.stopped:
	default:
		t.Fatal("other server still running")
	}
}

func TestClose(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	app := &App{db: db, cache: cache.Nop{}}
	require.NoError(t, app.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}
