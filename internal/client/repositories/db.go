// Package repositories opens the client's local database and runs its
// migrations.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/voicearchive/internal/client/migrations"
	"github.com/dmitrijs2005/voicearchive/internal/client/repositories/kv"
	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/pressly/goose/v3"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Local bundles the client's repositories over one database handle.
type Local struct {
	DB *sql.DB
	KV kv.Repository
}

// OpenLocal opens the SQLite file at path, migrates it and wires the
// repositories.
func OpenLocal(ctx context.Context, path string) (*Local, error) {
	db, err := dbx.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Local{DB: db, KV: kv.NewSQLiteRepository(db)}, nil
}

func (l *Local) Close() error {
	return l.DB.Close()
}
