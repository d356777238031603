package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	query :=
		`INSERT INTO profiles (name, email, photo_url, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Email, p.PhotoURL, p.PasswordHash).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

const selectProfile = `SELECT id, name, email, photo_url, password_hash, created_at FROM profiles`

func (r *PostgresRepository) get(ctx context.Context, where string, arg any) (*models.Profile, error) {
	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, selectProfile+" WHERE "+where, arg).
		Scan(&p.ID, &p.Name, &p.Email, &p.PhotoURL, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return r.get(ctx, "email = $1", email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *PostgresRepository) Update(ctx context.Context, id, name, photoURL string) (*models.Profile, error) {
	query :=
		`UPDATE profiles SET name = $2, photo_url = $3
		 WHERE id = $1
		 RETURNING id, name, email, photo_url, password_hash, created_at`

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, id, name, photoURL).
		Scan(&p.ID, &p.Name, &p.Email, &p.PhotoURL, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Delete removes the profile. Refresh tokens and bookmarks go with it
// through foreign key cascades; recordings stay in the archive.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
