// Package recordings declares the repository contract for archived
// recordings and their translations.
package recordings

import (
	"context"

	"github.com/dmitrijs2005/voicearchive/internal/server/models"
)

type Repository interface {
	// Upsert inserts r or overwrites the row with the same id, but only if
	// that row belongs to r.UserID. Someone else's row yields
	// common.ErrorForbidden.
	Upsert(ctx context.Context, r *models.Recording) error
	// ReplaceTranslations makes the stored translations of id exactly t.
	ReplaceTranslations(ctx context.Context, id string, t map[string]string) error
	Get(ctx context.Context, id string) (*models.Recording, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Recording, error)
	List(ctx context.Context, f models.RecordingFilter) ([]*models.Recording, error)
	Stats(ctx context.Context) (*models.Stats, error)
}
