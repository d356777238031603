// Package profiles declares the repository contract for user profiles.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/voicearchive/internal/server/models"
)

type Repository interface {
	// Create inserts p and fills in its ID and CreatedAt. A taken email
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, id, name, photoURL string) (*models.Profile, error)
	Delete(ctx context.Context, id string) error
}
