package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/recordings"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/refreshtokens"
)

// RepositoryManager hands out repositories bound to a DB handle or a
// transaction, so services can compose them inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Profiles(db dbx.DBTX) profiles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Recordings(db dbx.DBTX) recordings.Repository
	Bookmarks(db dbx.DBTX) bookmarks.Repository
}
