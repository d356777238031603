package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/dmitrijs2005/voicearchive/internal/server/cache"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/voicearchive/internal/server/storage"
)

const statsCacheKey = "stats"

// maxPushBatch bounds a single PushRecordings call.
const maxPushBatch = 500

// newAudioKey is a seam for tests.
var newAudioKey = storage.NewAudioKey

type RecordingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	presigner   storage.Presigner
	cache       cache.Cache
	statsTTL    time.Duration
	log         logging.Logger
}

func NewRecordingService(db *sql.DB, m repomanager.RepositoryManager, p storage.Presigner,
	c cache.Cache, statsTTL time.Duration, log logging.Logger) *RecordingService {
	if c == nil {
		c = cache.Nop{}
	}
	return &RecordingService{
		db:          db,
		repomanager: m,
		presigner:   p,
		cache:       c,
		statsTTL:    statsTTL,
		log:         log.With("module", "recordings"),
	}
}

// PrepareAudioUpload reserves an object key for a recording's audio and
// returns it with a presigned PUT URL.
func (s *RecordingService) PrepareAudioUpload(ctx context.Context, userID, recordingID, contentType string) (string, string, error) {
	if recordingID == "" {
		return "", "", fmt.Errorf("%w: recording id is required", common.ErrorValidation)
	}
	key := newAudioKey(userID, contentType)
	url, err := s.presigner.PresignPut(ctx, key, contentType)
	if err != nil {
		s.log.Error(ctx, "presign upload", "recording", recordingID, "error", err)
		return "", "", common.ErrorInternal
	}
	return key, url, nil
}

// PushRecordings stores a batch of recordings owned by userID in one
// transaction: either every recording and its translations land, or
// nothing does. UserID on the input is overwritten with the caller.
// Updating a recording that belongs to someone else yields
// common.ErrorForbidden.
func (s *RecordingService) PushRecordings(ctx context.Context, userID string, recs []*models.Recording) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}
	if len(recs) > maxPushBatch {
		return 0, fmt.Errorf("%w: at most %d recordings per push", common.ErrorValidation, maxPushBatch)
	}
	for _, r := range recs {
		r.UserID = userID
		if err := r.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %s", common.ErrorValidation, err)
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Recordings(tx)
		for _, r := range recs {
			if err := repo.Upsert(ctx, r); err != nil {
				return err
			}
			if err := repo.ReplaceTranslations(ctx, r.ID, r.Translations); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorForbidden) {
			return 0, err
		}
		return 0, fmt.Errorf("error storing recordings: %w", err)
	}

	s.log.Info(ctx, "recordings pushed", "user", userID, "count", len(recs))
	return len(recs), nil
}

// GetRecordings returns the recordings that exist among ids. Unknown ids
// are skipped.
func (s *RecordingService) GetRecordings(ctx context.Context, ids []string) ([]*models.Recording, error) {
	return s.repomanager.Recordings(s.db).GetByIDs(ctx, ids)
}

func (s *RecordingService) List(ctx context.Context, f models.RecordingFilter) ([]*models.Recording, error) {
	return s.repomanager.Recordings(s.db).List(ctx, f)
}

// Stats returns archive counters, served from cache when fresh. Cache
// failures fall through to the database.
func (s *RecordingService) Stats(ctx context.Context) (*models.Stats, error) {
	if b, err := s.cache.Get(ctx, statsCacheKey); err == nil {
		var st models.Stats
		if err := json.Unmarshal(b, &st); err == nil {
			return &st, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn(ctx, "stats cache read", "error", err)
	}

	st, err := s.repomanager.Recordings(s.db).Stats(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(st); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey, b, s.statsTTL); err != nil {
			s.log.Warn(ctx, "stats cache write", "error", err)
		}
	}
	return st, nil
}

// AudioURL returns a presigned GET URL for the recording's audio.
func (s *RecordingService) AudioURL(ctx context.Context, recordingID string) (string, error) {
	rec, err := s.repomanager.Recordings(s.db).Get(ctx, recordingID)
	if err != nil {
		return "", err
	}
	if rec.AudioKey == "" {
		return "", fmt.Errorf("recording %s has no audio: %w", recordingID, common.ErrorNotFound)
	}
	url, err := s.presigner.PresignGet(ctx, rec.AudioKey)
	if err != nil {
		s.log.Error(ctx, "presign download", "recording", recordingID, "error", err)
		return "", common.ErrorInternal
	}
	return url, nil
}
