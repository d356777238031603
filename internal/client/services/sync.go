package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
)

// Pusher sends a batch of recordings to the remote store and reports the
// object keys their audio was uploaded under.
type Pusher interface {
	Push(ctx context.Context, recs []models.Recording) (map[string]string, error)
}

type SyncReport struct {
	Synced int
}

// SyncService promotes local recordings to the server. A batch either
// fully succeeds or is rolled back to local; there is no retry.
type SyncService struct {
	store    *RecordingStore
	pusher   Pusher
	log      logging.Logger
	inFlight atomic.Bool
}

func NewSyncService(store *RecordingStore, pusher Pusher, log logging.Logger) *SyncService {
	return &SyncService{store: store, pusher: pusher, log: log.With("module", "sync")}
}

// SyncAll pushes every local recording. It returns common.ErrNothingToSync
// when there is nothing to do and an error wrapping common.ErrSyncFailed
// when the push failed and the batch was rolled back.
func (s *SyncService) SyncAll(ctx context.Context, session *models.Session) (SyncReport, error) {
	if !session.Active() {
		return SyncReport{}, common.ErrUnauthenticated
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return SyncReport{}, common.ErrSyncInProgress
	}
	defer s.inFlight.Store(false)

	pending := s.store.Pending(ctx)
	if len(pending) == 0 {
		return SyncReport{}, common.ErrNothingToSync
	}

	ids := make([]string, len(pending))
	for i, r := range pending {
		ids[i] = r.ID
		pending[i].SyncStatus = models.SyncStatusSyncing
	}

	if _, err := s.store.MarkStatus(ctx, ids, models.SyncStatusLocal, models.SyncStatusSyncing); err != nil {
		return SyncReport{}, fmt.Errorf("%w: %w", common.ErrSyncFailed, err)
	}

	s.log.Info(ctx, "sync started", "count", len(ids), "user", session.User.ID)

	keys, err := s.pusher.Push(ctx, pending)
	if err == nil {
		err = s.complete(ctx, ids, keys)
	}
	if err != nil {
		s.rollback(ctx)
		s.log.Warn(ctx, "sync failed", "error", err)
		return SyncReport{}, fmt.Errorf("%w: %w", common.ErrSyncFailed, err)
	}

	s.log.Info(ctx, "sync finished", "synced", len(ids))
	return SyncReport{Synced: len(ids)}, nil
}

func (s *SyncService) complete(ctx context.Context, ids []string, keys map[string]string) error {
	if err := s.store.SetAudioKeys(ctx, keys); err != nil {
		return err
	}
	_, err := s.store.MarkStatus(ctx, ids, models.SyncStatusSyncing, models.SyncStatusSynced)
	return err
}

// rollback returns every syncing recording to local. A detached context
// is used so a cancelled caller cannot leave records stuck in syncing. When
// the write fails memory is still rolled back and Load repairs the file.
func (s *SyncService) rollback(ctx context.Context) {
	n, err := s.store.ReleaseSyncing(context.WithoutCancel(ctx))
	if err != nil {
		s.log.Error(ctx, "sync rollback not persisted", "count", n, "error", err)
		return
	}
	s.log.Debug(ctx, "sync rolled back", "count", n)
}
