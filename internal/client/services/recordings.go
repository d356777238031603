// Package services contains the client's application services: the
// recording store, the sync reconciler, the bookmark ledger and the
// account/session flow.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/client/repositories/kv"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/google/uuid"
)

// RecordingStore is the ordered, durable collection of the user's
// recordings. Every mutation writes the whole collection to the kv store
// before returning; if that write fails the mutation is rolled back.
type RecordingStore struct {
	mu       sync.Mutex
	kv       kv.Repository
	log      logging.Logger
	recs     []models.Recording
	lastDate time.Time

	now   func() time.Time
	newID func() string
}

func NewRecordingStore(repo kv.Repository, log logging.Logger) *RecordingStore {
	return &RecordingStore{
		kv:    repo,
		log:   log.With("module", "recordings"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load replaces the in-memory collection with the persisted one. A missing
// key is an empty collection. Recordings left in syncing are back to local.
func (s *RecordingStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, common.KeyRecordings)
	if errors.Is(err, common.ErrorNotFound) {
		s.recs = nil
		return nil
	}
	if err != nil {
		return err
	}

	var recs []models.Recording
	if err := json.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("decode recordings: %w", err)
	}
	for i := range recs {
		// A sync interrupted by a crash never completed.
		if recs[i].SyncStatus == models.SyncStatusSyncing {
			recs[i].SyncStatus = models.SyncStatusLocal
		}
		if recs[i].Date.After(s.lastDate) {
			s.lastDate = recs[i].Date
		}
	}
	s.recs = recs
	return nil
}

// mutate runs fn against the collection and persists the result. Must be
// called with mu held.
func (s *RecordingStore) mutate(ctx context.Context, fn func() bool) error {
	snapshot := cloneAll(s.recs)
	if !fn() {
		return nil
	}

	data, err := json.Marshal(s.recs)
	if err == nil {
		err = s.kv.Set(ctx, common.KeyRecordings, data)
	}
	if err != nil {
		s.recs = snapshot
		return fmt.Errorf("persist recordings: %w", err)
	}
	return nil
}

func cloneAll(recs []models.Recording) []models.Recording {
	if recs == nil {
		return nil
	}
	out := make([]models.Recording, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out
}

func (s *RecordingStore) indexOf(id string) int {
	for i := range s.recs {
		if s.recs[i].ID == id {
			return i
		}
	}
	return -1
}

// Add creates a local recording owned by ownerID.
func (s *RecordingStore) Add(ctx context.Context, data models.RecordingData, ownerID string) (models.Recording, error) {
	if ownerID == "" {
		return models.Recording{}, common.ErrUnauthenticated
	}
	if err := data.Validate(); err != nil {
		return models.Recording{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.now()
	if date.Before(s.lastDate) {
		date = s.lastDate
	}

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}

	rec := models.Recording{
		ID:              id,
		Title:           data.Title,
		ContentType:     data.ContentType,
		AudioURL:        data.AudioURL,
		Duration:        data.Duration,
		Date:            date,
		Language:        data.Language,
		Speaker:         data.Speaker,
		Tribe:           data.Tribe,
		Region:          data.Region,
		Transcription:   data.Transcription,
		Translations:    data.Translations,
		UserID:          ownerID,
		SyncStatus:      models.SyncStatusLocal,
		ThreadTitle:     data.ThreadTitle,
		PartNumber:      data.PartNumber,
		PartDescription: data.PartDescription,
	}
	rec = rec.Clone()

	err := s.mutate(ctx, func() bool {
		s.recs = append(s.recs, rec)
		return true
	})
	if err != nil {
		return models.Recording{}, err
	}
	s.lastDate = date

	s.log.Debug(ctx, "recording added", "id", rec.ID, "content_type", rec.ContentType)
	return rec.Clone(), nil
}

// Get returns the recording with the given id, if any.
func (s *RecordingStore) Get(_ context.Context, id string) (models.Recording, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.recs[i].Clone(), true
	}
	return models.Recording{}, false
}

// MustGet is Get for callers that asked for a specific record.
func (s *RecordingStore) MustGet(ctx context.Context, id string) (models.Recording, error) {
	rec, ok := s.Get(ctx, id)
	if !ok {
		return models.Recording{}, fmt.Errorf("recording %s: %w", id, common.ErrorNotFound)
	}
	return rec, nil
}

// Update merges patch into the recording. Unknown ids are ignored.
func (s *RecordingStore) Update(ctx context.Context, id string, patch models.RecordingPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() bool {
		i := s.indexOf(id)
		if i < 0 {
			return false
		}
		s.recs[i].Apply(patch)
		return true
	})
}

// Delete removes the recording. Unknown ids are ignored.
func (s *RecordingStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() bool {
		i := s.indexOf(id)
		if i < 0 {
			return false
		}
		s.recs = append(s.recs[:i], s.recs[i+1:]...)
		return true
	})
}

func (s *RecordingStore) Stats(_ context.Context) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.ComputeStats(s.recs)
}

// List returns the recordings matching all filters, in insertion order.
func (s *RecordingStore) List(_ context.Context, filters ...models.Filter) []models.Recording {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Recording
	for _, r := range s.recs {
		if models.Matches(r, filters...) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *RecordingStore) Threads(ctx context.Context) []models.Thread {
	return models.GroupThreads(s.List(ctx, models.ThreadOnlyFilter{}))
}

// Pending returns the recordings that still have to be synced.
func (s *RecordingStore) Pending(_ context.Context) []models.Recording {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Recording
	for _, r := range s.recs {
		if r.SyncStatus == models.SyncStatusLocal {
			out = append(out, r.Clone())
		}
	}
	return out
}

// MarkStatus moves recordings from one sync status to another. With nil
// ids every recording currently in from is moved. Recordings not in from
// are left alone. It returns how many recordings changed.
func (s *RecordingStore) MarkStatus(ctx context.Context, ids []string, from, to models.SyncStatus) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var wanted map[string]struct{}
	if ids != nil {
		wanted = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			wanted[id] = struct{}{}
		}
	}

	changed := 0
	err := s.mutate(ctx, func() bool {
		for i := range s.recs {
			if s.recs[i].SyncStatus != from {
				continue
			}
			if wanted != nil {
				if _, ok := wanted[s.recs[i].ID]; !ok {
					continue
				}
			}
			s.recs[i].SyncStatus = to
			changed++
		}
		return changed > 0
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// ReleaseSyncing moves every syncing recording back to local. Unlike
// MarkStatus the in-memory change is kept even when persisting fails, so the
// recordings stay eligible for the next sync.
func (s *RecordingStore) ReleaseSyncing(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.recs {
		if s.recs[i].SyncStatus == models.SyncStatusSyncing {
			s.recs[i].SyncStatus = models.SyncStatusLocal
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	data, err := json.Marshal(s.recs)
	if err == nil {
		err = s.kv.Set(ctx, common.KeyRecordings, data)
	}
	if err != nil {
		return changed, fmt.Errorf("persist recordings: %w", err)
	}
	return changed, nil
}

// SetAudioKeys points recordings at their uploaded audio.
func (s *RecordingStore) SetAudioKeys(ctx context.Context, keys map[string]string) error {
	if len(keys) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() bool {
		changed := false
		for i := range s.recs {
			if key, ok := keys[s.recs[i].ID]; ok && s.recs[i].AudioURL != key {
				s.recs[i].AudioURL = key
				changed = true
			}
		}
		return changed
	})
}

// SetBookmarked sets IsBookmarked on exactly the given recordings and
// clears it everywhere else.
func (s *RecordingStore) SetBookmarked(ctx context.Context, ids []string) error {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() bool {
		changed := false
		for i := range s.recs {
			_, want := set[s.recs[i].ID]
			if s.recs[i].IsBookmarked != want {
				s.recs[i].IsBookmarked = want
				changed = true
			}
		}
		return changed
	})
}
