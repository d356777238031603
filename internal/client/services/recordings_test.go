package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestStore(t *testing.T) (*RecordingStore, *memKV) {
	t.Helper()
	repo := newMemKV()
	return NewRecordingStore(repo, logging.NewNop()), repo
}

func word(title string) models.RecordingData {
	return models.RecordingData{Title: title, ContentType: models.ContentTypeWord}
}

func TestRecordingStore_AddAssignsIdentity(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := []time.Time{base, base.Add(time.Second), base.Add(-time.Hour), base.Add(2 * time.Second)}
	i := 0
	s.now = func() time.Time { now := clock[i]; i++; return now }

	seen := map[string]bool{}
	var prev time.Time
	for n := 0; n < len(clock); n++ {
		rec, err := s.Add(ctx, word(fmt.Sprint("w", n)), "u1")
		require.NoError(t, err)

		assert.False(t, seen[rec.ID], "duplicate id")
		seen[rec.ID] = true
		assert.Equal(t, models.SyncStatusLocal, rec.SyncStatus)
		assert.Equal(t, "u1", rec.UserID)
		assert.False(t, rec.IsBookmarked)
		assert.False(t, rec.IsFollowed)
		assert.False(t, rec.Date.Before(prev), "date went backwards")
		prev = rec.Date
	}
}

func TestRecordingStore_AddRegeneratesCollidingID(t *testing.T) {
	s, _ := newTestStore(t)
	ids := []string{"same", "same", "other"}
	s.newID = func() string { id := ids[0]; ids = ids[1:]; return id }

	a, err := s.Add(context.Background(), word("a"), "u1")
	require.NoError(t, err)
	b, err := s.Add(context.Background(), word("b"), "u1")
	require.NoError(t, err)
	assert.Equal(t, "same", a.ID)
	assert.Equal(t, "other", b.ID)
}

func TestRecordingStore_AddRequiresOwner(t *testing.T) {
	s, repo := newTestStore(t)

	_, err := s.Add(context.Background(), word("x"), "")
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.Empty(t, s.List(context.Background()))
	assert.Zero(t, repo.setCount())
}

func TestRecordingStore_AddValidates(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add(context.Background(), models.RecordingData{ContentType: "podcast"}, "u1")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestRecordingStore_UpdateThenGet(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Add(ctx, models.RecordingData{
		Title: "Rain", ContentType: models.ContentTypeSong, Language: "Santali", Region: "Jharkhand",
	}, "u1")
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, rec.ID, models.RecordingPatch{Speaker: ptr("Dulari")}))

	got, ok := s.Get(ctx, rec.ID)
	require.True(t, ok)
	want := rec
	want.Speaker = "Dulari"
	assert.Equal(t, want, got)
}

func TestRecordingStore_UpdateNeverTouchesSyncStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Add(ctx, word("x"), "u1")
	require.NoError(t, err)
	_, err = s.MarkStatus(ctx, []string{rec.ID}, models.SyncStatusLocal, models.SyncStatusSynced)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, rec.ID, models.RecordingPatch{Title: ptr("y")}))
	got, _ := s.Get(ctx, rec.ID)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.Equal(t, "y", got.Title)
}

func TestRecordingStore_UpdateUnknownIsNoOp(t *testing.T) {
	s, repo := newTestStore(t)

	require.NoError(t, s.Update(context.Background(), "missing", models.RecordingPatch{Title: ptr("x")}))
	assert.Zero(t, repo.setCount())
}

func TestRecordingStore_UpdateRejectsUnknownTranslation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	rec, err := s.Add(ctx, word("x"), "u1")
	require.NoError(t, err)

	err = s.Update(ctx, rec.ID, models.RecordingPatch{Translations: map[models.TranslationLanguage]string{"de": "Wasser"}})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestRecordingStore_DeleteIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Add(ctx, word("x"), "u1")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, rec.ID))
	_, ok := s.Get(ctx, rec.ID)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, rec.ID))

	_, err = s.MustGet(ctx, rec.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRecordingStore_StatsFoldsLanguages(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, lang := range []string{"Hindi", "hindi ", "", ""} {
		d := word("x")
		d.Language = lang
		_, err := s.Add(ctx, d, "u1")
		require.NoError(t, err)
	}

	st := s.Stats(ctx)
	assert.Equal(t, 1, st.Languages)
	assert.Equal(t, 1, st.Contributors)
	assert.Equal(t, 4, st.Total)
}

func TestRecordingStore_EveryMutationPersists(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	a, err := s.Add(ctx, word("a"), "u1")
	require.NoError(t, err)
	b, err := s.Add(ctx, word("b"), "u1")
	require.NoError(t, err)
	require.NoError(t, s.Update(ctx, a.ID, models.RecordingPatch{Title: ptr("A")}))
	require.NoError(t, s.Delete(ctx, b.ID))
	assert.Equal(t, 4, repo.setCount())

	reloaded := NewRecordingStore(repo, logging.NewNop())
	require.NoError(t, reloaded.Load(ctx))

	recs := reloaded.List(ctx)
	require.Len(t, recs, 1)
	assert.Equal(t, "A", recs[0].Title)
	assert.Equal(t, a.ID, recs[0].ID)
}

func TestRecordingStore_FailedWriteRollsBack(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Add(ctx, word("a"), "u1")
	require.NoError(t, err)

	boom := errors.New("disk full")
	repo.failWrites(boom)

	_, err = s.Add(ctx, word("b"), "u1")
	require.ErrorIs(t, err, boom)
	err = s.Update(ctx, rec.ID, models.RecordingPatch{Title: ptr("changed")})
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Delete(ctx, rec.ID), boom)

	recs := s.List(ctx)
	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0].Title)
}

func TestRecordingStore_LoadEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.List(context.Background()))
}

func TestRecordingStore_LoadCorrupt(t *testing.T) {
	s, repo := newTestStore(t)
	repo.data[common.KeyRecordings] = []byte("{not json")
	require.Error(t, s.Load(context.Background()))
}

func TestRecordingStore_ReturnedRecordsAreCopies(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	d := word("x")
	d.Translations = map[models.TranslationLanguage]string{"en": "one"}
	rec, err := s.Add(ctx, d, "u1")
	require.NoError(t, err)

	rec.Translations["en"] = "mutated"
	d.Translations["en"] = "mutated too"

	got, _ := s.Get(ctx, rec.ID)
	assert.Equal(t, "one", got.Translations["en"])
}

func TestRecordingStore_ListAndThreads(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	add := func(d models.RecordingData) models.Recording {
		r, err := s.Add(ctx, d, "u1")
		require.NoError(t, err)
		return r
	}
	p2 := add(models.RecordingData{ContentType: models.ContentTypeStory, ThreadTitle: "Flood", PartNumber: "2", Tribe: "Ho"})
	p1 := add(models.RecordingData{ContentType: models.ContentTypeStory, ThreadTitle: "Flood", PartNumber: "1"})
	add(models.RecordingData{ContentType: models.ContentTypeSong, Tribe: "ho"})

	assert.Len(t, s.List(ctx, models.TribeFilter{Tribe: "HO"}), 2)
	assert.Len(t, s.List(ctx, models.ContentTypeFilter{ContentType: models.ContentTypeStory}), 2)

	threads := s.Threads(ctx)
	require.Len(t, threads, 1)
	require.Len(t, threads[0].Parts, 2)
	assert.Equal(t, p1.ID, threads[0].Parts[0].ID)
	assert.Equal(t, p2.ID, threads[0].Parts[1].ID)
}

func TestRecordingStore_SetBookmarked(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, _ := s.Add(ctx, word("a"), "u1")
	b, _ := s.Add(ctx, word("b"), "u1")
	require.NoError(t, s.Update(ctx, b.ID, models.RecordingPatch{IsBookmarked: ptr(true)}))

	require.NoError(t, s.SetBookmarked(ctx, []string{a.ID}))

	got, _ := s.Get(ctx, a.ID)
	assert.True(t, got.IsBookmarked)
	got, _ = s.Get(ctx, b.ID)
	assert.False(t, got.IsBookmarked)
}

func TestRecordingStore_LoadResetsInterruptedSync(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Add(ctx, word("a"), "u1")
	require.NoError(t, err)
	_, err = s.MarkStatus(ctx, nil, models.SyncStatusLocal, models.SyncStatusSyncing)
	require.NoError(t, err)

	reloaded := NewRecordingStore(repo, logging.NewNop())
	require.NoError(t, reloaded.Load(ctx))
	got, ok := reloaded.Get(ctx, rec.ID)
	require.True(t, ok)
	assert.Equal(t, models.SyncStatusLocal, got.SyncStatus)
}

func TestRecordingStore_ReleaseSyncingKeepsMemoryOnWriteFailure(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Add(ctx, word("a"), "u1")
	require.NoError(t, err)
	_, err = s.MarkStatus(ctx, nil, models.SyncStatusLocal, models.SyncStatusSyncing)
	require.NoError(t, err)

	repo.failWrites(errors.New("disk full"))
	n, err := s.ReleaseSyncing(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, n)

	got, _ := s.Get(ctx, rec.ID)
	assert.Equal(t, models.SyncStatusLocal, got.SyncStatus)
	assert.Len(t, s.Pending(ctx), 1)

	repo.failWrites(nil)
	n, err = s.ReleaseSyncing(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
