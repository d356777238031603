package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/voicearchive/internal/client/models"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookmarkRow struct{ user, rec string }

type fakeBookmarks struct {
	rows       map[bookmarkRow]bool
	order      []string
	recordings map[string]models.Recording

	existsCalls, addCalls, removeCalls, listCalls int
	addErr                                        error
}

func newFakeBookmarks() *fakeBookmarks {
	return &fakeBookmarks{rows: map[bookmarkRow]bool{}, recordings: map[string]models.Recording{}}
}

func (f *fakeBookmarks) ListBookmarks(_ context.Context, userID string) ([]string, error) {
	f.listCalls++
	var out []string
	for _, id := range f.order {
		if f.rows[bookmarkRow{userID, id}] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeBookmarks) GetRecordings(_ context.Context, ids []string) ([]models.Recording, error) {
	var out []models.Recording
	for _, id := range ids {
		if r, ok := f.recordings[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBookmarks) BookmarkExists(_ context.Context, userID, recordingID string) (bool, error) {
	f.existsCalls++
	return f.rows[bookmarkRow{userID, recordingID}], nil
}

func (f *fakeBookmarks) AddBookmark(_ context.Context, userID, recordingID string) error {
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	f.rows[bookmarkRow{userID, recordingID}] = true
	f.order = append(f.order, recordingID)
	return nil
}

func (f *fakeBookmarks) RemoveBookmark(_ context.Context, userID, recordingID string) error {
	f.removeCalls++
	delete(f.rows, bookmarkRow{userID, recordingID})
	return nil
}

func TestBookmarkLedger_ToggleTwiceLeavesNoRows(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	rec, err := store.Add(ctx, word("a"), "u1")
	require.NoError(t, err)

	remote := newFakeBookmarks()
	l := NewBookmarkLedger(remote, store, logging.NewNop())

	change, err := l.Toggle(ctx, "u1", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, BookmarkAdded, change)
	got, _ := store.Get(ctx, rec.ID)
	assert.True(t, got.IsBookmarked)

	change, err = l.Toggle(ctx, "u1", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, BookmarkRemoved, change)
	got, _ = store.Get(ctx, rec.ID)
	assert.False(t, got.IsBookmarked)

	assert.Empty(t, remote.rows)
	assert.Equal(t, 2, remote.existsCalls)
	assert.Equal(t, 1, remote.addCalls)
	assert.Equal(t, 1, remote.removeCalls)
}

func TestBookmarkLedger_ToggleNeedsUser(t *testing.T) {
	store, _ := newTestStore(t)
	remote := newFakeBookmarks()
	l := NewBookmarkLedger(remote, store, logging.NewNop())

	_, err := l.Toggle(context.Background(), "", "r1")
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.Zero(t, remote.existsCalls)
}

func TestBookmarkLedger_ToggleRemoteFailure(t *testing.T) {
	store, _ := newTestStore(t)
	remote := newFakeBookmarks()
	remote.addErr = errors.New("unavailable")
	l := NewBookmarkLedger(remote, store, logging.NewNop())

	_, err := l.Toggle(context.Background(), "u1", "r1")
	require.ErrorIs(t, err, remote.addErr)
	assert.Equal(t, 1, remote.existsCalls)
	assert.Equal(t, 1, remote.addCalls)
}

func TestBookmarkLedger_ToggleUnknownLocalRecording(t *testing.T) {
	store, _ := newTestStore(t)
	remote := newFakeBookmarks()
	l := NewBookmarkLedger(remote, store, logging.NewNop())

	change, err := l.Toggle(context.Background(), "u1", "remote-only")
	require.NoError(t, err)
	assert.Equal(t, BookmarkAdded, change)
}

func TestBookmarkLedger_LoadDropsOrphans(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	local, err := store.Add(ctx, word("mine"), "u1")
	require.NoError(t, err)
	other, err := store.Add(ctx, word("other"), "u1")
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, other.ID, models.RecordingPatch{IsBookmarked: ptr(true)}))

	remote := newFakeBookmarks()
	remote.recordings["r-remote"] = models.Recording{ID: "r-remote", Title: "remote"}
	remote.recordings[local.ID] = models.Recording{ID: local.ID, Title: "mine"}
	for _, id := range []string{"r-remote", "deleted", local.ID} {
		remote.rows[bookmarkRow{"u1", id}] = true
		remote.order = append(remote.order, id)
	}
	remote.rows[bookmarkRow{"u2", "r-remote"}] = true

	l := NewBookmarkLedger(remote, store, logging.NewNop())
	recs, err := l.Load(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "r-remote", recs[0].ID)
	assert.Equal(t, local.ID, recs[1].ID)
	for _, r := range recs {
		assert.True(t, r.IsBookmarked)
	}

	got, _ := store.Get(ctx, local.ID)
	assert.True(t, got.IsBookmarked)
	got, _ = store.Get(ctx, other.ID)
	assert.False(t, got.IsBookmarked)
}

func TestBookmarkLedger_LoadEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	l := NewBookmarkLedger(newFakeBookmarks(), store, logging.NewNop())

	recs, err := l.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = l.Load(context.Background(), "")
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestBookmarkChange_String(t *testing.T) {
	assert.Equal(t, "added", BookmarkAdded.String())
	assert.Equal(t, "removed", BookmarkRemoved.String())
	assert.Equal(t, "unknown", BookmarkChange(0).String())
}
