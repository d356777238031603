package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/recordings"
	"github.com/dmitrijs2005/voicearchive/internal/server/repositories/refreshtokens"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("sql expectations: %v", err)
		}
		_ = db.Close()
	})
	return db, mock
}

type fakeProfiles struct {
	byID      map[string]*models.Profile
	createErr error
	getErr    error
	seq       int
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{byID: map[string]*models.Profile{}}
}

func (f *fakeProfiles) Create(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == p.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.seq++
	cp := *p
	cp.ID = fmt.Sprintf("p%d", f.seq)
	cp.CreatedAt = time.Now()
	f.byID[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeProfiles) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*models.Profile, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProfiles) Update(_ context.Context, id, name, photoURL string) (*models.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.Name, p.PhotoURL = name, photoURL
	return p, nil
}

func (f *fakeProfiles) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRefresh struct {
	tokens         map[string]*models.RefreshToken
	createErr      error
	deleteErr      error
	expiredPruned  []string
	deleteExpiredN int64
}

func newFakeRefresh() *fakeRefresh {
	return &fakeRefresh{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefresh) Create(_ context.Context, userID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefresh) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRefresh) Delete(_ context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefresh) DeleteExpired(_ context.Context, userID string, _ time.Time) (int64, error) {
	f.expiredPruned = append(f.expiredPruned, userID)
	return f.deleteExpiredN, nil
}

type fakeRecordings struct {
	byID       map[string]*models.Recording
	upsertErr  map[string]error
	statsCalls int
	stats      *models.Stats
	lastFilter models.RecordingFilter
}

func newFakeRecordings() *fakeRecordings {
	return &fakeRecordings{byID: map[string]*models.Recording{}, upsertErr: map[string]error{}}
}

func (f *fakeRecordings) Upsert(_ context.Context, r *models.Recording) error {
	if err := f.upsertErr[r.ID]; err != nil {
		return err
	}
	if existing, ok := f.byID[r.ID]; ok && existing.UserID != r.UserID {
		return fmt.Errorf("recording %s: %w", r.ID, common.ErrorForbidden)
	}
	cp := *r
	cp.Translations = nil
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRecordings) ReplaceTranslations(_ context.Context, id string, t map[string]string) error {
	rec, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	rec.Translations = t
	return nil
}

func (f *fakeRecordings) Get(_ context.Context, id string) (*models.Recording, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRecordings) GetByIDs(_ context.Context, ids []string) ([]*models.Recording, error) {
	var out []*models.Recording
	for _, id := range ids {
		if r, ok := f.byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordings) List(_ context.Context, flt models.RecordingFilter) ([]*models.Recording, error) {
	f.lastFilter = flt
	out := make([]*models.Recording, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRecordings) Stats(context.Context) (*models.Stats, error) {
	f.statsCalls++
	if f.stats == nil {
		return &models.Stats{Total: len(f.byID)}, nil
	}
	return f.stats, nil
}

type fakeBookmarks struct {
	marks map[string][]string
}

func newFakeBookmarks() *fakeBookmarks {
	return &fakeBookmarks{marks: map[string][]string{}}
}

func (f *fakeBookmarks) List(_ context.Context, userID string) ([]string, error) {
	return append([]string{}, f.marks[userID]...), nil
}

func (f *fakeBookmarks) Exists(_ context.Context, userID, recordingID string) (bool, error) {
	for _, id := range f.marks[userID] {
		if id == recordingID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookmarks) Add(ctx context.Context, userID, recordingID string) error {
	if ok, _ := f.Exists(ctx, userID, recordingID); !ok {
		f.marks[userID] = append(f.marks[userID], recordingID)
	}
	return nil
}

func (f *fakeBookmarks) Remove(_ context.Context, userID, recordingID string) (bool, error) {
	ids := f.marks[userID]
	for i, id := range ids {
		if id == recordingID {
			f.marks[userID] = append(ids[:i], ids[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeRepoManager struct {
	profiles   *fakeProfiles
	refresh    *fakeRefresh
	recordings *fakeRecordings
	bookmarks  *fakeBookmarks
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		profiles:   newFakeProfiles(),
		refresh:    newFakeRefresh(),
		recordings: newFakeRecordings(),
		bookmarks:  newFakeBookmarks(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository { return m.profiles }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Recordings(dbx.DBTX) recordings.Repository { return m.recordings }
func (m *fakeRepoManager) Bookmarks(dbx.DBTX) bookmarks.Repository { return m.bookmarks }
