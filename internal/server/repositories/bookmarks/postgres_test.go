package bookmarks

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
		_ = db.Close()
	}
	return NewPostgresRepository(db), mock, cleanup
}

func TestList(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery(`^SELECT\s+recording_id\s+FROM\s+bookmarks\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at,\s*recording_id$`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"recording_id"}).AddRow("r2").AddRow("r1"))

	got, err := repo.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"r2", "r1"}) {
		t.Fatalf("got %v", got)
	}
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery(`FROM\s+bookmarks`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"recording_id"}))

	got, err := repo.List(context.Background(), "u1")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	q := `^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+bookmarks\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+recording_id\s*=\s*\$2\)$`
	mock.ExpectQuery(q).WithArgs("u1", "r1").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q).WithArgs("u1", "r2").WillReturnError(errors.New("down"))

	ok, err := repo.Exists(context.Background(), "u1", "r1")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
	if _, err := repo.Exists(context.Background(), "u1", "r2"); err == nil {
		t.Fatal("expected error")
	}
}

func TestAdd_IgnoresDuplicates(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	q := `^INSERT\s+INTO\s+bookmarks\s*\(user_id,\s*recording_id\)\s+VALUES\s*\(\$1,\s*\$2\)\s+ON\s+CONFLICT\s+DO\s+NOTHING$`
	mock.ExpectExec(q).WithArgs("u1", "r1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("u1", "r1").WillReturnResult(sqlmock.NewResult(0, 0))

	for i := 0; i < 2; i++ {
		if err := repo.Add(context.Background(), "u1", "r1"); err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
	}
}

func TestRemove(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	q := `^DELETE\s+FROM\s+bookmarks\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+recording_id\s*=\s*\$2$`
	mock.ExpectExec(q).WithArgs("u1", "r1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("u1", "r1").WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Remove(context.Background(), "u1", "r1")
	if err != nil || !removed {
		t.Fatalf("first Remove = %v, %v", removed, err)
	}
	removed, err = repo.Remove(context.Background(), "u1", "r1")
	if err != nil || removed {
		t.Fatalf("second Remove = %v, %v", removed, err)
	}
}
