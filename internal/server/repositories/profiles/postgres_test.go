package profiles

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var profileColumns = []string{"id", "name", "email", "photo_url", "password_hash", "created_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+profiles\s*\(name,\s*email,\s*photo_url,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at$`
	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("Ana", "ana@example.com", "", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("p-1", now))

	got, err := repo.Create(context.Background(), &models.Profile{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "p-1" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO profiles`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Profile{Email: "ana@example.com"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestGetByEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*email,\s*photo_url,\s*password_hash,\s*created_at\s+FROM\s+profiles\s+WHERE\s+email\s*=\s*\$1$`
	mock.ExpectQuery(q).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow("p-1", "Ana", "ana@example.com", "", "hash", time.Now()))

	got, err := repo.GetByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "p-1" || got.PasswordHash != "hash" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	mock.ExpectQuery(q).WithArgs("nobody@example.com").WillReturnError(sql.ErrNoRows)
	if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM profiles\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs("p-1").
		WillReturnError(errors.New("db down"))

	_, err := repo.GetByID(context.Background(), "p-1")
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want wrapped db error, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+profiles\s+SET\s+name\s*=\s*\$2,\s*photo_url\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+RETURNING`
	mock.ExpectQuery(q).
		WithArgs("p-1", "Ana B", "https://img/ana.png").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow("p-1", "Ana B", "ana@example.com", "https://img/ana.png", "hash", time.Now()))

	got, err := repo.Update(context.Background(), "p-1", "Ana B", "https://img/ana.png")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Ana B" || got.PhotoURL != "https://img/ana.png" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	mock.ExpectQuery(q).WithArgs("gone", "x", "").WillReturnError(sql.ErrNoRows)
	if _, err := repo.Update(context.Background(), "gone", "x", ""); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^DELETE\s+FROM\s+profiles\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("p-1").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), "p-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(q).WithArgs("p-1").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), "p-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
