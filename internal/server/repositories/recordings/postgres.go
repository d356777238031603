package recordings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/dbx"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, rec *models.Recording) error {
	query := `
		INSERT INTO recordings (id, user_id, title, content_type, audio_key, duration, recorded_at,
			language, speaker, tribe, region, transcription, thread_title, part_number, part_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content_type = EXCLUDED.content_type,
			audio_key = EXCLUDED.audio_key,
			duration = EXCLUDED.duration,
			language = EXCLUDED.language,
			speaker = EXCLUDED.speaker,
			tribe = EXCLUDED.tribe,
			region = EXCLUDED.region,
			transcription = EXCLUDED.transcription,
			thread_title = EXCLUDED.thread_title,
			part_number = EXCLUDED.part_number,
			part_description = EXCLUDED.part_description,
			updated_at = now()
		WHERE recordings.user_id = EXCLUDED.user_id
	`
	res, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.Title, rec.ContentType, rec.AudioKey, rec.Duration, rec.Date,
		rec.Language, rec.Speaker, rec.Tribe, rec.Region, rec.Transcription,
		rec.ThreadTitle, rec.PartNumber, rec.PartDescription)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("recording %s: %w", rec.ID, common.ErrorForbidden)
	}
	return nil
}

func (r *PostgresRepository) ReplaceTranslations(ctx context.Context, id string, t map[string]string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM translations WHERE recording_id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	langs := make([]string, 0, len(t))
	for l := range t {
		langs = append(langs, l)
	}
	slices.Sort(langs)

	for _, l := range langs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO translations (recording_id, language, text) VALUES ($1, $2, $3)`, id, l, t[l])
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

const selectRecording = `
	SELECT id, user_id, title, content_type, audio_key, duration, recorded_at, language, speaker,
		tribe, region, transcription, thread_title, part_number, part_description, updated_at
	FROM recordings`

func scanRecording(rows *sql.Rows) (*models.Recording, error) {
	rec := &models.Recording{}
	err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.ContentType, &rec.AudioKey, &rec.Duration,
		&rec.Date, &rec.Language, &rec.Speaker, &rec.Tribe, &rec.Region, &rec.Transcription,
		&rec.ThreadTitle, &rec.PartNumber, &rec.PartDescription, &rec.UpdatedAt)
	return rec, err
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Recording, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Recording
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := r.loadTranslations(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// placeholders returns "$from, $from+1, ..." for n arguments.
func placeholders(from, n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = "$" + strconv.Itoa(from+i)
	}
	return strings.Join(p, ", ")
}

func (r *PostgresRepository) loadTranslations(ctx context.Context, recs []*models.Recording) error {
	if len(recs) == 0 {
		return nil
	}

	byID := make(map[string]*models.Recording, len(recs))
	args := make([]any, len(recs))
	for i, rec := range recs {
		byID[rec.ID] = rec
		args[i] = rec.ID
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT recording_id, language, text FROM translations WHERE recording_id IN (`+placeholders(1, len(args))+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, lang, text string
		if err := rows.Scan(&id, &lang, &text); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if rec, ok := byID[id]; ok {
			if rec.Translations == nil {
				rec.Translations = make(map[string]string)
			}
			rec.Translations[lang] = text
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Recording, error) {
	recs, err := r.query(ctx, selectRecording+` WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, common.ErrorNotFound
	}
	return recs[0], nil
}

// GetByIDs returns the recordings that exist among ids, in no particular
// order.
func (r *PostgresRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Recording, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return r.query(ctx, selectRecording+` WHERE id IN (`+placeholders(1, len(ids))+`)`, args...)
}

// asciiSpace is the set trimmed by folded.
const asciiSpace = `E' \t\n\r\f\013'`

// folded normalizes a text expression for comparison: ASCII whitespace is
// trimmed from both ends and the rest is lowercased. Clients fold with full
// Unicode case folding and trim Unicode spaces, so the two can still differ
// on non-ASCII input (e.g. "ß" against "ss").
func folded(expr string) string {
	return "lower(btrim(" + expr + ", " + asciiSpace + "))"
}

// List returns the newest recordings matching f. Language and tribe match
// case-insensitively.
func (r *PostgresRepository) List(ctx context.Context, f models.RecordingFilter) ([]*models.Recording, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.ContentType != "" {
		add("content_type = $%d", f.ContentType)
	}
	if f.Language != "" {
		add(folded("language")+" = "+folded("$%d"), f.Language)
	}
	if f.Tribe != "" {
		add(folded("tribe")+" = "+folded("$%d"), f.Tribe)
	}
	if f.ThreadOnly {
		where = append(where, "btrim(thread_title, "+asciiSpace+") <> ''")
	}

	query := selectRecording
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY recorded_at DESC, id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return r.query(ctx, query, args...)
}

func (r *PostgresRepository) Stats(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT
			COUNT(DISTINCT ` + folded("language") + `) FILTER (WHERE ` + folded("language") + ` <> ''),
			COUNT(DISTINCT user_id),
			COUNT(DISTINCT ` + folded("region") + `) FILTER (WHERE ` + folded("region") + ` <> ''),
			COUNT(*)
		FROM recordings
	`
	s := &models.Stats{}
	if err := r.db.QueryRowContext(ctx, query).Scan(&s.Languages, &s.Contributors, &s.Regions, &s.Total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}
