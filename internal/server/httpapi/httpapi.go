// Package httpapi serves the read-only browse API used by the archive's web
// listeners: health, archive statistics, recording listings and audio
// redirects.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/dmitrijs2005/voicearchive/internal/logging"
	"github.com/dmitrijs2005/voicearchive/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

type recordingService interface {
	List(ctx context.Context, f models.RecordingFilter) ([]*models.Recording, error)
	Stats(ctx context.Context) (*models.Stats, error)
	AudioURL(ctx context.Context, recordingID string) (string, error)
}

type Handler struct {
	recordings recordingService
	logger     logging.Logger
}

// NewRouter wires the browse API routes behind CORS for the given origins.
func NewRouter(rs recordingService, l logging.Logger, allowedOrigins []string) http.Handler {
	h := &Handler{recordings: rs, logger: l.With("module", "http_api")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", h.stats)
		r.Get("/recordings", h.listRecordings)
		r.Get("/recordings/{id}/audio", h.audio)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.recordings.Stats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// parseFilter reads contentType, language, tribe, thread and limit from
// the query string.
func parseFilter(r *http.Request) (models.RecordingFilter, error) {
	q := r.URL.Query()
	f := models.RecordingFilter{
		ContentType: strings.ToLower(strings.TrimSpace(q.Get("contentType"))),
		Language:    strings.TrimSpace(q.Get("language")),
		Tribe:       strings.TrimSpace(q.Get("tribe")),
		Limit:       defaultLimit,
	}
	switch f.ContentType {
	case "", "word", "story", "song":
	default:
		return f, errors.New("contentType must be word, story or song")
	}
	if v := q.Get("thread"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, errors.New("thread must be a boolean")
		}
		f.ThreadOnly = b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return f, errors.New("limit must be a positive integer")
		}
		f.Limit = min(n, maxLimit)
	}
	return f, nil
}

func (h *Handler) listRecordings(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	recs, err := h.recordings.List(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]recordingJSON, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toJSON(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) audio(w http.ResponseWriter, r *http.Request) {
	url, err := h.recordings.AudioURL(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// recordingJSON is the browse view of a recording. The owner id is not
// exposed.
type recordingJSON struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	ContentType     string            `json:"contentType"`
	AudioKey        string            `json:"audioKey"`
	Duration        int               `json:"duration"`
	Date            time.Time         `json:"date"`
	Language        string            `json:"language,omitempty"`
	Speaker         string            `json:"speaker,omitempty"`
	Tribe           string            `json:"tribe,omitempty"`
	Region          string            `json:"region,omitempty"`
	Transcription   string            `json:"transcription,omitempty"`
	Translations    map[string]string `json:"translations,omitempty"`
	ThreadTitle     string            `json:"threadTitle,omitempty"`
	PartNumber      string            `json:"partNumber,omitempty"`
	PartDescription string            `json:"partDescription,omitempty"`
}

func toJSON(r *models.Recording) recordingJSON {
	return recordingJSON{
		ID:              r.ID,
		Title:           r.Title,
		ContentType:     r.ContentType,
		AudioKey:        r.AudioKey,
		Duration:        r.Duration,
		Date:            r.Date,
		Language:        r.Language,
		Speaker:         r.Speaker,
		Tribe:           r.Tribe,
		Region:          r.Region,
		Transcription:   r.Transcription,
		Translations:    r.Translations,
		ThreadTitle:     r.ThreadTitle,
		PartNumber:      r.PartNumber,
		PartDescription: r.PartDescription,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}
	h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
