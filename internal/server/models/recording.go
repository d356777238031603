package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Recording struct {
	ID              string
	UserID          string
	Title           string
	ContentType     string
	AudioKey        string
	Duration        int
	Date            time.Time
	Language        string
	Speaker         string
	Tribe           string
	Region          string
	Transcription   string
	Translations    map[string]string
	ThreadTitle     string
	PartNumber      string
	PartDescription string
	UpdatedAt       time.Time
}

// RecordingFilter narrows a recording listing. Empty fields do not filter.
type RecordingFilter struct {
	ContentType string
	Language    string
	Tribe       string
	ThreadOnly  bool
	Limit       int
}

// Stats summarises the archive.
type Stats struct {
	Languages    int `json:"languages"`
	Contributors int `json:"contributors"`
	Regions      int `json:"regions"`
	Total        int `json:"total"`
}

var contentTypes = map[string]bool{"word": true, "story": true, "song": true}

var translationLanguages = map[string]bool{"en": true, "hi": true, "bn": true, "or": true, "te": true, "ta": true}

// Validate checks the fields the database constraints would otherwise
// reject, so callers get a readable message.
func (r *Recording) Validate() error {
	switch {
	case strings.TrimSpace(r.ID) == "":
		return errors.New("recording id is required")
	case strings.TrimSpace(r.Title) == "":
		return fmt.Errorf("recording %s: title is required", r.ID)
	case !contentTypes[r.ContentType]:
		return fmt.Errorf("recording %s: unknown content type %q", r.ID, r.ContentType)
	case r.Duration < 0:
		return fmt.Errorf("recording %s: negative duration", r.ID)
	}
	for l := range r.Translations {
		if !translationLanguages[l] {
			return fmt.Errorf("recording %s: unsupported translation language %q", r.ID, l)
		}
	}
	return nil
}
