// Package models holds the client-side domain types: recordings, their
// filters and thread ordering, and the signed-in user.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/common"
)

type ContentType string

const (
	ContentTypeWord  ContentType = "word"
	ContentTypeStory ContentType = "story"
	ContentTypeSong  ContentType = "song"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeWord, ContentTypeStory, ContentTypeSong:
		return true
	}
	return false
}

func ParseContentType(s string) (ContentType, error) {
	c := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: content type %q (want word, story or song)", common.ErrorValidation, s)
	}
	return c, nil
}

type SyncStatus string

const (
	SyncStatusLocal   SyncStatus = "local"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSynced  SyncStatus = "synced"
)

// TranslationLanguage is a target language a recording can be translated to.
type TranslationLanguage string

const (
	TranslationEnglish TranslationLanguage = "en"
	TranslationHindi   TranslationLanguage = "hi"
	TranslationBengali TranslationLanguage = "bn"
	TranslationOdia    TranslationLanguage = "or"
	TranslationTelugu  TranslationLanguage = "te"
	TranslationTamil   TranslationLanguage = "ta"
)

var TranslationLanguages = []TranslationLanguage{
	TranslationEnglish, TranslationHindi, TranslationBengali,
	TranslationOdia, TranslationTelugu, TranslationTamil,
}

func (l TranslationLanguage) Valid() bool {
	for _, v := range TranslationLanguages {
		if v == l {
			return true
		}
	}
	return false
}

type Recording struct {
	ID              string                         `json:"id"`
	Title           string                         `json:"title"`
	ContentType     ContentType                    `json:"contentType"`
	AudioURL        string                         `json:"audioUrl"`
	Duration        int                            `json:"duration"`
	Date            time.Time                      `json:"date"`
	Language        string                         `json:"language,omitempty"`
	Speaker         string                         `json:"speaker,omitempty"`
	Tribe           string                         `json:"tribe,omitempty"`
	Region          string                         `json:"region,omitempty"`
	Transcription   string                         `json:"transcription,omitempty"`
	Translations    map[TranslationLanguage]string `json:"translations,omitempty"`
	UserID          string                         `json:"userId"`
	SyncStatus      SyncStatus                     `json:"syncStatus"`
	ThreadTitle     string                         `json:"threadTitle,omitempty"`
	PartNumber      string                         `json:"partNumber,omitempty"`
	PartDescription string                         `json:"partDescription,omitempty"`
	IsBookmarked    bool                           `json:"isBookmarked"`
	IsFollowed      bool                           `json:"isFollowed"`
}

// Part returns the parsed part number. Anything that is not a non-negative
// integer counts as missing.
func (r Recording) Part() (int, bool) {
	s := strings.TrimSpace(r.PartNumber)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// InThread reports whether the recording belongs to a thread.
func (r Recording) InThread() bool {
	return strings.TrimSpace(r.ThreadTitle) != ""
}

// Clone returns a copy that shares no maps with r.
func (r Recording) Clone() Recording {
	if r.Translations != nil {
		t := make(map[TranslationLanguage]string, len(r.Translations))
		for k, v := range r.Translations {
			t[k] = v
		}
		r.Translations = t
	}
	return r
}

// RecordingData is what the caller supplies when adding a recording.
type RecordingData struct {
	Title           string
	ContentType     ContentType
	AudioURL        string
	Duration        int
	Language        string
	Speaker         string
	Tribe           string
	Region          string
	Transcription   string
	Translations    map[TranslationLanguage]string
	ThreadTitle     string
	PartNumber      string
	PartDescription string
}

func (d RecordingData) Validate() error {
	if !d.ContentType.Valid() {
		return fmt.Errorf("%w: content type %q", common.ErrorValidation, d.ContentType)
	}
	if d.Duration < 0 {
		return fmt.Errorf("%w: negative duration", common.ErrorValidation)
	}
	return validateTranslations(d.Translations)
}

// RecordingPatch is a partial update. Nil fields are left unchanged.
// Translations are merged per language; an empty text removes that
// language.
type RecordingPatch struct {
	Title           *string
	ContentType     *ContentType
	AudioURL        *string
	Duration        *int
	Language        *string
	Speaker         *string
	Tribe           *string
	Region          *string
	Transcription   *string
	Translations    map[TranslationLanguage]string
	ThreadTitle     *string
	PartNumber      *string
	PartDescription *string
	IsBookmarked    *bool
	IsFollowed      *bool
}

func (p RecordingPatch) Validate() error {
	if p.ContentType != nil && !p.ContentType.Valid() {
		return fmt.Errorf("%w: content type %q", common.ErrorValidation, *p.ContentType)
	}
	if p.Duration != nil && *p.Duration < 0 {
		return fmt.Errorf("%w: negative duration", common.ErrorValidation)
	}
	return validateTranslations(p.Translations)
}

func validateTranslations(t map[TranslationLanguage]string) error {
	for lang := range t {
		if !lang.Valid() {
			return fmt.Errorf("%w: unsupported translation language %q", common.ErrorValidation, lang)
		}
	}
	return nil
}

// Apply merges p into r. ID, UserID, Date and SyncStatus are never touched.
func (r *Recording) Apply(p RecordingPatch) {
	setIf(&r.Title, p.Title)
	setIf(&r.ContentType, p.ContentType)
	setIf(&r.AudioURL, p.AudioURL)
	setIf(&r.Duration, p.Duration)
	setIf(&r.Language, p.Language)
	setIf(&r.Speaker, p.Speaker)
	setIf(&r.Tribe, p.Tribe)
	setIf(&r.Region, p.Region)
	setIf(&r.Transcription, p.Transcription)
	setIf(&r.ThreadTitle, p.ThreadTitle)
	setIf(&r.PartNumber, p.PartNumber)
	setIf(&r.PartDescription, p.PartDescription)
	setIf(&r.IsBookmarked, p.IsBookmarked)
	setIf(&r.IsFollowed, p.IsFollowed)

	for lang, text := range p.Translations {
		if text == "" {
			delete(r.Translations, lang)
			continue
		}
		if r.Translations == nil {
			r.Translations = make(map[TranslationLanguage]string)
		}
		r.Translations[lang] = text
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
