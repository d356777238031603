package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"golang.org/x/text/cases"
)

// Filter narrows a recording listing. The set of filters is closed; see the
// types below.
type Filter interface {
	isFilter()
}

type ContentTypeFilter struct{ ContentType ContentType }

type LanguageFilter struct{ Language string }

type TribeFilter struct{ Tribe string }

// ThreadOnlyFilter keeps recordings that belong to a thread.
type ThreadOnlyFilter struct{}

func (ContentTypeFilter) isFilter() {}
func (LanguageFilter) isFilter()    {}
func (TribeFilter) isFilter()       {}
func (ThreadOnlyFilter) isFilter()  {}

// Normalize trims and case-folds free text for comparisons.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Matches reports whether r passes every filter.
func Matches(r Recording, filters ...Filter) bool {
	for _, f := range filters {
		if !matches(r, f) {
			return false
		}
	}
	return true
}

func matches(r Recording, f Filter) bool {
	switch f := f.(type) {
	case ContentTypeFilter:
		return r.ContentType == f.ContentType
	case LanguageFilter:
		return Normalize(r.Language) == Normalize(f.Language)
	case TribeFilter:
		return Normalize(r.Tribe) == Normalize(f.Tribe)
	case ThreadOnlyFilter:
		return r.InThread()
	default:
		panic(fmt.Sprintf("models: unhandled filter %T", f))
	}
}

// ParseFilter understands "type=<word|story|song>", "language=<x>",
// "tribe=<x>" and "thread".
func ParseFilter(s string) (Filter, error) {
	key, value, _ := strings.Cut(strings.TrimSpace(s), "=")
	switch strings.ToLower(key) {
	case "type", "contenttype":
		ct, err := ParseContentType(value)
		if err != nil {
			return nil, err
		}
		return ContentTypeFilter{ContentType: ct}, nil
	case "language", "lang":
		return LanguageFilter{Language: value}, nil
	case "tribe":
		return TribeFilter{Tribe: value}, nil
	case "thread":
		return ThreadOnlyFilter{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown filter %q", common.ErrorValidation, s)
	}
}
