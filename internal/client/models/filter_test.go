package models

import (
	"testing"

	"github.com/dmitrijs2005/voicearchive/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	r := Recording{ContentType: ContentTypeSong, Language: "Hindi ", Tribe: "Santal", ThreadTitle: "Harvest"}

	tests := []struct {
		name    string
		filters []Filter
		want    bool
	}{
		{"no filters", nil, true},
		{"content type", []Filter{ContentTypeFilter{ContentType: ContentTypeSong}}, true},
		{"other content type", []Filter{ContentTypeFilter{ContentType: ContentTypeWord}}, false},
		{"language folded", []Filter{LanguageFilter{Language: "hindi"}}, true},
		{"tribe folded", []Filter{TribeFilter{Tribe: " SANTAL"}}, true},
		{"tribe mismatch", []Filter{TribeFilter{Tribe: "Munda"}}, false},
		{"thread only", []Filter{ThreadOnlyFilter{}}, true},
		{"all of them", []Filter{ContentTypeFilter{ContentType: ContentTypeSong}, LanguageFilter{Language: "HINDI"}, ThreadOnlyFilter{}}, true},
		{"one fails", []Filter{ThreadOnlyFilter{}, LanguageFilter{Language: "Odia"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(r, tt.filters...))
		})
	}

	assert.False(t, Matches(Recording{ThreadTitle: "  "}, ThreadOnlyFilter{}))
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("type=song")
	require.NoError(t, err)
	assert.Equal(t, ContentTypeFilter{ContentType: ContentTypeSong}, f)

	f, err = ParseFilter("lang=Bengali")
	require.NoError(t, err)
	assert.Equal(t, LanguageFilter{Language: "Bengali"}, f)

	f, err = ParseFilter("tribe=Gond")
	require.NoError(t, err)
	assert.Equal(t, TribeFilter{Tribe: "Gond"}, f)

	f, err = ParseFilter("thread")
	require.NoError(t, err)
	assert.Equal(t, ThreadOnlyFilter{}, f)

	_, err = ParseFilter("type=poem")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = ParseFilter("color=red")
	require.ErrorIs(t, err, common.ErrorValidation)
}
