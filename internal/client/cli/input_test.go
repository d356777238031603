package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\nignored\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetPassword(t *testing.T) {
	origTTY, origRead := stdinIsTerminal, readPassword
	t.Cleanup(func() { stdinIsTerminal, readPassword = origTTY, origRead })

	var out bytes.Buffer

	stdinIsTerminal = func() bool { return false }
	pw, err := GetPassword(rdr("piped secret\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "piped secret", string(pw))

	stdinIsTerminal = func() bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("typed"), nil }
	pw, err = GetPassword(rdr(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "typed", string(pw))

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetTranslations(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "Unix newlines, stop on empty line",
			input: "en=hello\nHI = namaste\n\n",
			want:  map[string]string{"en": "hello", "hi": "namaste"},
		},
		{
			name:  "Windows CRLF, empty text kept",
			input: "en=hello\r\nta=\r\n\r\n",
			want:  map[string]string{"en": "hello", "ta": ""},
		},
		{
			name:  "Immediate blank line gives empty map",
			input: "\n",
			want:  map[string]string{},
		},
		{
			name:    "Missing separator",
			input:   "hello\n\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetTranslations(rdr(tt.input), &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm(t *testing.T) {
	for in, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false} {
		var out bytes.Buffer
		got, err := Confirm(rdr(in), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
