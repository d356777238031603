package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()
	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "default", c.CaptureDevice)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.NotEmpty(t, c.DataDir)
	assert.Equal(t, filepath.Join(c.DataDir, "archive.db"), c.DatabasePath())
	assert.Equal(t, filepath.Join(c.DataDir, "captures"), c.CaptureDir())
}

func TestLoad_Precedence(t *testing.T) {
	path := writeJSON(t, `{
		"server_endpoint_addr": "json:1",
		"online_check_interval": "7s",
		"data_dir": "/json/data",
		"request_timeout": 2000000000
	}`)

	tests := []struct {
		name string
		args []string
		want func(c *Config)
	}{
		{
			name: "defaults only",
			args: nil,
			want: func(c *Config) {},
		},
		{
			name: "json overlays defaults",
			args: []string{"-c", path},
			want: func(c *Config) {
				c.ServerEndpointAddr = "json:1"
				c.OnlineCheckInterval = 7 * time.Second
				c.DataDir = "/json/data"
				c.RequestTimeout = 2 * time.Second
			},
		},
		{
			name: "flags beat json",
			args: []string{"-config", path, "-a", "flag:2", "-i", "10", "-device", "plughw:1,0"},
			want: func(c *Config) {
				c.ServerEndpointAddr = "flag:2"
				c.OnlineCheckInterval = 10 * time.Second
				c.DataDir = "/json/data"
				c.CaptureDevice = "plughw:1,0"
				c.RequestTimeout = 2 * time.Second
			},
		},
		{
			name: "unrelated flags ignored",
			args: []string{"-x", "1", "-d", "/flag/data", "-t", "30"},
			want: func(c *Config) {
				c.DataDir = "/flag/data"
				c.RequestTimeout = 30 * time.Second
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := defaults()
			tt.want(&want)
			got := load(tt.args)
			assert.Empty(t, cmp.Diff(want, *got))
		})
	}
}

func TestLoad_BadInputsPanic(t *testing.T) {
	require.Panics(t, func() { load([]string{"-i", "abc"}) })
	require.Panics(t, func() { load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}) })
	require.Panics(t, func() { load([]string{"-c", writeJSON(t, "{")}) })
}
