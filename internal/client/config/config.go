package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DataDir             string
	CaptureDevice       string
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DataDir = defaultDataDir()
	c.CaptureDevice = "default"
	c.RequestTimeout = 15 * time.Second
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "voicearchive")
	}
	return ".voicearchive"
}

// DatabasePath is the SQLite file inside the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "archive.db")
}

// CaptureDir is where finished captures are written.
func (c *Config) CaptureDir() string {
	return filepath.Join(c.DataDir, "captures")
}

// LoadConfig applies defaults, then the JSON file, then flags from the
// process arguments.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
