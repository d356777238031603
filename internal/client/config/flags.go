package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/voicearchive/internal/flagx"
)

// parseFlags overlays cfg with the CLI's own flags. Unknown flags are
// filtered out first so other loaders can share the argument list.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-d", "-device", "-t"})

	fs := flag.NewFlagSet("voicearchive", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the archive server")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.CaptureDevice, "device", cfg.CaptureDevice, "ALSA capture device")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
