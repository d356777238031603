// Package config loads runtime configuration for the VoiceArchive CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags:
//
//	-a string      address:port of the archive server
//	-i int         online status check interval (seconds)
//	-d string      data directory (local database and captures)
//	-device string ALSA capture device
//	-t int         request timeout (seconds)
//
// JSON intervals use timex.Duration, so "3s" and integer nanoseconds both work:
//
//	{
//	  "server_endpoint_addr": "archive.example.org:50051",
//	  "online_check_interval": "5s",
//	  "data_dir": "/var/lib/voicearchive",
//	  "capture_device": "plughw:1,0",
//	  "request_timeout": "20s"
//	}
package config
