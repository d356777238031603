package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/voicearchive/internal/flagx"
	"github.com/dmitrijs2005/voicearchive/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept "15m" as well as integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3AccessKey                  string         `json:"s3_access_key"`
	S3SecretKey                  string         `json:"s3_secret_key"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	PresignValidityDuration      timex.Duration `json:"presign_validity_duration"`
	RedisURL                     string         `json:"redis_url"`
	StatsCacheTTL                timex.Duration `json:"stats_cache_ttl"`
	CORSOrigins                  []string       `json:"cors_origins"`
}

// parseJson overlays cfg with the fields present in the JSON file named by
// -c/-config. It panics on unreadable or malformed files.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	for _, s := range []struct {
		src string
		dst *string
	}{
		{jc.EndpointAddrGRPC, &cfg.EndpointAddrGRPC},
		{jc.EndpointAddrHTTP, &cfg.EndpointAddrHTTP},
		{jc.DatabaseDSN, &cfg.DatabaseDSN},
		{jc.SecretKey, &cfg.SecretKey},
		{jc.S3AccessKey, &cfg.S3AccessKey},
		{jc.S3SecretKey, &cfg.S3SecretKey},
		{jc.S3Bucket, &cfg.S3Bucket},
		{jc.S3Region, &cfg.S3Region},
		{jc.S3BaseEndpoint, &cfg.S3BaseEndpoint},
		{jc.RedisURL, &cfg.RedisURL},
	} {
		if s.src != "" {
			*s.dst = s.src
		}
	}

	if jc.AccessTokenValidityDuration.Duration > 0 {
		cfg.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	}
	if jc.RefreshTokenValidityDuration.Duration > 0 {
		cfg.RefreshTokenValidityDuration = jc.RefreshTokenValidityDuration.Duration
	}
	if jc.PresignValidityDuration.Duration > 0 {
		cfg.PresignValidityDuration = jc.PresignValidityDuration.Duration
	}
	if jc.StatsCacheTTL.Duration > 0 {
		cfg.StatsCacheTTL = jc.StatsCacheTTL.Duration
	}
	if len(jc.CORSOrigins) > 0 {
		cfg.CORSOrigins = jc.CORSOrigins
	}
}
