package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded into the environment before variables are read.
// Variables already set in the environment win over the file.
var envFile = ".env"

// parseEnv overlays cfg with VA_* environment variables. A missing .env
// file is fine; a malformed one or a bad duration panics.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		*dst = d
	}

	str("VA_GRPC_ADDR", &cfg.EndpointAddrGRPC)
	str("VA_HTTP_ADDR", &cfg.EndpointAddrHTTP)
	str("VA_DATABASE_DSN", &cfg.DatabaseDSN)
	str("VA_SECRET_KEY", &cfg.SecretKey)
	dur("VA_ACCESS_TOKEN_TTL", &cfg.AccessTokenValidityDuration)
	dur("VA_REFRESH_TOKEN_TTL", &cfg.RefreshTokenValidityDuration)
	str("VA_S3_ACCESS_KEY", &cfg.S3AccessKey)
	str("VA_S3_SECRET_KEY", &cfg.S3SecretKey)
	str("VA_S3_BUCKET", &cfg.S3Bucket)
	str("VA_S3_REGION", &cfg.S3Region)
	str("VA_S3_ENDPOINT", &cfg.S3BaseEndpoint)
	dur("VA_PRESIGN_TTL", &cfg.PresignValidityDuration)
	str("VA_REDIS_URL", &cfg.RedisURL)
	dur("VA_STATS_CACHE_TTL", &cfg.StatsCacheTTL)

	if v := os.Getenv("VA_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
}

// splitList splits a comma separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
