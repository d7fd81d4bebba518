package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by parseEnv.
const (
	envServerURL           = "WOLFNOTES_SERVER_URL"
	envCacheDSN            = "WOLFNOTES_CACHE_DSN"
	envOnlineCheckInterval = "WOLFNOTES_ONLINE_CHECK_INTERVAL"
	envAssetVersion        = "WOLFNOTES_ASSET_VERSION"
	envLogFile             = "WOLFNOTES_LOG_FILE"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(envServerURL); ok {
		cfg.ServerURL = v
	}
	if v, ok := os.LookupEnv(envCacheDSN); ok {
		cfg.CacheDSN = v
	}
	if v, ok := os.LookupEnv(envOnlineCheckInterval); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v, ok := os.LookupEnv(envAssetVersion); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AssetVersion = n
		}
	}
	if v, ok := os.LookupEnv(envLogFile); ok {
		cfg.LogFile = v
	}
}
