package config

import "time"

// Config holds runtime settings for the WolfNotes CLI.
//
// Fields:
//   - ServerURL: base URL of the backend REST API.
//   - CacheDSN: path to the local SQLite cache file.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - AssetVersion: static asset cache generation served by the proxy.
//   - LogFile: path of the rotating log file ("" logs to stderr).
//
// Units: OnlineCheckInterval is a time.Duration (e.g., 3*time.Second).
type Config struct {
	ServerURL           string
	CacheDSN            string
	OnlineCheckInterval time.Duration
	AssetVersion        int
	LogFile             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.CacheDSN = "wolfnotes.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.AssetVersion = 3
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if present)
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
