// Package config loads runtime configuration for the WolfNotes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file loaded first.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path to the local cache database
//	-i int      online status check interval (seconds)
//	-l string   log file path
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "cache_dsn": "wolfnotes.db",
//	  "online_check_interval": "3s",
//	  "asset_version": 3,
//	  "log_file": "wolfnotes.log"
//	}
package config
