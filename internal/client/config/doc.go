// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the user/auth API
//	-b string   base URL of the company API
//	-d string   path of the local sqlite database
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "user_api_url": "http://localhost:8000/api/v1/user",
//	  "company_api_url": "http://localhost:8000/api/v1/company",
//	  "database_dsn": "portal.db",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — holds API base URLs, database DSN and log level
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
