package config

import (
	"encoding/json"
	"os"

	"github.com/jaykumar/jobportal-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing; absent keys leave the
// corresponding Config field at its previous value.
type JsonConfig struct {
	UserAPIURL    *string `json:"user_api_url"`
	CompanyAPIURL *string `json:"company_api_url"`
	DatabaseDSN   *string `json:"database_dsn"`
	LogLevel      *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies present fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UserAPIURL != nil {
		cfg.UserAPIURL = *jc.UserAPIURL
	}
	if jc.CompanyAPIURL != nil {
		cfg.CompanyAPIURL = *jc.CompanyAPIURL
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
