package config

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - UserAPIURL: base URL of the user/auth API.
//   - CompanyAPIURL: base URL of the company API.
//   - DatabaseDSN: path of the local sqlite database holding credentials.
//   - LogLevel: minimal slog level (debug, info, warn, error).
type Config struct {
	UserAPIURL    string
	CompanyAPIURL string
	DatabaseDSN   string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.UserAPIURL = "http://localhost:8000/api/v1/user"
	c.CompanyAPIURL = "http://localhost:8000/api/v1/company"
	c.DatabaseDSN = "portal.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
