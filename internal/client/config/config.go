// Package config loads runtime settings for the healthchat CLI in three
// layers: built-in defaults, an optional JSON file (-c/-config), then
// command-line flags. Later layers take precedence.
package config

// Config holds runtime settings for the healthchat CLI.
//
// Fields:
//   - APIBaseURL: base URL of the health assistant API.
//   - DatabasePath: sqlite file holding the credential store.
//   - SecretPath: installation secret used to seal stored credentials.
//   - PlainStorage: store credentials unsealed (for environments without a
//     secure place for the secret file).
type Config struct {
	APIBaseURL   string
	DatabasePath string
	SecretPath   string
	PlainStorage bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabasePath = "healthchat.db"
	c.SecretPath = "healthchat.secret"
	c.PlainStorage = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
