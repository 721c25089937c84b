package config

import (
	"encoding/json"
	"os"

	"healthchat/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config afterwards; zero values leave the current
// setting alone so a sparse file overrides only what it mentions.
type jsonConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	DatabasePath string `json:"database_path"`
	SecretPath   string `json:"secret_path"`
	PlainStorage bool   `json:"plain_storage"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag means no JSON layer. Read or unmarshal errors
// panic; the caller decides whether to recover.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SecretPath != "" {
		cfg.SecretPath = jc.SecretPath
	}
	if jc.PlainStorage {
		cfg.PlainStorage = true
	}
}
