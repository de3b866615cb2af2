package config

import (
	"encoding/json"
	"os"

	"moodlog/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so a sparse file only
// overrides what it mentions.
type JSONConfig struct {
	DatabasePath *string `json:"database_path"`
	Encrypt      *bool   `json:"encrypt"`
	LogLevel     *string `json:"log_level"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag means no JSON is loaded. Read or unmarshal errors panic; the
// process has nothing sensible to do with a broken config file.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.Encrypt != nil {
		cfg.Encrypt = *jc.Encrypt
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
