// Package config holds runtime settings for the moodlog CLI, layered as
// defaults → JSON file → command-line flags, later sources winning.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: sqlite file backing the local store.
//   - Encrypt: seal persisted collections with a passphrase-derived key.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	DatabasePath string
	Encrypt      bool
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "moodlog.db"
	c.Encrypt = false
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a -c/-config file is given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
