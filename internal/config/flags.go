package config

import (
	"flag"
	"os"

	"moodlog/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   path to the sqlite database file
//	-e          encrypt persisted data (prompts for a passphrase)
//	-l string   log level (debug|info|warn|error)
//
// os.Args is filtered to just these flags so the JSON config flag and test
// runner flags don't interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path to the database file")
	fs.BoolVar(&cfg.Encrypt, "e", cfg.Encrypt, "encrypt persisted data")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
