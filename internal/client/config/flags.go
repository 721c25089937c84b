package config

import (
	"flag"
	"os"

	"healthchat/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the health assistant API
//	-d string   path to the local credential database
//	-s string   path to the installation secret file
//	-plain      store credentials without sealing
//
// os.Args is filtered down to these flags first (flagx.FilterArgs) so the
// set does not interfere with flags owned by other packages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-plain"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the health assistant API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local credential database")
	fs.StringVar(&cfg.SecretPath, "s", cfg.SecretPath, "path to the installation secret file")
	fs.BoolVar(&cfg.PlainStorage, "plain", cfg.PlainStorage, "store credentials without sealing")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
