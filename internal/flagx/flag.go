// Package flagx helps independent packages parse their own command-line
// flags without tripping over each other's: each caller filters os.Args
// down to the flags it owns before handing them to a flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args containing only the allowed flags
// and their values.
//
// Two forms are recognized:
//  1. flag and value as separate arguments: -c conf.json
//  2. flag and value joined with '=':       --config=conf.json
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// A following non-flag argument is this flag's value.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JSONConfigFlags extracts the config file path given via -c or -config.
// Other arguments are ignored, so packages with their own flags are not
// disturbed. Returns "" when neither flag is present.
func JSONConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
