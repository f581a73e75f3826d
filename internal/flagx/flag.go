// Package flagx lets several components parse their own flags out of one
// shared argument list.
package flagx

import (
	"flag"
	"io"
	"slices"
	"strings"
)

// FilterArgs keeps the allowed flags of args together with their values and
// drops everything else. A flag may be written as "-f value" or "-f=value";
// a following token that starts with '-' is never taken as a value. Parsing
// stops at "--".
func FilterArgs(args []string, allowedFlags []string) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, inline := strings.Cut(arg, "=")
		if !slices.Contains(allowedFlags, name) {
			continue
		}
		filtered = append(filtered, arg)

		if !inline && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			filtered = append(filtered, args[i])
		}
	}

	return filtered
}

// ConfigPath returns the JSON config file named by -c or -config in args, or
// "" when neither is given. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
