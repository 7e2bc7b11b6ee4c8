// Package flagx lets several parsers share os.Args. Each parser picks out
// its own flags with FilterArgs and leaves the rest alone.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps the flags named in allowed, together with their values,
// and drops everything else. Names are given without dashes; -name and
// --name both match, as they do for package flag.
//
// A value is taken from "-name=value", or from the next argument when that
// argument does not start with "-". Filtering stops at a bare "--".
func FilterArgs(args []string, allowed ...string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, n := range allowed {
		names[n] = struct{}{}
	}

	filtered := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		name, hasValue, ok := flagName(arg)
		if !ok {
			continue
		}
		if _, keep := names[name]; !keep {
			continue
		}

		filtered = append(filtered, arg)
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// flagName returns the flag name in arg with its dashes removed, and
// whether arg carries an inline "=value".
func flagName(arg string) (name string, hasValue bool, ok bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		name = arg[2:]
	case strings.HasPrefix(arg, "-"):
		name = arg[1:]
	default:
		return "", false, false
	}

	if i := strings.IndexByte(name, '='); i >= 0 {
		name, hasValue = name[:i], true
	}
	return name, hasValue, name != ""
}

// ConfigFile returns the config file path given by -c or -config in args,
// or "" when neither is present. When both appear the last one wins. The
// file may be JSON or YAML; reading it is up to the caller.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, "c", "config"))

	return path
}
