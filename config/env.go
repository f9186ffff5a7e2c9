package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrMissingEnv is returned when a ${VAR:?message} reference names an unset
// variable.
var ErrMissingEnv = errors.New("config: missing environment variable")

// envRef matches ${VAR}, ${VAR:-default} and ${VAR:?message}. A bare $ is
// left alone so labels such as "$120" survive.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*|:\?[^}]*)?\}`)

// expandEnv replaces braced environment references in src. Unset variables
// without a modifier expand to the empty string.
func expandEnv(src string) (string, error) {
	var missing []string
	out := envRef.ReplaceAllStringFunc(src, func(match string) string {
		sub := envRef.FindStringSubmatch(match)
		name, mod := sub[1], sub[2]
		value, ok := os.LookupEnv(name)
		switch {
		case strings.HasPrefix(mod, ":-"):
			if !ok || value == "" {
				return mod[2:]
			}
		case strings.HasPrefix(mod, ":?"):
			if !ok || value == "" {
				missing = append(missing, name+": "+mod[2:])
				return match
			}
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return out, nil
}
