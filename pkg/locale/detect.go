package locale

import (
	"os"
	"strings"
)

// Source yields locale candidates in priority order. Sources report raw
// codes; the Manager normalizes and filters them against the supported
// set.
type Source func() []string

// FromEnv reads the POSIX locale environment variables in their standard
// priority order: LANGUAGE (a colon-separated priority list), LC_ALL,
// LC_MESSAGES, LANG. Encoding suffixes and modifiers are stripped
// ("en_US.UTF-8@euro" yields "en_US"); the "C" and "POSIX" locales are
// skipped as they carry no language preference.
func FromEnv() Source {
	return func() []string {
		var candidates []string

		if list := os.Getenv("LANGUAGE"); list != "" {
			for entry := range strings.SplitSeq(list, ":") {
				if code := cleanEnvLocale(entry); code != "" {
					candidates = append(candidates, code)
				}
			}
		}

		for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
			if code := cleanEnvLocale(os.Getenv(name)); code != "" {
				candidates = append(candidates, code)
			}
		}

		return candidates
	}
}

// FromList returns a source yielding a fixed candidate list, for wiring
// application-level signals (a saved profile field, a CLI flag) into the
// detection chain.
func FromList(locales ...string) Source {
	return func() []string {
		return locales
	}
}

// cleanEnvLocale strips the encoding and modifier parts of a POSIX locale
// value and filters out the language-free C and POSIX locales.
func cleanEnvLocale(value string) string {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	switch strings.ToUpper(value) {
	case "", "C", "POSIX":
		return ""
	}
	return value
}
