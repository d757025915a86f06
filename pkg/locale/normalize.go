package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Normalize reduces a locale code to its lowercase primary-language
// subtag: "en-US", "en_US.UTF-8", and "EN" all normalize to "en". BCP 47
// parsing handles canonical forms and aliases; inputs it rejects fall back
// to a plain split so lookalike codes still normalize predictably. An
// empty input stays empty.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}

	if tag, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			return base.String()
		}
	}

	code = strings.ToLower(code)
	if i := strings.IndexAny(code, "-_.@"); i >= 0 {
		code = code[:i]
	}
	return code
}
