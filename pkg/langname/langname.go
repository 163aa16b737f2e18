package langname

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Name returns the English display name for a language code, e.g. "ja" ->
// "Japanese". Codes that do not parse as a language tag are returned as-is:
// target codes are opaque and never rejected.
func Name(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
