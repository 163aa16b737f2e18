package entities

// Target names one output locale file. Codes are opaque identifiers (e.g.
// "ja", "zh-CN") and are never validated against a locale registry.
type Target struct {
	Code string
}

// FileName returns the locale file name for the target, e.g. "ja.json".
func (t Target) FileName() string {
	return t.Code + ".json"
}

// TargetsFromCodes converts a list of language codes into Targets,
// preserving order and duplicates.
func TargetsFromCodes(codes []string) []Target {
	targets := make([]Target, 0, len(codes))
	for _, code := range codes {
		targets = append(targets, Target{Code: code})
	}
	return targets
}
