package extractor

import "regexp"

// knownModels is ordered: when several models appear in a page, the earlier
// entry wins. Never written after init.
var knownModels = []string{
	"Camry", "Corolla", "RAV4", "Highlander", "Prius", "Sienna", "Tacoma",
	"Tundra", "4Runner", "Sequoia", "Avalon", "Venza", "C-HR", "Yaris",
	"Supra", "GR86", "Mirai", "Prius Prime", "RAV4 Prime", "Highlander Hybrid",
}

type modelPattern struct {
	name string
	re   *regexp.Regexp
}

var modelPatterns = compileModelPatterns(knownModels)

func compileModelPatterns(names []string) []modelPattern {
	patterns := make([]modelPattern, len(names))
	for i, name := range names {
		patterns[i] = modelPattern{
			name: name,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
		}
	}
	return patterns
}

// KnownModels returns a copy of the recognized model names in priority order
func KnownModels() []string {
	out := make([]string, len(knownModels))
	copy(out, knownModels)
	return out
}

// IsKnownModel reports whether name is a recognized model or the unknown sentinel
func IsKnownModel(name string) bool {
	if name == UnknownModel {
		return true
	}
	for _, m := range knownModels {
		if m == name {
			return true
		}
	}
	return false
}
