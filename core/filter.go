package core

import "strings"

// DefaultExclusions is the baseline always applied ahead of platform
// exclusions. Generated sources and the unit tests themselves never
// belong in a coverage report.
var DefaultExclusions = []string{"*AutoGen.c", "*UnitTest*"}

// BuildFileFilters renders the file filter expression consumed by the
// report generator: exclusions prefixed with "-", then inclusions prefixed
// with "+", joined by ";". List order is preserved and nothing is
// deduplicated; pattern syntax is the generator's concern.
func BuildFileFilters(exclusions, inclusions []string) string {
	tokens := make([]string, 0, len(exclusions)+len(inclusions))
	for _, pattern := range exclusions {
		tokens = append(tokens, "-"+pattern)
	}
	for _, pattern := range inclusions {
		tokens = append(tokens, "+"+pattern)
	}
	return strings.Join(tokens, ";")
}
