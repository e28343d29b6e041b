package core

import (
	"github.com/bmatcuk/doublestar/v4"
)

// CountMatches expands a coverage-file glob (with ** support) and returns
// how many files it currently matches. The glob is still handed to the
// report generator verbatim; zero matches here is advisory only.
func CountMatches(pattern string) (int, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}
