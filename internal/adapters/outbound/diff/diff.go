// Package diff renders unified diffs of patched files.
package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified implements domain.Differ with go-difflib.
type Unified struct {
	// Context is the number of unchanged lines shown around each hunk.
	Context int
}

func New() *Unified {
	return &Unified{Context: 3}
}

// Diff returns a unified diff of before and after labelled with name.
// Identical inputs produce an empty string.
func (u *Unified) Diff(name, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  u.Context,
	})
}
