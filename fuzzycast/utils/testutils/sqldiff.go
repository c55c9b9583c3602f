package testutils

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// AssertSQL compares generated SQL against the expected text and reports a
// character-level diff on mismatch.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	t.Errorf("SQL mismatch\nexpected: %s\nactual:   %s\ndiff:     %s",
		expected, actual, dmp.DiffPrettyText(diffs))
}
