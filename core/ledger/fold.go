package ledger

import "golang.org/x/text/cases"

// FoldName returns the key used for case-insensitive name comparison.
// A Caser is stateful, so a new one is built per call.
func FoldName(s string) string {
	return cases.Fold().String(s)
}
