package query

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// toNumber attempts to interpret a value as a number. Blank strings are never
// numeric so that empty attributes cannot accidentally equal zero.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		n = strings.TrimSpace(n)
		if n == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// textOf renders a value in its text form for string comparison.
func textOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// fold normalizes a string for case-insensitive matching using Unicode case
// folding.
func fold(s string) string {
	return cases.Fold().String(s)
}

// newCollator returns a locale-aware, case-insensitive collator. Collators
// carry internal buffers, so each request builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// compareValues orders two resolved attribute values: numerically when both
// sides parse as numbers, otherwise as locale-aware case-insensitive text.
func compareValues(c *collate.Collator, a, b any) int {
	na, aNum := toNumber(a)
	nb, bNum := toNumber(b)
	if aNum && bNum {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return c.CompareString(textOf(a), textOf(b))
}
