package bulkupload

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// asciiFold decomposes accented characters and strips combining marks,
// so "Café Ops" slugifies the same as "Cafe Ops".
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify normalizes a raw team value the way the backend derives team
// slugs: lowercase, non-alphanumeric runs collapsed to single hyphens,
// leading and trailing hyphens stripped.
func Slugify(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	s = nonAlnumRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
