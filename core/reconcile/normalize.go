package reconcile

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// typographic maps characters the source feed emits to the ASCII the distribution feed carries.
var typographic = strings.NewReplacer(
	"\u2018", "'",
	"\u2019", "'",
	"\u201b", "'",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2014", "--",
	"\u2013", "-",
	"\u00a0", " ",
	"\u2026", "...",
	"\u2122", "(TM)",
	"\u00ad", "",
	"\u000b", "\n",
	// s-comma shows up where an apostrophe was mangled on export.
	"\u0219", "'",
)

// Normalize canonicalises free text so cosmetic encoding differences between feeds
// do not register as changes.
func Normalize(s string) string {
	return NFC(typographic.Replace(s))
}

// NFC applies canonical Unicode composition.
func NFC(s string) string {
	return norm.NFC.String(s)
}
