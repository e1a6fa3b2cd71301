package section

import "strings"

// foldAccents maps the accented letters found in Portuguese budget documents
// to their unaccented ASCII form. Each source rune appears exactly once, so the
// replacement order does not matter.
var foldAccents = strings.NewReplacer(
	"ã", "a", "á", "a", "â", "a",
	"ê", "e", "é", "e",
	"ô", "o", "ó", "o",
	"ç", "c",
	"í", "i",
	"ú", "u",
	"Ã", "A", "Á", "A", "Â", "A",
	"Ê", "E", "É", "E",
	"Ô", "O", "Ó", "O",
	"Ç", "C",
	"Í", "I",
	"Ú", "U",
)

// Normalize returns the comparison key for a line:
//   - folds the accented letters listed in foldAccents
//   - trims leading/trailing whitespace
//
// Case, punctuation and internal spacing are preserved. Letters outside the
// table (à, õ, ü, ...) pass through unchanged.
func Normalize(s string) string {
	return strings.TrimSpace(foldAccents.Replace(s))
}
