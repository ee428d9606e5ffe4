package corruption

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// flattener maps the typographic characters of a Windows-1252 reading to the
// ASCII an editor or smart-quote filter turns them into
var flattener = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u00a0", " ",
)

// Flatten returns s with curly double quotes and no-break spaces replaced by
// their ASCII counterparts
func Flatten(s string) string {
	return flattener.Replace(s)
}

// Variants returns the spellings s takes when its UTF-8 bytes are read as
// Windows-1252. Strings without undefined bytes have exactly one spelling;
// otherwise the result is the C1-control spelling, the U+FFFD spelling and
// the spelling with the undefined bytes dropped, in that order.
func Variants(s string) []string {
	var kept, replaced, dropped strings.Builder
	undefined := false

	for i := 0; i < len(s); i++ {
		b := s[i]
		r := charmap.Windows1252.DecodeByte(b)
		if r == utf8.RuneError {
			undefined = true
			kept.WriteRune(rune(b))
			replaced.WriteRune(utf8.RuneError)
			continue
		}
		kept.WriteRune(r)
		replaced.WriteRune(r)
		dropped.WriteRune(r)
	}

	if !undefined {
		return []string{kept.String()}
	}
	return []string{kept.String(), replaced.String(), dropped.String()}
}
