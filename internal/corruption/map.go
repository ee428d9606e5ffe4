// Package corruption holds the curated table of known mojibake sequences.
//
// Every corrupted form is the UTF-8 encoding of its correct character read
// back as Windows-1252. Bytes that Windows-1252 leaves undefined (0x81, 0x8D,
// 0x8F, 0x90, 0x9D) show up in three spellings depending on the decoder that
// produced the damage: kept as a C1 control, replaced by U+FFFD, or dropped.
// All three are listed, most specific first.
//
// Text that went through an editor or a smart-quote filter afterwards often
// carries the curly quotes U+201C/U+201D as ASCII '"' and the no-break space
// as a plain space. Those flattened spellings follow the exact ones.
package corruption

import "slices"

// Entry pairs a corrupted substring with the text that replaces it
type Entry struct {
	Name      string `json:"name" yaml:"name"`           // Unicode name of the correct character
	Corrupted string `json:"corrupted" yaml:"corrupted"` // Mojibake as found in damaged files
	Correct   string `json:"correct" yaml:"correct"`     // Intended character
}

// Map is an ordered list of entries. Entries are applied in order, so an
// entry whose corrupted form contains an earlier one's can never match.
type Map []Entry

// defaultMap is the authoritative table. The bare "ðŸ“" and "ðŸ\"" spellings
// of MEMO are prefixes of CALENDAR, BAR CHART, CHART WITH UPWARDS TREND and
// OPEN BOOK and have to stay after all of them.
var defaultMap = Map{
	// ✨ âœ¨
	{Name: "SPARKLES", Corrupted: "\u00e2\u0153\u00a8", Correct: "\u2728"},
	// 📅 ðŸ“…, ðŸ"…
	{Name: "CALENDAR", Corrupted: "\u00f0\u0178\u201c\u2026", Correct: "\U0001F4C5"},
	{Name: "CALENDAR", Corrupted: "\u00f0\u0178\"\u2026", Correct: "\U0001F4C5"},
	// ⏰ â<U+008F>°, â<U+FFFD>°, â°
	{Name: "ALARM CLOCK", Corrupted: "\u00e2\u008f\u00b0", Correct: "\u23F0"},
	{Name: "ALARM CLOCK", Corrupted: "\u00e2\ufffd\u00b0", Correct: "\u23F0"},
	{Name: "ALARM CLOCK", Corrupted: "\u00e2\u00b0", Correct: "\u23F0"},
	// 📊 ðŸ“Š, ðŸ"Š
	{Name: "BAR CHART", Corrupted: "\u00f0\u0178\u201c\u0160", Correct: "\U0001F4CA"},
	{Name: "BAR CHART", Corrupted: "\u00f0\u0178\"\u0160", Correct: "\U0001F4CA"},
	// 📈 ðŸ“ˆ, ðŸ"ˆ
	{Name: "CHART WITH UPWARDS TREND", Corrupted: "\u00f0\u0178\u201c\u02c6", Correct: "\U0001F4C8"},
	{Name: "CHART WITH UPWARDS TREND", Corrupted: "\u00f0\u0178\"\u02c6", Correct: "\U0001F4C8"},
	// 📖 ðŸ“–, ðŸ"–
	{Name: "OPEN BOOK", Corrupted: "\u00f0\u0178\u201c\u2013", Correct: "\U0001F4D6"},
	{Name: "OPEN BOOK", Corrupted: "\u00f0\u0178\"\u2013", Correct: "\U0001F4D6"},
	// 📝 ðŸ“<U+009D>, ðŸ“<U+FFFD>, ðŸ“, ðŸ"<U+009D>, ðŸ"<U+FFFD>, ðŸ"
	{Name: "MEMO", Corrupted: "\u00f0\u0178\u201c\u009d", Correct: "\U0001F4DD"},
	{Name: "MEMO", Corrupted: "\u00f0\u0178\u201c\ufffd", Correct: "\U0001F4DD"},
	{Name: "MEMO", Corrupted: "\u00f0\u0178\u201c", Correct: "\U0001F4DD"},
	{Name: "MEMO", Corrupted: "\u00f0\u0178\"\u009d", Correct: "\U0001F4DD"},
	{Name: "MEMO", Corrupted: "\u00f0\u0178\"\ufffd", Correct: "\U0001F4DD"},
	{Name: "MEMO", Corrupted: "\u00f0\u0178\"", Correct: "\U0001F4DD"},
	// 🏃 ðŸ<U+008F>ƒ, ðŸ<U+FFFD>ƒ, ðŸƒ
	{Name: "RUNNER", Corrupted: "\u00f0\u0178\u008f\u0192", Correct: "\U0001F3C3"},
	{Name: "RUNNER", Corrupted: "\u00f0\u0178\ufffd\u0192", Correct: "\U0001F3C3"},
	{Name: "RUNNER", Corrupted: "\u00f0\u0178\u0192", Correct: "\U0001F3C3"},
	// 😢 ðŸ˜¢
	{Name: "CRYING FACE", Corrupted: "\u00f0\u0178\u02dc\u00a2", Correct: "\U0001F622"},
	// ✔ âœ”, âœ"
	{Name: "HEAVY CHECK MARK", Corrupted: "\u00e2\u0153\u201d", Correct: "\u2714"},
	{Name: "HEAVY CHECK MARK", Corrupted: "\u00e2\u0153\"", Correct: "\u2714"},
	// ✕ âœ•
	{Name: "MULTIPLICATION X", Corrupted: "\u00e2\u0153\u2022", Correct: "\u2715"},
	// ⚠ âš<U+00A0>, âš<SPACE>
	{Name: "WARNING SIGN", Corrupted: "\u00e2\u0161\u00a0", Correct: "\u26A0"},
	{Name: "WARNING SIGN", Corrupted: "\u00e2\u0161 ", Correct: "\u26A0"},
	// ℹ â„¹
	{Name: "INFORMATION SOURCE", Corrupted: "\u00e2\u201e\u00b9", Correct: "\u2139"},
	// 🎉 ðŸŽ‰
	{Name: "PARTY POPPER", Corrupted: "\u00f0\u0178\u017d\u2030", Correct: "\U0001F389"},
}

// Default returns a copy of the curated table
func Default() Map {
	return slices.Clone(defaultMap)
}

// Corrupted returns the corrupted forms in declaration order
func (m Map) Corrupted() []string {
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Corrupted
	}
	return out
}
