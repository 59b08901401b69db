package asciiwire

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// CellWidthFunc reports how many terminal columns a rune occupies.
type CellWidthFunc func(r rune) int

// eastAsianWide lists the wide and full-width ranges counted as two columns.
var eastAsianWide = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x115f, Stride: 1}, // Hangul Jamo
		{Lo: 0x2329, Hi: 0x232a, Stride: 1}, // angle brackets
		{Lo: 0x2e80, Hi: 0x303e, Stride: 1}, // CJK radicals, symbols and punctuation
		{Lo: 0x3040, Hi: 0xa4cf, Stride: 1}, // kana, Han, Yi
		{Lo: 0xac00, Hi: 0xd7a3, Stride: 1}, // Hangul syllables
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1}, // CJK compatibility ideographs
		{Lo: 0xfe10, Hi: 0xfe19, Stride: 1}, // vertical forms
		{Lo: 0xfe30, Hi: 0xfe6f, Stride: 1}, // CJK compatibility forms
		{Lo: 0xff00, Hi: 0xff60, Stride: 1}, // full-width forms
		{Lo: 0xffe0, Hi: 0xffe6, Stride: 1}, // full-width signs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2fffd, Stride: 1},
		{Lo: 0x30000, Hi: 0x3fffd, Stride: 1},
	},
}

// EastAsianCellWidth counts wide and full-width East Asian runes as two
// columns and everything else as one. It is the default measure.
func EastAsianCellWidth(r rune) int {
	if unicode.Is(eastAsianWide, r) {
		return 2
	}
	return 1
}

// TerminalCellWidth measures runes the way most terminals do, including
// zero-width combining marks and wide emoji.
func TerminalCellWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// VisualWidth returns the column count of s under the default measure.
func VisualWidth(s string) int {
	return measure{cell: EastAsianCellWidth}.width(s)
}

type measure struct {
	cell CellWidthFunc
}

func (m measure) width(s string) int {
	w := 0
	for _, r := range s {
		w += m.cell(r)
	}
	return w
}

// slice returns the longest prefix of s that fits in limit columns. A wide
// rune that would straddle the limit is dropped.
func (m measure) slice(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	w := 0
	for i, r := range s {
		cw := m.cell(r)
		if w+cw > limit {
			return s[:i]
		}
		w += cw
	}
	return s
}

// pad appends spaces until s is target columns wide. Wider strings are
// returned unchanged.
func (m measure) pad(s string, target int) string {
	w := m.width(s)
	if w >= target {
		return s
	}
	return s + strings.Repeat(" ", target-w)
}

// fit slices then pads so the result is exactly target columns.
func (m measure) fit(s string, target int) string {
	return m.pad(m.slice(s, target), target)
}

// chunk splits s into pieces of at most limit columns. A rune wider than
// limit still gets a piece of its own so the loop always advances.
func (m measure) chunk(s string, limit int) []string {
	var out []string
	for m.width(s) > limit {
		head := m.slice(s, limit)
		if head == "" {
			_, size := utf8.DecodeRuneInString(s)
			head = s[:size]
		}
		out = append(out, head)
		s = s[len(head):]
	}
	if s != "" || len(out) == 0 {
		out = append(out, s)
	}
	return out
}

// center places s in target columns. The odd column, if any, goes right.
func (m measure) center(s string, target int) string {
	s = m.slice(s, target)
	free := nonNegative(target - m.width(s))
	left := free / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", free-left)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
