package asciiwire

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapLines breaks each line of content at word boundaries so it fits in
// limit columns, hard-wrapping words that are longer than the limit. reflow
// counts columns with go-runewidth, so its rows are split again under m.
func wrapLines(content string, limit int, m measure) []string {
	lines := strings.Split(content, "\n")
	if limit <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if m.width(line) <= limit {
			out = append(out, line)
			continue
		}
		wrapped := wrap.String(wordwrap.String(line, limit), limit)
		for _, part := range strings.Split(wrapped, "\n") {
			out = append(out, m.chunk(strings.TrimRight(part, " "), limit)...)
		}
	}
	return out
}

// singleLine joins the lines of s with single spaces.
func singleLine(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}
