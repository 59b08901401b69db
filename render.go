package asciiwire

import (
	"regexp"
	"strings"
)

// RenderNodes renders a forest at the given column width. Each root's lines
// are joined with newlines, and the roots are joined the same way. The nodes
// are only read, so a forest may be rendered concurrently and repeatedly.
//
// Widths below 4 cannot hold a box border plus padding; the output is then
// degenerate but rendering still succeeds.
func RenderNodes(nodes []*Node, width int, opts ...RenderOption) string {
	cfg := newRenderConfig(opts)
	r := renderer{cfg: cfg, m: measure{cell: cfg.cell}}
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		parts = append(parts, strings.Join(r.node(node, width), "\n"))
	}
	return strings.Join(parts, "\n")
}

type renderer struct {
	cfg renderConfig
	m   measure
}

func (r renderer) node(n *Node, width int) []string {
	switch n.Type {
	case TypeLayout:
		return r.layout(n, width)
	case TypeComponent:
		return append(r.component(n, width), r.children(n.Children, width)...)
	case TypeBranch:
		return r.children(n.Children, width)
	default:
		return []string{r.m.slice(singleLine(n.Content), width)}
	}
}

func (r renderer) children(nodes []*Node, width int) []string {
	var lines []string
	for _, child := range nodes {
		lines = append(lines, r.node(child, width)...)
	}
	return lines
}

func (r renderer) layout(n *Node, width int) []string {
	switch n.LayoutKind() {
	case LayoutStack:
		return r.children(n.Children, width)
	case LayoutSplit:
		return r.split(n, width)
	default:
		return nil
	}
}

// split renders the left and right branches side by side with a one
// column divider. A missing branch leaves its pane blank.
func (r renderer) split(n *Node, width int) []string {
	panes := nonNegative(width - 1)
	leftWidth := int(float64(panes) * n.Ratio())
	rightWidth := panes - leftWidth

	var leftLines, rightLines []string
	if b := n.Branch("left"); b != nil {
		leftLines = r.children(b.Children, leftWidth)
	}
	if b := n.Branch("right"); b != nil {
		rightLines = r.children(b.Children, rightWidth)
	}

	rows := max(len(leftLines), len(rightLines))
	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(leftLines) {
			left = leftLines[i]
		}
		if i < len(rightLines) {
			right = rightLines[i]
		}
		out = append(out, r.m.fit(left, leftWidth)+"|"+r.m.fit(right, rightWidth))
	}
	return out
}

func (r renderer) component(n *Node, width int) []string {
	switch n.ComponentKind() {
	case ComponentHeader:
		return r.header(n, width)
	case ComponentTable:
		return r.table(n, width)
	case ComponentPanel:
		return r.box(n, width, '-')
	case ComponentNav:
		return r.nav(n, width)
	default:
		return r.box(n, width, '.')
	}
}

func (r renderer) header(n *Node, width int) []string {
	border := strings.Repeat("=", nonNegative(width))
	line := "| " + r.m.center(singleLine(n.Content), nonNegative(width-4)) + " |"
	return []string{border, line, border}
}

func (r renderer) nav(n *Node, width int) []string {
	blank := strings.Repeat(" ", nonNegative(width))
	line := "  " + r.m.center(singleLine(n.Content), nonNegative(width-4)) + "  "
	return []string{blank, line, blank}
}

// box draws content inside a +---+ frame filled with the given character.
func (r renderer) box(n *Node, width int, fill byte) []string {
	inner := nonNegative(width - 4)
	border := "+" + strings.Repeat(string(fill), nonNegative(width-2)) + "+"
	var lines []string
	if r.cfg.wrap {
		lines = wrapLines(n.Content, inner, r.m)
	} else {
		lines = strings.Split(n.Content, "\n")
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, border)
	for _, line := range lines {
		out = append(out, "| "+r.m.fit(line, inner)+" |")
	}
	return append(out, border)
}

var separatorCell = regexp.MustCompile(`^[ :-]+$`)

// table draws Markdown table rows as an ASCII grid. Content without table
// rows, or a grid wider than width, falls back to the default box.
func (r renderer) table(n *Node, width int) []string {
	rows := parseTableRows(n.Content)
	if len(rows) == 0 {
		return r.box(n, width, '.')
	}

	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	colWidths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], r.m.width(cell))
		}
	}

	var b strings.Builder
	b.WriteByte('+')
	for _, w := range colWidths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	sep := b.String()
	if r.m.width(sep) > width {
		return r.box(n, width, '.')
	}

	out := make([]string, 0, len(rows)+3)
	out = append(out, sep, r.tableRow(rows[0], colWidths), sep)
	for _, row := range rows[1:] {
		out = append(out, r.tableRow(row, colWidths))
	}
	return append(out, sep)
}

func (r renderer) tableRow(row []string, colWidths []int) string {
	cells := make([]string, len(colWidths))
	for i, w := range colWidths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = r.m.pad(cell, w)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// parseTableRows splits the lines of content that contain a pipe into
// trimmed cells. Empty edge cells from leading or trailing pipes are dropped,
// as are separator rows made only of dashes, colons and spaces.
func parseTableRows(content string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		raw := strings.Split(line, "|")
		cells := make([]string, 0, len(raw))
		for i, cell := range raw {
			cell = strings.TrimSpace(cell)
			if cell == "" && (i == 0 || i == len(raw)-1) {
				continue
			}
			cells = append(cells, cell)
		}
		if isSeparatorRow(cells) {
			continue
		}
		rows = append(rows, cells)
	}
	return rows
}

func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		if !separatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}
