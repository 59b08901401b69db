package asciiwire

import (
	"regexp"
	"strings"
)

var headingPattern = regexp.MustCompile(`^(#+)\s*(?:(layout|component|left|right|top|bottom):)?\s*(.*)$`)

// Build parses a wireframe document into a forest of nodes in document
// order. It never fails: unknown headings become text nodes and body lines
// before the first heading are dropped.
func Build(text string) []*Node {
	var roots []*Node
	// open holds the ancestors of the next line, innermost last.
	var open []*Node
	var bodies []*strings.Builder

	for _, line := range splitLines(text) {
		node, seed, ok := parseHeading(line)
		if !ok {
			if len(open) == 0 {
				continue
			}
			body := bodies[len(bodies)-1]
			if body.Len() > 0 {
				body.WriteByte('\n')
			}
			body.WriteString(line)
			continue
		}

		for len(open) > 0 && open[len(open)-1].Level >= node.Level {
			closeNode(open[len(open)-1], bodies[len(bodies)-1])
			open = open[:len(open)-1]
			bodies = bodies[:len(bodies)-1]
		}
		if len(open) == 0 {
			roots = append(roots, node)
		} else {
			parent := open[len(open)-1]
			parent.Children = append(parent.Children, node)
		}
		body := &strings.Builder{}
		body.WriteString(seed)
		open = append(open, node)
		bodies = append(bodies, body)
	}
	for i := len(open) - 1; i >= 0; i-- {
		closeNode(open[i], bodies[i])
	}
	return roots
}

// closeNode stores the accumulated body once no further lines can reach it.
func closeNode(n *Node, body *strings.Builder) {
	n.Content = strings.TrimSpace(body.String())
}

// parseHeading returns the node for a heading line and the text that seeds
// its content.
func parseHeading(line string) (*Node, string, bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, "", false
	}
	prefix := m[2]
	value := strings.TrimSpace(m[3])
	node := &Node{Level: len(m[1])}
	switch prefix {
	case "layout", "component":
		node.Type = TypeLayout
		if prefix == "component" {
			node.Type = TypeComponent
		}
		fields := strings.Fields(value)
		if len(fields) > 0 {
			node.Kind = fields[0]
		}
		if len(fields) > 1 {
			node.Params = map[string]string{ParamValue: strings.Join(fields[1:], " ")}
		}
	case "left", "right", "top", "bottom":
		node.Type = TypeBranch
		node.Kind = prefix
	default:
		node.Type = TypeText
		node.Kind = value
		return node, value, true
	}
	return node, "", true
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
