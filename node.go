package asciiwire

import (
	"strings"
	"unicode"
)

// NodeType is the structural role of a node.
type NodeType uint8

const (
	// TypeText is a heading without a recognized prefix. Its content is the
	// heading text plus any body lines that follow it.
	TypeText NodeType = iota
	// TypeLayout arranges its children (stack, split).
	TypeLayout
	// TypeComponent is a renderable UI element (header, table, panel, nav, ...).
	TypeComponent
	// TypeBranch groups children for a layout (left, right, top, bottom).
	TypeBranch
)

func (t NodeType) String() string {
	switch t {
	case TypeLayout:
		return "layout"
	case TypeComponent:
		return "component"
	case TypeBranch:
		return "branch"
	default:
		return "text"
	}
}

// ParamValue is the params key holding the tokens that follow the kind word
// on a layout or component heading.
const ParamValue = "value"

// Node is a parsed wireframe heading. Trees returned by Build are never
// modified afterwards; renderers only read them.
type Node struct {
	Level    int
	Type     NodeType
	Kind     string
	Params   map[string]string
	Content  string
	Children []*Node
}

// Param returns the named parameter or "".
func (n *Node) Param(name string) string {
	if n == nil || n.Params == nil {
		return ""
	}
	return n.Params[name]
}

// LayoutKind selects the rendering of a layout node.
type LayoutKind uint8

const (
	// LayoutUnknown draws nothing.
	LayoutUnknown LayoutKind = iota
	// LayoutStack draws its children top to bottom.
	LayoutStack
	// LayoutSplit draws its left and right branches side by side.
	LayoutSplit
)

// ComponentKind selects the rendering of a component node.
type ComponentKind uint8

const (
	// ComponentOther renders as the default dotted box.
	ComponentOther ComponentKind = iota
	// ComponentHeader is a centered title between = rules.
	ComponentHeader
	// ComponentTable is a grid drawn from Markdown table rows.
	ComponentTable
	// ComponentPanel is a box with a dashed border.
	ComponentPanel
	// ComponentNav is a centered line between blank rows.
	ComponentNav
)

// LayoutKind maps Kind onto the known layouts.
func (n *Node) LayoutKind() LayoutKind {
	switch n.Kind {
	case "stack":
		return LayoutStack
	case "split":
		return LayoutSplit
	default:
		return LayoutUnknown
	}
}

// ComponentKind maps Kind onto the known components.
func (n *Node) ComponentKind() ComponentKind {
	switch n.Kind {
	case "header":
		return ComponentHeader
	case "table":
		return ComponentTable
	case "panel":
		return ComponentPanel
	case "nav":
		return ComponentNav
	default:
		return ComponentOther
	}
}

const defaultRatio = 0.5

// Ratio returns the left pane share of a split. A value of "L/R" with two
// integer parts yields L/(L+R); anything else yields 0.5.
func (n *Node) Ratio() float64 {
	value := n.Param(ParamValue)
	if !strings.Contains(value, "/") {
		return defaultRatio
	}
	parts := strings.Split(value, "/")
	left, okLeft := leadingInt(parts[0])
	right, okRight := leadingInt(parts[1])
	if !okLeft || !okRight {
		return defaultRatio
	}
	if left < 0 || right < 0 || left+right == 0 {
		return defaultRatio
	}
	return float64(left) / float64(left+right)
}

// Branch returns the first child branch of the given kind, or nil.
func (n *Node) Branch(kind string) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// leadingInt reads an optionally signed run of digits after leading
// whitespace and ignores whatever follows it, so "30px" reads as 30.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
		if n > 1<<30 {
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
