package asciiwire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWithoutHeadingsIsEmpty(t *testing.T) {
	for _, src := range []string{"", "\n\n", "plain text\nmore text", "| a | b |\n|---|---|"} {
		require.Empty(t, Build(src), "input %q", src)
	}
}

func TestBuildStackWithComponent(t *testing.T) {
	nodes := Build("\n# layout: stack\n### component: header\nHello\n")
	require.Len(t, nodes, 1)
	stack := nodes[0]
	require.Equal(t, TypeLayout, stack.Type)
	require.Equal(t, "stack", stack.Kind)
	require.Empty(t, stack.Content)
	require.Len(t, stack.Children, 1)

	header := stack.Children[0]
	require.Equal(t, TypeComponent, header.Type)
	require.Equal(t, "header", header.Kind)
	require.Equal(t, "Hello", header.Content)
	require.Equal(t, 3, header.Level)
	require.Nil(t, header.Params)
}

func TestBuildSplitBranchesKeepDocumentOrder(t *testing.T) {
	src := strings.Join([]string{
		"# layout: split",
		"## left:",
		"### component: a",
		"## right:",
		"### component: b",
	}, "\n")
	nodes := Build(src)
	require.Len(t, nodes, 1)
	split := nodes[0]
	require.Equal(t, "split", split.Kind)
	require.Len(t, split.Children, 2)
	require.Equal(t, "left", split.Children[0].Kind)
	require.Equal(t, "right", split.Children[1].Kind)
	require.Equal(t, TypeBranch, split.Children[0].Type)
	require.Equal(t, "a", split.Children[0].Children[0].Kind)
	require.Equal(t, "b", split.Children[1].Children[0].Kind)

	reversed := Build("# layout: split\n## right:\n## left:\n")
	require.Equal(t, "right", reversed[0].Children[0].Kind)
	require.Equal(t, "left", reversed[0].Children[1].Kind)
}

func TestBuildParams(t *testing.T) {
	nodes := Build("# layout: split 30/70\n# component: table wide  striped\n# layout: split\n")
	require.Len(t, nodes, 3)
	require.Equal(t, "split", nodes[0].Kind)
	require.Equal(t, map[string]string{ParamValue: "30/70"}, nodes[0].Params)
	require.Equal(t, "table", nodes[1].Kind)
	require.Equal(t, "wide striped", nodes[1].Param(ParamValue))
	require.Nil(t, nodes[2].Params)
	require.Equal(t, "", nodes[2].Param(ParamValue))
}

func TestBuildBranchPrefixes(t *testing.T) {
	nodes := Build("# layout: stack\n## top:\n## bottom: ignored words\n")
	require.Len(t, nodes[0].Children, 2)
	for i, kind := range []string{"top", "bottom"} {
		child := nodes[0].Children[i]
		require.Equal(t, TypeBranch, child.Type)
		require.Equal(t, kind, child.Kind)
		require.Empty(t, child.Content)
	}
}

func TestBuildTextHeadings(t *testing.T) {
	nodes := Build("# Just a title\nbody line\n## layout stack\n### widget: clock\n")
	require.Len(t, nodes, 1)
	title := nodes[0]
	require.Equal(t, TypeText, title.Type)
	require.Equal(t, "Just a title", title.Kind)
	require.Equal(t, "Just a title\nbody line", title.Content)

	require.Len(t, title.Children, 1)
	noColon := title.Children[0]
	require.Equal(t, TypeText, noColon.Type)
	require.Equal(t, "layout stack", noColon.Kind)
	require.Equal(t, "layout stack", noColon.Content)

	unknown := noColon.Children[0]
	require.Equal(t, TypeText, unknown.Type)
	require.Equal(t, "widget: clock", unknown.Content)
}

func TestBuildDropsLinesBeforeFirstHeading(t *testing.T) {
	nodes := Build("preamble\nmore\n# component: panel\nbody\n")
	require.Len(t, nodes, 1)
	require.Equal(t, "body", nodes[0].Content)
}

func TestBuildSiblingsAndShallowerHeadings(t *testing.T) {
	src := strings.Join([]string{
		"# layout: stack",
		"### component: header",
		"Top",
		"## component: panel",
		"Middle",
		"# component: nav",
		"Bottom",
	}, "\n")
	nodes := Build(src)
	require.Len(t, nodes, 2)
	require.Len(t, nodes[0].Children, 2)
	require.Equal(t, "header", nodes[0].Children[0].Kind)
	require.Equal(t, "panel", nodes[0].Children[1].Kind)
	require.Equal(t, "Middle", nodes[0].Children[1].Content)
	require.Equal(t, "nav", nodes[1].Kind)
	require.Equal(t, "Bottom", nodes[1].Content)
}

func TestBuildChildrenAreDeeperThanParent(t *testing.T) {
	src := "# layout: stack\n### component: a\n## component: b\n#### component: c\n## component: d\n"
	var walk func(parent *Node)
	walk = func(parent *Node) {
		for _, child := range parent.Children {
			require.Greater(t, child.Level, parent.Level)
			walk(child)
		}
	}
	for _, root := range Build(src) {
		walk(root)
	}
}

func TestBuildTrimsContentAndKeepsInnerBlankLines(t *testing.T) {
	nodes := Build("# component: panel\n\n   \n  first\n\nsecond  \n\n")
	require.Equal(t, "first\n\nsecond", nodes[0].Content)
}

func TestBuildHandlesCRLF(t *testing.T) {
	nodes := Build("# layout: stack\r\n## component: panel\r\nline one\r\nline two\r\n")
	require.Equal(t, "stack", nodes[0].Kind)
	panel := nodes[0].Children[0]
	require.Equal(t, "panel", panel.Kind)
	require.Equal(t, "line one\nline two", panel.Content)
}

func TestBuildDeepNesting(t *testing.T) {
	const depth = 1000
	var b strings.Builder
	for i := 1; i <= depth; i++ {
		b.WriteString(strings.Repeat("#", i))
		b.WriteString(" layout: stack\n")
	}
	nodes := Build(b.String())
	require.Len(t, nodes, 1)
	n := nodes[0]
	for i := 1; i < depth; i++ {
		require.Len(t, n.Children, 1)
		n = n.Children[0]
	}
	require.Equal(t, depth, n.Level)
	require.Empty(t, n.Children)
}

func TestNodeRatio(t *testing.T) {
	cases := map[string]float64{
		"":        0.5,
		"30/70":   0.3,
		"1/3":     0.25,
		"40px/60": 0.4,
		"a/b":     0.5,
		"30":      0.5,
		"0/0":     0.5,
		"-1/3":    0.5,
		"2/6/9":   0.25,
	}
	for value, want := range cases {
		n := &Node{Type: TypeLayout, Kind: "split"}
		if value != "" {
			n.Params = map[string]string{ParamValue: value}
		}
		require.InDelta(t, want, n.Ratio(), 1e-9, "ratio %q", value)
	}
}

func TestNodeKinds(t *testing.T) {
	require.Equal(t, LayoutStack, (&Node{Kind: "stack"}).LayoutKind())
	require.Equal(t, LayoutSplit, (&Node{Kind: "split"}).LayoutKind())
	require.Equal(t, LayoutUnknown, (&Node{Kind: "grid"}).LayoutKind())
	require.Equal(t, ComponentHeader, (&Node{Kind: "header"}).ComponentKind())
	require.Equal(t, ComponentTable, (&Node{Kind: "table"}).ComponentKind())
	require.Equal(t, ComponentPanel, (&Node{Kind: "panel"}).ComponentKind())
	require.Equal(t, ComponentNav, (&Node{Kind: "nav"}).ComponentKind())
	require.Equal(t, ComponentOther, (&Node{Kind: "button"}).ComponentKind())
	require.Equal(t, "branch", TypeBranch.String())
	require.Equal(t, "text", TypeText.String())
}
