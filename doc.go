// Package asciiwire renders Markdown wireframes as fixed-width ASCII art.
//
// A wireframe is a Markdown document whose headings describe a UI tree.
// Heading depth sets nesting and a prefix sets the role:
//
//	# layout: stack            vertical stack of children
//	## component: header       centered text between = borders
//	## layout: split 30/70     two panes side by side
//	### left:                  left pane children
//	### right:                 right pane children
//
// Body lines after a heading are that node's content. Build turns a document
// into a tree of Nodes and RenderNodes draws the tree at a column width.
// Padding and truncation count wide East Asian characters as two columns so
// box edges line up.
//
// Example:
//
//	err := asciiwire.Render(asciiwire.RenderRequest{
//		Reader: strings.NewReader("# component: panel\nHello\n"),
//		Writer: os.Stdout,
//		Width:  40,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Wrapping of box content and the column measure can be changed with
// RenderOptions.
package asciiwire
