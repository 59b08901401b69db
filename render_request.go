package asciiwire

import (
	"fmt"
	"io"
)

// DefaultWidth is used when neither the request nor the document sets a width.
const DefaultWidth = 80

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	// Width overrides the document's front matter width when positive.
	Width   int
	Options []RenderOption
}

// Render reads a whole wireframe document, renders it and writes the result
// followed by a newline.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	delim, meta, body := splitFrontMatter(src)
	fm, err := decodeFrontMatter(delim, meta)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	width := req.Width
	if width <= 0 {
		width = fm.Width
	}
	if width <= 0 {
		width = DefaultWidth
	}
	opts := req.Options
	if fm.Wrap {
		opts = append([]RenderOption{WithWrap(true)}, opts...)
	}

	out := RenderNodes(Build(string(trimBOM(body))), width, opts...)
	if _, err := io.WriteString(req.Writer, out+"\n"); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}
