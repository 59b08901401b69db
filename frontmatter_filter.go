package asciiwire

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FrontMatter holds the document settings a wireframe may declare in a
// leading YAML block.
type FrontMatter struct {
	Width int  `yaml:"width"`
	Wrap  bool `yaml:"wrap"`
}

// splitFrontMatter separates a leading front matter block from the body.
// The block must open with ---, +++ or ;;; on the first line, continue with
// a line that looks like metadata, and be closed by the same delimiter.
// Anything else is returned untouched as body.
func splitFrontMatter(src []byte) (delim, meta, body []byte) {
	openLine, next := nextLine(src, 0)
	delim, ok := parseOpeningFrontMatterDelimiter(openLine)
	if !ok {
		return nil, nil, src
	}
	second, _ := nextLine(src, next)
	if !frontMatterMetadataLikely(second) {
		return nil, nil, src
	}
	metaEnd, bodyStart, found := findClosingFrontMatterDelimiter(src, next, delim)
	if !found {
		return nil, nil, src
	}
	return delim, src[next:metaEnd], src[bodyStart:]
}

// StripFrontMatter returns src without a leading byte order mark or front
// matter block. It is used for documents appended after the first one, whose
// settings do not apply.
func StripFrontMatter(src []byte) []byte {
	_, _, body := splitFrontMatter(src)
	return trimBOM(body)
}

// decodeFrontMatter reads settings from YAML front matter. TOML (+++) and
// JSON (;;;) blocks are stripped but carry no settings.
func decodeFrontMatter(delim, meta []byte) (FrontMatter, error) {
	var fm FrontMatter
	if !bytes.Equal(delim, []byte("---")) || len(bytes.TrimSpace(meta)) == 0 {
		return fm, nil
	}
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return FrontMatter{}, fmt.Errorf("front matter: %w", err)
	}
	return fm, nil
}

// nextLine returns the line starting at start without its line ending and
// the offset just past it.
func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	return trimCR(src[start : start+i]), start + i + 1
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] == '#' {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter scans from start for a line equal to
// delim and returns where that line begins and where the body after it starts.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
