package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pkt.systems/asciiwire"
)

func main() {
	widths := []int{40, 60, 80}
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	paths, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		fatalf("glob %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no wireframes found under %s", root)
	}
	existing, err := filepath.Glob(filepath.Join(root, "*.golden"))
	if err != nil {
		fatalf("glob %s: %v", root, err)
	}
	widthsByBase := map[string][]int{}
	for _, path := range existing {
		if base, width, ok := parseGoldenWidth(path); ok {
			widthsByBase[base] = append(widthsByBase[base], width)
		}
	}

	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		base := strings.TrimSuffix(filepath.Base(path), ".md")
		useWidths := widthsByBase[base]
		if len(useWidths) == 0 {
			useWidths = widths
		}
		for _, width := range useWidths {
			var out bytes.Buffer
			err := asciiwire.Render(asciiwire.RenderRequest{
				Reader: bytes.NewReader(src),
				Writer: &out,
				Width:  width,
			})
			if err != nil {
				fatalf("render %s width %d: %v", path, width, err)
			}
			goldenPath := filepath.Join(root, fmt.Sprintf("%s.w%d.golden", base, width))
			if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// parseGoldenWidth splits "name.w60.golden" into "name" and 60.
func parseGoldenWidth(goldenPath string) (string, int, bool) {
	name := strings.TrimSuffix(filepath.Base(goldenPath), ".golden")
	idx := strings.LastIndex(name, ".w")
	if idx == -1 {
		return "", 0, false
	}
	width, err := strconv.Atoi(name[idx+2:])
	if err != nil || width <= 0 {
		return "", 0, false
	}
	return name[:idx], width, true
}
