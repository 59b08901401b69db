package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/asciiwire"
	"pkt.systems/version"
)

const (
	defaultWidth = asciiwire.DefaultWidth
	guideCommand = "llm"
)

func init() {
	version.SetDefaultModule("pkt.systems/asciiwire")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var (
		widthFlag   int
		fit         bool
		wrapFlag    bool
		cellsFlag   string
		outPath     string
		showVersion bool
	)

	flags := pflag.NewFlagSet("asciiwire", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVarP(&widthFlag, "width", "w", defaultWidth, "Output width in columns")
	flags.BoolVar(&fit, "fit", false, "Use the terminal width instead of --width")
	flags.BoolVar(&wrapFlag, "wrap", false, "Word-wrap panel and box content instead of truncating")
	flags.StringVar(&cellsFlag, "cells", "table", "Column measure for wide characters: table|terminal")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: asciiwire [flags] <inputs...>\n")
		fmt.Fprintf(stderr, "       asciiwire %s\n", guideCommand)
		fmt.Fprintln(stderr, "\nRenders Markdown wireframes as ASCII art. Inputs may be files or URLs.")
		fmt.Fprintf(stderr, "The %q command prints the wireframe grammar guide for language models.\n", guideCommand)
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(argv); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	args := flags.Args()
	if len(args) == 1 && args[0] == guideCommand {
		fmt.Fprint(stdout, asciiwire.Guide())
		return 0
	}
	if len(args) == 0 {
		flags.Usage()
		return 2
	}

	width := 0
	switch {
	case fit:
		width = terminalWidth(defaultWidth)
	case flags.Changed("width"):
		if widthFlag <= 0 {
			fmt.Fprintf(stderr, "invalid --width %d: must be positive\n", widthFlag)
			return 2
		}
		width = widthFlag
	}

	cells, err := resolveCells(cellsFlag)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --cells %q: %v\n", cellsFlag, err)
		return 2
	}
	opts := []asciiwire.RenderOption{asciiwire.WithCellWidth(cells)}
	if flags.Changed("wrap") {
		opts = append(opts, asciiwire.WithWrap(wrapFlag))
	}

	sources, err := parseSources(args)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	doc, err := readSources(context.Background(), sources)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}

	writer, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if err := asciiwire.Render(asciiwire.RenderRequest{
		Reader:  bytes.NewReader(doc),
		Writer:  writer,
		Width:   width,
		Options: opts,
	}); err != nil {
		fmt.Fprintf(stderr, "asciiwire: %v\n", err)
		return 1
	}
	return 0
}

func resolveCells(mode string) (asciiwire.CellWidthFunc, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "table":
		return asciiwire.EastAsianCellWidth, nil
	case "terminal":
		return asciiwire.TerminalCellWidth, nil
	default:
		return nil, fmt.Errorf("expected table|terminal")
	}
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := localPath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
