package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/asciiwire"
)

// source is one wireframe document named on the command line.
type source struct {
	name string
	open func(ctx context.Context) (io.ReadCloser, error)
}

func parseSources(args []string) ([]source, error) {
	sources := make([]source, 0, len(args))
	for _, raw := range args {
		src, err := parseSource(raw)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// parseSource accepts a local path, a file:// URL or an http(s):// URL.
func parseSource(raw string) (source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return source{}, errors.New("empty input argument")
	}
	if u, err := url.Parse(raw); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return source{name: raw, open: func(ctx context.Context) (io.ReadCloser, error) {
				return fetch(ctx, raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return fileSource(path), nil
		}
	}
	return fileSource(raw), nil
}

func fileSource(path string) source {
	return source{name: path, open: func(context.Context) (io.ReadCloser, error) {
		return os.Open(localPath(path))
	}}
}

func fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}

// readSources reads every source into one wireframe document. Only the first
// document keeps its front matter, and each later document starts on a new
// line so its first heading is never glued to the previous body.
func readSources(ctx context.Context, sources []source) ([]byte, error) {
	var doc bytes.Buffer
	for i, src := range sources {
		data, err := readSource(ctx, src)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			data = asciiwire.StripFrontMatter(data)
			if doc.Len() > 0 && !bytes.HasSuffix(doc.Bytes(), []byte("\n")) {
				doc.WriteByte('\n')
			}
		}
		doc.Write(data)
	}
	return doc.Bytes(), nil
}

func readSource(ctx context.Context, src source) ([]byte, error) {
	rc, err := src.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.name, err)
	}
	return data, nil
}

// localPath expands a leading ~/ to the home directory.
func localPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return filepath.Clean(path)
}
