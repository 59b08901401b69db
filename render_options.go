package asciiwire

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	wrap bool
	cell CellWidthFunc
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.cell == nil {
		cfg.cell = EastAsianCellWidth
	}
	return cfg
}

// WithWrap enables or disables word wrapping of panel and box content.
// Without it, lines longer than the box are truncated.
func WithWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.wrap = enabled
	}
}

// WithCellWidth replaces the column measure used for padding, slicing and
// centering. A nil func restores EastAsianCellWidth.
func WithCellWidth(fn CellWidthFunc) RenderOption {
	return func(cfg *renderConfig) {
		cfg.cell = fn
	}
}
