package app

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-formbuilder/internal/outline"
	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/palette"
)

// Option customises an App.
type Option func(*App)

// WithPalette replaces the embedded palette.
func WithPalette(p *palette.Palette) Option {
	return func(a *App) {
		if p != nil {
			a.palette = p
		}
	}
}

// WithFormat selects the export encoding.
func WithFormat(f export.Format) Option {
	return func(a *App) {
		if f != "" {
			a.format = f
		}
	}
}

// WithOutput writes exports to path instead of the prompt driver.
func WithOutput(path string) Option {
	return func(a *App) {
		a.output = path
	}
}

// WithWriteFile replaces os.WriteFile for exports to a path.
func WithWriteFile(fn func(path string, data []byte) error) Option {
	return func(a *App) {
		if fn != nil {
			a.writeFile = fn
		}
	}
}

// WithOutline overrides the outline renderer.
func WithOutline(r *outline.Renderer) Option {
	return func(a *App) {
		if r != nil {
			a.outline = r
		}
	}
}

// WithDebug checks the session's derived artifacts after every action and
// logs any drift.
func WithDebug(enabled bool) Option {
	return func(a *App) {
		a.debug = enabled
	}
}

// WithLogger sets the logger used for debug reports.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
