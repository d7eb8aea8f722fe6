package formfill

import (
	"github.com/wudi/formfill/barcode"
	"github.com/wudi/formfill/layout"
	"github.com/wudi/formfill/observability"
	"github.com/wudi/formfill/render"
	"github.com/wudi/formfill/scripting"
)

// fillConfig collects the per-call options of a fill pass.
type fillConfig struct {
	layout    layout.Options
	pages     int
	evaluator scripting.Evaluator
	cleanup   bool
}

func defaultFillConfig() fillConfig {
	return fillConfig{
		layout:  layout.DefaultOptions(),
		pages:   1,
		cleanup: true,
	}
}

// Option configures one fill pass.
type Option func(*fillConfig)

// WithFont sets the fallback font family for fields without a style string.
func WithFont(font string) Option {
	return func(c *fillConfig) { c.layout.Font = font }
}

// WithFontSize sets the fallback font size.
func WithFontSize(size float64) Option {
	return func(c *fillConfig) { c.layout.FontSize = size }
}

// WithBarcodeXDim scales barcode modules horizontally.
func WithBarcodeXDim(xdim float64) Option {
	return func(c *fillConfig) { c.layout.BarcodeXDim = xdim }
}

// WithLabelGrid replicates label values across a rows x columns grid with
// the given per-cell offsets.
func WithLabelGrid(rows, columns int, offsetX, offsetY float64) Option {
	return func(c *fillConfig) {
		c.layout.LabelRows = rows
		c.layout.LabelColumns = columns
		c.layout.LabelOffsetX = offsetX
		c.layout.LabelOffsetY = offsetY
	}
}

// WithOverflow selects the text overflow policy and its shrink floor.
func WithOverflow(policy render.Overflow, minFontSize float64) Option {
	return func(c *fillConfig) {
		c.layout.Overflow = policy
		c.layout.OverflowMinFontSize = minFontSize
	}
}

// WithShowBounds outlines every planned cell, as a debug aid.
func WithShowBounds() Option {
	return func(c *fillConfig) { c.layout.ShowBounds = true }
}

// WithPages replicates the fill across a stack of n pages. Each page gets a
// full planning pass with the evaluator's page variable updated, so
// expression-backed values may differ page to page.
func WithPages(n int) Option {
	return func(c *fillConfig) {
		if n >= 1 {
			c.pages = n
		}
	}
}

// WithEvaluator resolves field values through an expression evaluator
// instead of the value map. When set, it takes precedence for every field.
func WithEvaluator(eval scripting.Evaluator) Option {
	return func(c *fillConfig) { c.evaluator = eval }
}

// WithoutCleanup keeps the processed widget annotations in the graph.
// Cleanup removal is page-scoped but still best-effort; callers replicating
// onto page stacks they re-fill later may prefer to disable it.
func WithoutCleanup() Option {
	return func(c *fillConfig) { c.cleanup = false }
}

// EngineOption configures the engine itself.
type EngineOption func(*Engine)

// WithLogger routes diagnostics to log.
func WithLogger(log observability.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// WithBarcodeProvider replaces the default barcode symbol provider.
func WithBarcodeProvider(p barcode.Provider) EngineOption {
	return func(e *Engine) { e.provider = p }
}
