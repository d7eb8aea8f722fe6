// Package layout turns a field, its resolved value and the fill options
// into an ordered sequence of placement instructions. Placements are pure
// data; dispatching them onto a canvas is the orchestrator's job.
package layout

import (
	"github.com/wudi/formfill/barcode"
	"github.com/wudi/formfill/render"
	"github.com/wudi/formfill/style"
)

// Options are the global fill options the planner consults.
type Options struct {
	// Font and FontSize apply when the field's style string carried no
	// opinion.
	Font     string
	FontSize float64

	// BarcodeXDim scales barcode modules horizontally (1 = unchanged).
	BarcodeXDim float64

	// Label grid: LabelRows x LabelColumns cells, each offset by
	// (LabelOffsetX, LabelOffsetY) per column/row. Only label-classified
	// values replicate across the grid.
	LabelRows    int
	LabelColumns int
	LabelOffsetX float64
	LabelOffsetY float64

	Overflow            render.Overflow
	OverflowMinFontSize float64

	// ShowBounds emits a stroked outline per cell before the content.
	ShowBounds bool
}

// DefaultOptions mirrors the documented option defaults.
func DefaultOptions() Options {
	return Options{
		Font:                "Helvetica",
		FontSize:            12,
		BarcodeXDim:         1,
		LabelRows:           1,
		LabelColumns:        1,
		Overflow:            render.OverflowExpand,
		OverflowMinFontSize: 8,
	}
}

// Placement targets one grid cell on one page. Height is intentionally
// part of the payloads that need it, not of the placement itself: text is
// allowed to grow or shrink vertically downstream.
type Placement struct {
	Page    int
	X, Y    float64
	Width   float64
	Payload Payload
}

// Payload is the content variant of a placement.
type Payload interface{ payload() }

// DrawText paints styled text.
type DrawText struct {
	Text    string
	Options render.TextOptions
}

// FillCheckbox paints a solid fill over the whole box when Filled.
type FillCheckbox struct {
	Filled bool
	Height float64
}

// DrawBarcode paints an encoded symbol.
type DrawBarcode struct {
	Symbol  barcode.Symbol
	Options render.BarcodeOptions
}

// StrokeBounds outlines the cell. Emitted only when Options.ShowBounds is
// set, as a debug aid.
type StrokeBounds struct {
	Height float64
}

func (DrawText) payload()     {}
func (FillCheckbox) payload() {}
func (DrawBarcode) payload()  {}
func (StrokeBounds) payload() {}

// Box is a normalized, top-left-anchored rectangle.
type Box struct {
	X, Y, W, H float64
}

// NormalizeBox orders arbitrary rectangle corners. The anchor is the
// top-left corner in the drawing collaborator's coordinate convention:
// x = min of the horizontal pair, y = max of the vertical pair.
func NormalizeBox(corners [4]float64) Box {
	x0, y0, x1, y1 := corners[0], corners[1], corners[2], corners[3]
	return Box{
		X: min(x0, x1),
		Y: max(y0, y1),
		W: abs(x0 - x1),
		H: abs(y0 - y1),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TextStyle merges a field's parsed style with the option defaults.
func TextStyle(fieldStyle style.Text, opts Options) render.TextOptions {
	out := render.TextOptions{
		Font:        opts.Font,
		Style:       fieldStyle.Style,
		FontSize:    opts.FontSize,
		Align:       style.AlignLeft,
		Overflow:    opts.Overflow,
		MinFontSize: opts.OverflowMinFontSize,
		Kerning:     true,
	}
	if fieldStyle.Font != "" {
		out.Font = fieldStyle.Font
	}
	if fieldStyle.Size != nil {
		out.FontSize = *fieldStyle.Size
	}
	if fieldStyle.Align != nil {
		out.Align = *fieldStyle.Align
	}
	return out
}
