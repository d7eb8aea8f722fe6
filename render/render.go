// Package render declares the rendering-surface contract placements are
// dispatched to. The pipeline computes where things go; a Canvas decides how
// they are painted.
package render

import (
	"github.com/wudi/formfill/barcode"
	"github.com/wudi/formfill/markup"
	"github.com/wudi/formfill/style"
)

// Overflow selects what happens when text does not fit its box width.
type Overflow int

const (
	// OverflowExpand lets the text block grow vertically.
	OverflowExpand Overflow = iota
	// OverflowShrink reduces the font size down to a floor until the text fits.
	OverflowShrink
	// OverflowNone clips.
	OverflowNone
)

func (o Overflow) String() string {
	switch o {
	case OverflowShrink:
		return "shrink"
	case OverflowNone:
		return "none"
	default:
		return "expand"
	}
}

// TextOptions configures one text draw call.
type TextOptions struct {
	Font        string
	Style       style.FontStyle
	FontSize    float64
	Align       style.Alignment
	Overflow    Overflow
	MinFontSize float64
	Kerning     bool
	// Runs carries the markup-split text; renderers that honor inline
	// styling draw the runs, others fall back to the plain text.
	Runs []markup.Run
}

// BarcodeOptions configures one barcode draw call.
type BarcodeOptions struct {
	// XDim scales the symbol horizontally (1 = module width unchanged).
	XDim float64
	// Height is the rendered symbol height.
	Height float64
	// Rotation pivots at the anchor.
	Rotation barcode.Rotation
}

// Canvas is the drawing collaborator. The active page is a cursor shared
// with the rest of the document; the fill pass saves and restores it.
type Canvas interface {
	// SetPage switches the active page (1-based).
	SetPage(pageNumber int) error
	// ActivePage reports the current page cursor (1-based).
	ActivePage() int
	// DrawText paints text anchored at (x, y) flowing within width.
	DrawText(x, y, width float64, text string, opts TextOptions) error
	// FillRect paints a solid rectangle.
	FillRect(x, y, width, height float64) error
	// StrokeRect outlines a rectangle.
	StrokeRect(x, y, width, height float64) error
	// DrawBarcode paints a symbol anchored at (x, y).
	DrawBarcode(x, y, width float64, sym barcode.Symbol, opts BarcodeOptions) error
}
