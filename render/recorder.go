package render

import (
	"fmt"

	"github.com/wudi/formfill/barcode"
)

// Op is one recorded canvas call.
type Op struct {
	Kind        string // "text", "fill", "stroke", "barcode"
	Page        int
	X, Y        float64
	Width       float64
	Height      float64
	Text        string
	TextOpts    TextOptions
	Symbol      barcode.Symbol
	BarcodeOpts BarcodeOptions
}

// Recorder is a Canvas that records calls instead of painting. It backs the
// pipeline tests and the dry-run CLI.
type Recorder struct {
	Ops  []Op
	page int
}

// NewRecorder returns a recorder positioned on page 1.
func NewRecorder() *Recorder { return &Recorder{page: 1} }

func (r *Recorder) SetPage(pageNumber int) error {
	if pageNumber < 1 {
		return fmt.Errorf("page number %d out of range", pageNumber)
	}
	r.page = pageNumber
	return nil
}

func (r *Recorder) ActivePage() int { return r.page }

func (r *Recorder) DrawText(x, y, width float64, text string, opts TextOptions) error {
	r.Ops = append(r.Ops, Op{
		Kind: "text", Page: r.page, X: x, Y: y, Width: width,
		Text: text, TextOpts: opts,
	})
	return nil
}

func (r *Recorder) FillRect(x, y, width, height float64) error {
	r.Ops = append(r.Ops, Op{
		Kind: "fill", Page: r.page, X: x, Y: y, Width: width, Height: height,
	})
	return nil
}

func (r *Recorder) StrokeRect(x, y, width, height float64) error {
	r.Ops = append(r.Ops, Op{
		Kind: "stroke", Page: r.page, X: x, Y: y, Width: width, Height: height,
	})
	return nil
}

func (r *Recorder) DrawBarcode(x, y, width float64, sym barcode.Symbol, opts BarcodeOptions) error {
	r.Ops = append(r.Ops, Op{
		Kind: "barcode", Page: r.page, X: x, Y: y, Width: width,
		Symbol: sym, BarcodeOpts: opts,
	})
	return nil
}

// OpsOfKind filters the recorded calls.
func (r *Recorder) OpsOfKind(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
