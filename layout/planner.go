package layout

import (
	"fmt"

	"github.com/wudi/formfill/barcode"
	"github.com/wudi/formfill/fields"
	"github.com/wudi/formfill/markup"
	"github.com/wudi/formfill/observability"
	"github.com/wudi/formfill/render"
	"github.com/wudi/formfill/values"
)

// Planner maps (field, resolved value) pairs to placement instructions.
type Planner struct {
	provider barcode.Provider
	log      observability.Logger
}

// NewPlanner returns a planner that encodes barcodes through provider. A
// nil logger disables diagnostics.
func NewPlanner(provider barcode.Provider, log observability.Logger) *Planner {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Planner{provider: provider, log: log}
}

// Plan computes the placements for one field on one target page. The
// sequence is ordered: within a cell, a bounds outline (when requested)
// precedes the content instruction.
func (p *Planner) Plan(field fields.Spec, value values.Resolved, page int, opts Options) ([]Placement, error) {
	if value.Kind == values.None {
		return nil, nil
	}

	box := NormalizeBox(field.Box)

	rows, cols := 1, 1
	if value.Kind == values.Label {
		rows, cols = opts.LabelRows, opts.LabelColumns
		if rows < 1 {
			rows = 1
		}
		if cols < 1 {
			cols = 1
		}
	}

	content, err := p.payload(field, value, box, opts)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	placements := make([]Placement, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := box.X + opts.LabelOffsetX*float64(col)
			y := box.Y + opts.LabelOffsetY*float64(row)
			if opts.ShowBounds {
				placements = append(placements, Placement{
					Page: page, X: x, Y: y, Width: box.W,
					Payload: StrokeBounds{Height: box.H},
				})
			}
			placements = append(placements, Placement{
				Page: page, X: x, Y: y, Width: box.W,
				Payload: content,
			})
		}
	}
	return placements, nil
}

func (p *Planner) payload(field fields.Spec, value values.Resolved, box Box, opts Options) (Payload, error) {
	switch field.Kind {
	case fields.KindCheckbox:
		return FillCheckbox{Filled: field.Checked, Height: box.H}, nil
	case fields.KindText:
		if value.Kind == values.Barcode {
			return p.barcodePayload(field.Name, value, box, opts)
		}
		textOpts := TextStyle(field.Style, opts)
		textOpts.Runs = markup.Runs(value.Text)
		return DrawText{Text: value.Text, Options: textOpts}, nil
	default:
		panic(fmt.Sprintf("layout: unreachable field kind %d", field.Kind))
	}
}

func (p *Planner) barcodePayload(fieldName string, value values.Resolved, box Box, opts Options) (Payload, error) {
	sym, err := p.provider.Make(value.Symbology, value.Payload)
	if err != nil {
		// The resolver vets the symbology up front; a payload the encoder
		// rejects is diagnosed here and the field renders nothing.
		p.log.Warn("barcode encoding failed, field not rendered",
			observability.String("field", fieldName),
			observability.String("symbology", value.Symbology),
			observability.Error("err", err))
		return nil, nil
	}
	xdim := opts.BarcodeXDim
	if xdim <= 0 {
		xdim = 1
	}
	return DrawBarcode{
		Symbol: sym,
		Options: render.BarcodeOptions{
			XDim:     xdim,
			Height:   box.H,
			Rotation: value.Rotation,
		},
	}, nil
}
