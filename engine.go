// Package formfill orchestrates the fill pipeline: extract field specs from
// the form graph, resolve a value per field, plan placements and dispatch
// them to the rendering surface, then clean the processed widget
// annotations out of the graph.
//
// The engine is synchronous and single-threaded. It saves and restores the
// canvas's active-page cursor around its own traversal; a reentrant Fill on
// the same document while one is in flight is undefined behavior.
package formfill

import (
	"context"
	"errors"
	"fmt"

	"github.com/wudi/formfill/barcode"
	"github.com/wudi/formfill/fields"
	"github.com/wudi/formfill/graph"
	"github.com/wudi/formfill/layout"
	"github.com/wudi/formfill/observability"
	"github.com/wudi/formfill/render"
	"github.com/wudi/formfill/values"
)

// ErrNoForm reports a fill on a document without an interactive-form root.
var ErrNoForm = fields.ErrNoForm

// Engine drives the extraction, resolution, layout and dispatch of one
// document's form fields.
type Engine struct {
	doc      graph.Document
	canvas   render.Canvas
	provider barcode.Provider
	log      observability.Logger
}

// New returns an engine over doc that paints onto canvas.
func New(doc graph.Document, canvas render.Canvas, opts ...EngineOption) *Engine {
	e := &Engine{
		doc:      doc,
		canvas:   canvas,
		provider: barcode.DefaultProvider{},
		log:      observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FieldNames enumerates the supported form fields in document order.
// Duplicate names are kept. A document without a form root yields an empty
// slice.
func (e *Engine) FieldNames() []string {
	specs, err := fields.NewExtractor(e.doc, e.log).Extract()
	if err != nil {
		return nil
	}
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}

// Fill resolves a value for every supported field and paints it. valueMap
// is consulted per field name unless WithEvaluator routes resolution
// through an expression context instead. Fill fails with ErrNoForm when the
// document has no interactive-form root, and aborts on the first evaluator
// failure; all other anomalies are diagnostics and the pass continues.
func (e *Engine) Fill(ctx context.Context, valueMap map[string]string, opts ...Option) error {
	cfg := defaultFillConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	specs, err := fields.NewExtractor(e.doc, e.log).Extract()
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return nil
	}

	var src values.Source
	if cfg.evaluator != nil {
		src = &values.ExprSource{Eval: cfg.evaluator}
	} else {
		src = values.MapSource(valueMap)
	}
	resolver := values.NewResolver(e.provider, e.log)
	planner := layout.NewPlanner(e.provider, e.log)

	// The active page is a cursor shared with the rest of the document;
	// put it back where it was once the pass is done.
	original := e.canvas.ActivePage()
	defer e.canvas.SetPage(original)

	for _, spec := range specs {
		for pass := 1; pass <= cfg.pages; pass++ {
			target := e.targetPage(spec, pass, cfg.pages)

			resolved, err := resolver.Resolve(ctx, spec, src, target)
			if err != nil {
				return fmt.Errorf("field %q: %w", spec.Name, err)
			}
			placements, err := planner.Plan(spec, resolved, target, cfg.layout)
			if err != nil {
				return fmt.Errorf("field %q: %w", spec.Name, err)
			}
			if len(placements) == 0 {
				continue
			}
			if err := e.canvas.SetPage(target); err != nil {
				return fmt.Errorf("field %q: switch to page %d: %w", spec.Name, target, err)
			}
			for _, p := range placements {
				if err := e.dispatch(p); err != nil {
					return fmt.Errorf("field %q: %w", spec.Name, err)
				}
			}
		}
	}

	if cfg.cleanup {
		e.cleanup(specs)
	}
	return nil
}

// targetPage picks the page a pass paints on. A single-pass fill respects
// the field's own page; a multi-page fill treats the document as a stack of
// identical pages and paints pass n onto page n.
func (e *Engine) targetPage(spec fields.Spec, pass, passes int) int {
	if passes == 1 {
		return spec.PageNumber
	}
	return pass
}

func (e *Engine) dispatch(p layout.Placement) error {
	switch payload := p.Payload.(type) {
	case layout.DrawText:
		return e.canvas.DrawText(p.X, p.Y, p.Width, payload.Text, payload.Options)
	case layout.FillCheckbox:
		if !payload.Filled {
			return nil
		}
		return e.canvas.FillRect(p.X, p.Y, p.Width, payload.Height)
	case layout.DrawBarcode:
		return e.canvas.DrawBarcode(p.X, p.Y, p.Width, payload.Symbol, payload.Options)
	case layout.StrokeBounds:
		return e.canvas.StrokeRect(p.X, p.Y, p.Width, payload.Height)
	default:
		return errors.New("unknown placement payload")
	}
}
