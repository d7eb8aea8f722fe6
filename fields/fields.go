// Package fields recovers fillable-field metadata from a document's
// interactive-form object graph.
package fields

import (
	"errors"

	"github.com/wudi/formfill/graph"
	"github.com/wudi/formfill/style"
)

// ErrNoForm reports a document without an interactive-form root. This is
// distinct from a form root with zero fields, which extracts to an empty
// slice.
var ErrNoForm = errors.New("no interactive form root")

// Kind discriminates the supported field types. Choice, list and signature
// fields are skipped during extraction and never reach the pipeline.
type Kind int

const (
	KindText Kind = iota
	KindCheckbox
)

func (k Kind) String() string {
	if k == KindCheckbox {
		return "checkbox"
	}
	return "text"
}

// Spec is the extracted description of one widget. It is immutable after
// extraction and owned by a single fill pass; the graph may be mutated by
// annotation cleanup between passes, so specs are never cached across them.
type Spec struct {
	Name string
	Kind Kind

	// Box holds the raw rectangle corners [x0 y0 x1 y1]; corner order is
	// arbitrary and normalized by the layout planner.
	Box [4]float64

	// PageNumber is 1-based into the document's page sequence.
	PageNumber int

	// Text fields.
	DefaultValue string
	Style        style.Text

	// Checkbox fields.
	Checked bool

	// Back-references for annotation cleanup. Opaque to the pipeline.
	FieldRef    graph.ObjectRef
	HasFieldRef bool
	PageRef     graph.ObjectRef
	HasPageRef  bool
}
