// Package values resolves the text to render for a field and classifies it:
// plain text, a barcode directive (with rotation variants), or a label
// directive that replicates across the whole label grid.
package values

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wudi/formfill/barcode"
	"github.com/wudi/formfill/fields"
	"github.com/wudi/formfill/observability"
	"github.com/wudi/formfill/scripting"
)

// ErrEvaluation wraps expression-evaluator failures. A single bad
// expression aborts the whole fill pass; partial output from a broken
// template helps nobody.
var ErrEvaluation = errors.New("expression evaluation failed")

// Kind classifies a resolved value.
type Kind int

const (
	// Plain text, rendered once in the first grid cell.
	Plain Kind = iota
	// Barcode renders an encoded symbol.
	Barcode
	// Label text replicates across every cell of the label grid.
	Label
	// None produces no placement at all (recognized directive that cannot
	// render, e.g. an unknown symbology).
	None
)

func (k Kind) String() string {
	switch k {
	case Barcode:
		return "barcode"
	case Label:
		return "label"
	case None:
		return "none"
	default:
		return "plain"
	}
}

// Resolved is the per-field, per-pass outcome of value resolution.
type Resolved struct {
	Text string
	Kind Kind

	// Barcode directive parts.
	Symbology string
	Payload   string
	Rotation  barcode.Rotation
}

// Source yields the raw text for a field. pageNumber is the page the value
// is being resolved for; expression-backed sources expose it to the
// evaluator.
type Source interface {
	Lookup(ctx context.Context, field fields.Spec, pageNumber int) (string, error)
}

// MapSource is a static name-to-text mapping. Missing names fall back to
// the field's default value.
type MapSource map[string]string

func (m MapSource) Lookup(_ context.Context, field fields.Spec, _ int) (string, error) {
	if v, ok := m[field.Name]; ok {
		return v, nil
	}
	return field.DefaultValue, nil
}

// PageVar is the evaluator global holding the page being resolved.
const PageVar = "pageNumber"

// trailingTag strips the "|<digits>" disambiguation suffix field names may
// carry; it has no meaning to the evaluator.
var trailingTag = regexp.MustCompile(`\|\d+$`)

// ExprSource resolves field names as dotted-path expressions. Field names
// use ',' as a path-delimiter surrogate because '.' is reserved in the
// authoring tool, so commas become periods before evaluation.
type ExprSource struct {
	Eval scripting.Evaluator
}

func (s *ExprSource) Lookup(ctx context.Context, field fields.Spec, pageNumber int) (string, error) {
	expr := strings.ReplaceAll(field.Name, ",", ".")
	expr = trailingTag.ReplaceAllString(expr, "")

	if err := s.Eval.SetVar(PageVar, pageNumber); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEvaluation, err)
	}
	// The page variable must not leak into unrelated evaluator calls, even
	// when evaluation fails.
	defer s.Eval.DeleteVar(PageVar)

	out, err := s.Eval.Evaluate(ctx, expr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEvaluation, err)
	}
	return out, nil
}

// Resolver looks up and classifies field values.
type Resolver struct {
	provider barcode.Provider
	log      observability.Logger
}

// NewResolver returns a resolver that validates barcode directives against
// provider. A nil logger disables diagnostics.
func NewResolver(provider barcode.Provider, log observability.Logger) *Resolver {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Resolver{provider: provider, log: log}
}

// Resolve produces the value to render for field on pageNumber.
func (r *Resolver) Resolve(ctx context.Context, field fields.Spec, src Source, pageNumber int) (Resolved, error) {
	text, err := src.Lookup(ctx, field, pageNumber)
	if err != nil {
		return Resolved{}, err
	}
	return r.Classify(text, field.Name), nil
}

// Classify applies the directive grammar to text.
func (r *Resolver) Classify(text, fieldName string) Resolved {
	tokens := strings.Fields(text)
	if len(tokens) > 0 {
		switch tokens[0] {
		case "barcode", "barcode-l", "barcode-r":
			return r.classifyBarcode(text, tokens, fieldName)
		case "label":
			remainder := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "label"))
			return Resolved{Text: remainder, Kind: Label}
		}
	}
	return Resolved{Text: text, Kind: Plain}
}

func (r *Resolver) classifyBarcode(text string, tokens []string, fieldName string) Resolved {
	// A directive without a payload is not a directive after all; the
	// literal text renders unchanged.
	if len(tokens) < 3 {
		return Resolved{Text: text, Kind: Plain}
	}

	symbology := tokens[1]
	if !r.provider.Supports(symbology) {
		r.log.Warn("unknown barcode symbology, field not rendered",
			observability.String("field", fieldName),
			observability.String("symbology", symbology))
		return Resolved{Text: text, Kind: None}
	}

	rotation := barcode.RotateNone
	switch tokens[0] {
	case "barcode-l":
		rotation = barcode.RotateLeft
	case "barcode-r":
		rotation = barcode.RotateRight
	}
	return Resolved{
		Text:      text,
		Kind:      Barcode,
		Symbology: symbology,
		Payload:   strings.Join(tokens[2:], " "),
		Rotation:  rotation,
	}
}
