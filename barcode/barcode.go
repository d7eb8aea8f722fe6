// Package barcode defines the symbol-provider contract the layout planner
// depends on, plus a default provider. Directive symbology tags are matched
// case-insensitively.
package barcode

import "errors"

// ErrUnknownSymbology reports a symbology tag no provider can encode.
var ErrUnknownSymbology = errors.New("unknown barcode symbology")

// Rotation orients a rendered symbol inside its box.
type Rotation int

const (
	RotateNone  Rotation = iota
	RotateLeft           // 90 degrees counter-clockwise
	RotateRight          // 270 degrees counter-clockwise
)

// Degrees returns the counter-clockwise rotation angle.
func (r Rotation) Degrees() int {
	switch r {
	case RotateLeft:
		return 90
	case RotateRight:
		return 270
	default:
		return 0
	}
}

func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "none"
	}
}

// Symbol is a renderable barcode. The rendering surface decides how to
// paint it; the pipeline only routes it from provider to canvas.
type Symbol interface {
	Symbology() string
	Payload() string
}

// Provider encodes payloads into renderable symbols. Unsupported tags must
// be reported through ErrUnknownSymbology, never silently ignored.
type Provider interface {
	Supports(symbology string) bool
	Make(symbology, payload string) (Symbol, error)
}
