package barcode

import (
	"fmt"
	"strings"

	bb "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/qr"
)

// DefaultProvider encodes symbols with github.com/boombuler/barcode.
type DefaultProvider struct{}

var defaultSymbologies = map[string]bool{
	"code39":     true,
	"code128":    true,
	"ean13":      true,
	"ean8":       true,
	"qr":         true,
	"datamatrix": true,
}

func (DefaultProvider) Supports(symbology string) bool {
	return defaultSymbologies[strings.ToLower(symbology)]
}

func (DefaultProvider) Make(symbology, payload string) (Symbol, error) {
	tag := strings.ToLower(symbology)
	var (
		encoded bb.Barcode
		err     error
	)
	switch tag {
	case "code39":
		encoded, err = code39.Encode(payload, true, true)
	case "code128":
		encoded, err = code128.Encode(payload)
	case "ean13", "ean8":
		encoded, err = ean.Encode(payload)
	case "qr":
		encoded, err = qr.Encode(payload, qr.M, qr.Auto)
	case "datamatrix":
		encoded, err = datamatrix.Encode(payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbology, symbology)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", tag, err)
	}
	return &encodedSymbol{tag: tag, payload: payload, barcode: encoded}, nil
}

type encodedSymbol struct {
	tag     string
	payload string
	barcode bb.Barcode
}

func (s *encodedSymbol) Symbology() string { return s.tag }
func (s *encodedSymbol) Payload() string   { return s.payload }

// Barcode returns the encoded symbol for rasterizing canvases.
func (s *encodedSymbol) Barcode() bb.Barcode { return s.barcode }
