package fields

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/wudi/formfill/graph"
	"github.com/wudi/formfill/observability"
	"github.com/wudi/formfill/style"
)

// Extractor walks a form graph and produces one Spec per supported widget,
// in document order.
type Extractor struct {
	doc graph.Document
	log observability.Logger
}

// NewExtractor returns an extractor over doc. A nil logger disables
// diagnostics.
func NewExtractor(doc graph.Document, log observability.Logger) *Extractor {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Extractor{doc: doc, log: log}
}

// Extract returns the supported fields of the document's interactive form.
// It returns ErrNoForm when the document carries no form root at all.
func (e *Extractor) Extract() ([]Spec, error) {
	root, ok := e.doc.Root()
	if !ok {
		return nil, ErrNoForm
	}
	form, ok := graph.DictValue(e.doc, root, "AcroForm")
	if !ok {
		return nil, ErrNoForm
	}

	pageNumbers := make(map[graph.ObjectRef]int)
	pages := e.doc.Pages()
	for i, ref := range pages {
		pageNumbers[ref] = i + 1
	}

	collection, ok := graph.ArrayValue(e.doc, form, "Fields")
	if !ok {
		return []Spec{}, nil
	}

	specs := make([]Spec, 0, collection.Len())
	for i := 0; i < collection.Len(); i++ {
		entry, _ := collection.Get(i)
		spec, ok := e.extractOne(entry, pageNumbers, len(pages))
		if ok {
			specs = append(specs, spec)
		}
	}
	return specs, nil
}

func (e *Extractor) extractOne(entry graph.Object, pageNumbers map[graph.ObjectRef]int, pageCount int) (Spec, bool) {
	dict, ok := e.doc.Resolve(entry).(graph.Dictionary)
	if !ok {
		return Spec{}, false
	}
	if subtype, _ := graph.NameEntry(e.doc, dict, "Subtype"); subtype != "Widget" {
		return Spec{}, false
	}

	var kind Kind
	switch ft, _ := graph.NameEntry(e.doc, dict, "FT"); ft {
	case "Tx":
		kind = KindText
	case "Btn":
		kind = KindCheckbox
	default:
		// Choice, list, signature and friends are out of scope.
		return Spec{}, false
	}

	raw, ok := graph.StringEntry(e.doc, dict, "T")
	if !ok {
		return Spec{}, false
	}
	name := DecodeName(raw)
	if name == "" {
		e.log.Warn("field with empty name skipped")
		return Spec{}, false
	}

	spec := Spec{Name: name, Kind: kind}
	if box, ok := graph.RectEntry(e.doc, dict, "Rect"); ok {
		spec.Box = box
	}

	pageNumber, ok := e.resolvePage(dict, pageNumbers, pageCount, name)
	if !ok {
		return Spec{}, false
	}
	spec.PageNumber = pageNumber

	switch kind {
	case KindText:
		if value, ok := graph.StringEntry(e.doc, dict, "V"); ok {
			spec.DefaultValue = DecodeName(value)
		}
		if da, ok := graph.StringEntry(e.doc, dict, "DA"); ok {
			spec.Style = style.Parse(string(da))
		}
	case KindCheckbox:
		state, _ := graph.NameEntry(e.doc, dict, "AS")
		spec.Checked = state != "" && state != "Off"
	default:
		panic(fmt.Sprintf("fields: unreachable kind %d", kind))
	}

	if ref, ok := entry.(graph.Reference); ok {
		spec.FieldRef = ref.Ref()
		spec.HasFieldRef = true
	}
	if pageRef, ok := graph.RefEntry(dict, "P"); ok {
		spec.PageRef = pageRef
		spec.HasPageRef = true
	}
	return spec, true
}

// resolvePage maps a field to its 1-based page number. A field without an
// explicit page link resolves to the only page of a single-page document;
// in a multi-page document it is dropped with a diagnostic.
func (e *Extractor) resolvePage(dict graph.Dictionary, pageNumbers map[graph.ObjectRef]int, pageCount int, name string) (int, bool) {
	if ref, ok := graph.RefEntry(dict, "P"); ok {
		if n, ok := pageNumbers[ref]; ok {
			return n, true
		}
	}
	if pageCount == 1 {
		return 1, true
	}
	e.log.Warn("field dropped: no page reference in multi-page document",
		observability.String("field", name),
		observability.Int("pages", pageCount))
	return 0, false
}

var utf16Decoder = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// DecodeName normalizes a possibly encoded byte string. UTF-16BE with a BOM
// is transcoded; anything else is treated as a single-byte encoding.
func DecodeName(raw []byte) string {
	if bytes.HasPrefix(raw, []byte{0xFE, 0xFF}) {
		decoded, err := utf16Decoder.NewDecoder().Bytes(raw)
		if err == nil {
			return string(decoded)
		}
	}
	return string(raw)
}
