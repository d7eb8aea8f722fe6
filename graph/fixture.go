package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Fixture is a compact on-disk description of a form graph. It exists for
// the CLI and for tests; LoadFixture lowers it into a real object graph so
// the extraction path under test is the same one a PDF-backed document hits.
type Fixture struct {
	Pages  int            `json:"pages"`
	Fields []FixtureField `json:"fields"`
}

// FixtureField describes one widget entry.
type FixtureField struct {
	Name    string     `json:"name"`
	Type    string     `json:"type"` // "text" or "checkbox"
	Rect    [4]float64 `json:"rect"`
	Page    int        `json:"page,omitempty"` // 1-based; 0 means no page link
	Style   string     `json:"style,omitempty"`
	Value   string     `json:"value,omitempty"`
	Checked bool       `json:"checked,omitempty"`
}

// LoadFixture reads a JSON fixture from disk and builds a Memory document.
func LoadFixture(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFixture(f)
}

// ReadFixture builds a Memory document from JSON fixture data.
func ReadFixture(r io.Reader) (*Memory, error) {
	var fx Fixture
	if err := json.NewDecoder(r).Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return fx.Build()
}

// Build lowers the fixture into an object graph with a catalog, pages with
// annotation arrays, and an interactive-form root listing the widgets.
func (fx *Fixture) Build() (*Memory, error) {
	if fx.Pages < 1 {
		return nil, fmt.Errorf("fixture needs at least one page, got %d", fx.Pages)
	}

	doc := NewMemory()
	pageRefs := make([]ObjectRef, fx.Pages)
	annots := make([]*ArrayObj, fx.Pages)
	for i := 0; i < fx.Pages; i++ {
		page := Dict()
		annots[i] = NewArray()
		page.Set("Annots", annots[i])
		pageRefs[i] = doc.AddPage(page)
	}

	fieldArr := NewArray()
	for _, f := range fx.Fields {
		dict := Dict()
		dict.Set("Subtype", NameLiteral("Widget"))
		dict.Set("T", Text(f.Name))
		dict.Set("Rect", NewArray(
			NumberFloat(f.Rect[0]), NumberFloat(f.Rect[1]),
			NumberFloat(f.Rect[2]), NumberFloat(f.Rect[3]),
		))
		switch f.Type {
		case "text":
			dict.Set("FT", NameLiteral("Tx"))
			if f.Value != "" {
				dict.Set("V", Text(f.Value))
			}
			if f.Style != "" {
				dict.Set("DA", Text(f.Style))
			}
		case "checkbox":
			dict.Set("FT", NameLiteral("Btn"))
			state := "Off"
			if f.Checked {
				state = "Yes"
			}
			dict.Set("AS", NameLiteral(state))
		default:
			return nil, fmt.Errorf("field %q: unknown type %q", f.Name, f.Type)
		}
		if f.Page > 0 {
			if f.Page > fx.Pages {
				return nil, fmt.Errorf("field %q: page %d out of range", f.Name, f.Page)
			}
			dict.Set("P", RefTo(pageRefs[f.Page-1]))
		}

		ref := doc.Add(dict)
		fieldArr.Append(ref)
		if f.Page > 0 {
			annots[f.Page-1].Append(ref)
		}
	}

	form := Dict()
	form.Set("Fields", fieldArr)
	root := Dict()
	root.Set("AcroForm", doc.Add(form))
	doc.SetRoot(root)
	return doc, nil
}
