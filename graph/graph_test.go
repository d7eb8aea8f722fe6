package graph

import (
	"strings"
	"testing"
)

func TestMemory_ResolveChain(t *testing.T) {
	doc := NewMemory()
	inner := Dict()
	inner.Set("Key", NameLiteral("Value"))
	ref1 := doc.Add(inner)
	ref2 := doc.Add(ref1)

	resolved := doc.Resolve(ref2)
	dict, ok := resolved.(Dictionary)
	if !ok {
		t.Fatalf("Resolve returned %T, want Dictionary", resolved)
	}
	if name, _ := NameEntry(doc, dict, "Key"); name != "Value" {
		t.Errorf("Key = %q, want %q", name, "Value")
	}
}

func TestMemory_ResolveDangling(t *testing.T) {
	doc := NewMemory()
	if got := doc.Resolve(Ref(99, 0)); got != nil {
		t.Errorf("Resolve(dangling) = %v, want nil", got)
	}
	if got := doc.Resolve(nil); got != nil {
		t.Errorf("Resolve(nil) = %v, want nil", got)
	}
}

func TestArray_Remove(t *testing.T) {
	arr := NewArray(NumberInt(1), NumberInt(2), NumberInt(3))
	arr.Remove(1)
	if arr.Len() != 2 {
		t.Fatalf("Len = %d, want 2", arr.Len())
	}
	first, _ := arr.Get(0)
	last, _ := arr.Get(1)
	if first.(Number).Int() != 1 || last.(Number).Int() != 3 {
		t.Errorf("after Remove got [%v %v], want [1 3]", first, last)
	}

	// Out-of-range removals are ignored.
	arr.Remove(-1)
	arr.Remove(5)
	if arr.Len() != 2 {
		t.Errorf("Len after out-of-range Remove = %d, want 2", arr.Len())
	}
}

func TestRectEntry(t *testing.T) {
	doc := NewMemory()
	dict := Dict()
	dict.Set("Rect", NewArray(
		NumberFloat(10), NumberInt(20), NumberFloat(110.5), NumberInt(50),
	))
	rect, ok := RectEntry(doc, dict, "Rect")
	if !ok {
		t.Fatal("RectEntry failed")
	}
	want := [4]float64{10, 20, 110.5, 50}
	if rect != want {
		t.Errorf("rect = %v, want %v", rect, want)
	}

	dict.Set("Rect", NewArray(NumberInt(1), NumberInt(2)))
	if _, ok := RectEntry(doc, dict, "Rect"); ok {
		t.Error("RectEntry accepted a two-element array")
	}
}

func TestReadFixture(t *testing.T) {
	src := `{
		"pages": 2,
		"fields": [
			{"name": "client", "type": "text", "rect": [50, 700, 250, 720], "page": 1,
			 "style": "font: bold Helvetica 10pt", "value": "ACME"},
			{"name": "approved", "type": "checkbox", "rect": [50, 650, 70, 670], "page": 2, "checked": true}
		]
	}`
	doc, err := ReadFixture(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadFixture failed: %v", err)
	}

	if got := len(doc.Pages()); got != 2 {
		t.Fatalf("pages = %d, want 2", got)
	}
	root, ok := doc.Root()
	if !ok {
		t.Fatal("fixture has no catalog")
	}
	form, ok := DictValue(doc, root, "AcroForm")
	if !ok {
		t.Fatal("fixture has no form root")
	}
	collection, ok := ArrayValue(doc, form, "Fields")
	if !ok || collection.Len() != 2 {
		t.Fatalf("field collection missing or wrong size")
	}

	// The checkbox widget is listed in its page's annotations.
	page, ok := doc.Page(doc.Pages()[1])
	if !ok {
		t.Fatal("page 2 missing")
	}
	annots, ok := ArrayValue(doc, page, "Annots")
	if !ok || annots.Len() != 1 {
		t.Fatalf("page 2 annots missing or wrong size")
	}
}

func TestReadFixture_Invalid(t *testing.T) {
	cases := map[string]string{
		"no pages":   `{"pages": 0}`,
		"bad type":   `{"pages": 1, "fields": [{"name": "x", "type": "radio", "rect": [0,0,1,1]}]}`,
		"page range": `{"pages": 1, "fields": [{"name": "x", "type": "text", "rect": [0,0,1,1], "page": 3}]}`,
		"not json":   `nope`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadFixture(strings.NewReader(src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
