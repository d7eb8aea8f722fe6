package layout

import (
	"errors"
	"testing"

	"github.com/wudi/formfill/barcode"
	"github.com/wudi/formfill/fields"
	"github.com/wudi/formfill/observability"
	"github.com/wudi/formfill/render"
	"github.com/wudi/formfill/style"
	"github.com/wudi/formfill/values"
)

type fakeProvider struct{ fail bool }

func (p fakeProvider) Supports(tag string) bool { return !p.fail }
func (p fakeProvider) Make(tag, payload string) (barcode.Symbol, error) {
	if p.fail {
		return nil, errors.New("encode failed")
	}
	return fakeSymbol{tag, payload}, nil
}

type fakeSymbol struct{ tag, payload string }

func (s fakeSymbol) Symbology() string { return s.tag }
func (s fakeSymbol) Payload() string   { return s.payload }

func TestNormalizeBox_OrderInvariant(t *testing.T) {
	want := Box{X: 10, Y: 80, W: 90, H: 60}
	orderings := [][4]float64{
		{10, 20, 100, 80},
		{100, 20, 10, 80},
		{10, 80, 100, 20},
		{100, 80, 10, 20},
	}
	for _, corners := range orderings {
		if got := NormalizeBox(corners); got != want {
			t.Errorf("NormalizeBox(%v) = %+v, want %+v", corners, got, want)
		}
	}
}

func textField() fields.Spec {
	return fields.Spec{
		Name:       "f",
		Kind:       fields.KindText,
		Box:        [4]float64{10, 20, 100, 80},
		PageNumber: 1,
	}
}

func TestPlan_PlainSingleCell(t *testing.T) {
	p := NewPlanner(fakeProvider{}, nil)
	opts := DefaultOptions()
	opts.LabelRows, opts.LabelColumns = 2, 3

	placements, err := p.Plan(textField(), values.Resolved{Text: "hi", Kind: values.Plain}, 1, opts)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1 (plain values do not replicate)", len(placements))
	}
	pl := placements[0]
	if pl.X != 10 || pl.Y != 80 || pl.Width != 90 {
		t.Errorf("placement at (%g,%g) w=%g, want (10,80) w=90", pl.X, pl.Y, pl.Width)
	}
	if _, ok := pl.Payload.(DrawText); !ok {
		t.Errorf("payload = %T, want DrawText", pl.Payload)
	}
}

func TestPlan_LabelGrid(t *testing.T) {
	p := NewPlanner(fakeProvider{}, nil)
	opts := DefaultOptions()
	opts.LabelRows, opts.LabelColumns = 2, 3
	opts.LabelOffsetX, opts.LabelOffsetY = 200, -60

	placements, err := p.Plan(textField(), values.Resolved{Text: "Approved", Kind: values.Label}, 1, opts)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(placements) != 6 {
		t.Fatalf("got %d placements, want 6", len(placements))
	}

	// Row-major over the grid, offset per cell.
	wantAnchors := [][2]float64{
		{10, 80}, {210, 80}, {410, 80},
		{10, 20}, {210, 20}, {410, 20},
	}
	for i, pl := range placements {
		if pl.X != wantAnchors[i][0] || pl.Y != wantAnchors[i][1] {
			t.Errorf("cell %d at (%g,%g), want (%g,%g)",
				i, pl.X, pl.Y, wantAnchors[i][0], wantAnchors[i][1])
		}
		text, ok := pl.Payload.(DrawText)
		if !ok {
			t.Fatalf("cell %d payload = %T, want DrawText", i, pl.Payload)
		}
		if text.Text != "Approved" {
			t.Errorf("cell %d text = %q", i, text.Text)
		}
	}
}

func TestPlan_Checkbox(t *testing.T) {
	p := NewPlanner(fakeProvider{}, nil)
	field := fields.Spec{
		Name:    "cb",
		Kind:    fields.KindCheckbox,
		Box:     [4]float64{10, 20, 30, 40},
		Checked: true,
	}

	placements, err := p.Plan(field, values.Resolved{Kind: values.Plain}, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}
	cb, ok := placements[0].Payload.(FillCheckbox)
	if !ok {
		t.Fatalf("payload = %T, want FillCheckbox", placements[0].Payload)
	}
	if !cb.Filled || cb.Height != 20 {
		t.Errorf("payload = %+v, want filled with height 20", cb)
	}

	field.Checked = false
	placements, _ = p.Plan(field, values.Resolved{Kind: values.Plain}, 1, DefaultOptions())
	if cb := placements[0].Payload.(FillCheckbox); cb.Filled {
		t.Error("unchecked box planned as filled")
	}
}

func TestPlan_Barcode(t *testing.T) {
	p := NewPlanner(fakeProvider{}, nil)
	opts := DefaultOptions()
	opts.BarcodeXDim = 2

	value := values.Resolved{
		Kind:      values.Barcode,
		Symbology: "code39",
		Payload:   "12345",
		Rotation:  barcode.RotateLeft,
	}
	placements, err := p.Plan(textField(), value, 1, opts)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}
	bc, ok := placements[0].Payload.(DrawBarcode)
	if !ok {
		t.Fatalf("payload = %T, want DrawBarcode", placements[0].Payload)
	}
	if bc.Symbol.Payload() != "12345" {
		t.Errorf("symbol payload = %q", bc.Symbol.Payload())
	}
	if bc.Options.Rotation != barcode.RotateLeft || bc.Options.XDim != 2 || bc.Options.Height != 60 {
		t.Errorf("options = %+v", bc.Options)
	}
}

func TestPlan_BarcodeEncodeFailure(t *testing.T) {
	log := observability.NewCapture()
	p := NewPlanner(fakeProvider{fail: true}, log)

	value := values.Resolved{Kind: values.Barcode, Symbology: "code39", Payload: "x"}
	placements, err := p.Plan(textField(), value, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(placements) != 0 {
		t.Errorf("got %d placements, want 0", len(placements))
	}
	if len(log.Messages("warn")) != 1 {
		t.Errorf("want one diagnostic, got %v", log.Entries())
	}
}

func TestPlan_NoneProducesNothing(t *testing.T) {
	p := NewPlanner(fakeProvider{}, nil)
	placements, err := p.Plan(textField(), values.Resolved{Kind: values.None}, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(placements) != 0 {
		t.Errorf("got %d placements, want 0", len(placements))
	}
}

func TestPlan_ShowBounds(t *testing.T) {
	p := NewPlanner(fakeProvider{}, nil)
	opts := DefaultOptions()
	opts.ShowBounds = true

	placements, err := p.Plan(textField(), values.Resolved{Text: "x", Kind: values.Plain}, 1, opts)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(placements) != 2 {
		t.Fatalf("got %d placements, want outline + content", len(placements))
	}
	if _, ok := placements[0].Payload.(StrokeBounds); !ok {
		t.Errorf("first payload = %T, want StrokeBounds", placements[0].Payload)
	}
	if _, ok := placements[1].Payload.(DrawText); !ok {
		t.Errorf("second payload = %T, want DrawText", placements[1].Payload)
	}
}

func TestTextStyle_Fallbacks(t *testing.T) {
	opts := DefaultOptions()
	got := TextStyle(style.Text{}, opts)
	if got.Font != "Helvetica" || got.FontSize != 12 || got.Align != style.AlignLeft {
		t.Errorf("defaults not applied: %+v", got)
	}
	if !got.Kerning {
		t.Error("kerning disabled")
	}

	size := 9.0
	align := style.AlignRight
	got = TextStyle(style.Text{Font: "Courier", Style: style.Bold, Size: &size, Align: &align}, opts)
	if got.Font != "Courier" || got.Style != style.Bold || got.FontSize != 9 || got.Align != style.AlignRight {
		t.Errorf("field style not honored: %+v", got)
	}
}

func TestPlan_TextMarkupRuns(t *testing.T) {
	p := NewPlanner(fakeProvider{}, nil)
	placements, err := p.Plan(textField(), values.Resolved{Text: "pay **now**", Kind: values.Plain}, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	text := placements[0].Payload.(DrawText)
	if len(text.Options.Runs) != 2 {
		t.Fatalf("runs = %+v, want plain+bold", text.Options.Runs)
	}
	if !text.Options.Runs[1].Bold {
		t.Error("second run should be bold")
	}
	if text.Options.Overflow != render.OverflowExpand {
		t.Errorf("overflow = %v, want expand", text.Options.Overflow)
	}
}
