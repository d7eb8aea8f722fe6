package scripting

import (
	"context"
	"testing"
)

func TestGojaEvaluator_DottedPath(t *testing.T) {
	eval := NewGoja()
	err := eval.SetVar("order", map[string]interface{}{
		"customer": map[string]interface{}{"name": "Jane"},
		"id":       1042,
	})
	if err != nil {
		t.Fatalf("SetVar failed: %v", err)
	}

	got, err := eval.Evaluate(context.Background(), "order.customer.name")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got != "Jane" {
		t.Errorf("got %q, want Jane", got)
	}

	got, err = eval.Evaluate(context.Background(), "order.id")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got != "1042" {
		t.Errorf("got %q, want 1042", got)
	}
}

func TestGojaEvaluator_SetAndDeleteVar(t *testing.T) {
	eval := NewGoja()
	if err := eval.SetVar("pageNumber", 2); err != nil {
		t.Fatalf("SetVar failed: %v", err)
	}
	got, err := eval.Evaluate(context.Background(), `"Page " + pageNumber`)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got != "Page 2" {
		t.Errorf("got %q, want Page 2", got)
	}

	if err := eval.DeleteVar("pageNumber"); err != nil {
		t.Fatalf("DeleteVar failed: %v", err)
	}
	if _, err := eval.Evaluate(context.Background(), "pageNumber"); err == nil {
		t.Error("expected reference error after DeleteVar")
	}

	// Deleting an unbound name is not an error.
	if err := eval.DeleteVar("neverSet"); err != nil {
		t.Errorf("DeleteVar(unbound) = %v", err)
	}
}

func TestGojaEvaluator_UnknownPathFails(t *testing.T) {
	eval := NewGoja()
	if _, err := eval.Evaluate(context.Background(), "missing.path"); err == nil {
		t.Error("expected error for unknown path")
	}
}

func TestGojaEvaluator_ContextCancellation(t *testing.T) {
	eval := NewGoja()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := eval.Evaluate(ctx, "1 + 1"); err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestGojaEvaluator_NullAndUndefined(t *testing.T) {
	eval := NewGoja()
	got, err := eval.Evaluate(context.Background(), "null")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got != "" {
		t.Errorf("null rendered as %q, want empty", got)
	}
}
