package scripting

import (
	"context"
	"fmt"

	"github.com/dop251/goja"
)

// GojaEvaluator evaluates expressions on a goja JavaScript runtime. Hosts
// bind their data model as globals (typically one object per record) and
// field names address into it as dotted paths.
type GojaEvaluator struct {
	vm *goja.Runtime
}

// NewGoja returns an evaluator with an empty global namespace.
func NewGoja() *GojaEvaluator {
	return &GojaEvaluator{vm: goja.New()}
}

// Runtime exposes the underlying VM for advanced bindings.
func (e *GojaEvaluator) Runtime() *goja.Runtime { return e.vm }

func (e *GojaEvaluator) Evaluate(ctx context.Context, expr string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(expr)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return "", cause
			}
			return "", context.Canceled
		}
		return "", err
	}
	return stringify(val), nil
}

func (e *GojaEvaluator) SetVar(name string, value interface{}) error {
	return e.vm.Set(name, value)
}

func (e *GojaEvaluator) DeleteVar(name string) error {
	return e.vm.GlobalObject().Delete(name)
}

func stringify(val goja.Value) string {
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return ""
	}
	exported := val.Export()
	if s, ok := exported.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", exported)
}
