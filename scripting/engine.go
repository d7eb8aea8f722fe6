package scripting

import "context"

// Evaluator resolves dotted-path expressions against host-provided data.
// The fill pipeline injects the current page number as a variable for the
// duration of each evaluation; implementations must support setting and
// removing globals independently of Evaluate calls.
type Evaluator interface {
	// Evaluate runs a dotted-path expression and returns its value rendered
	// as text.
	Evaluate(ctx context.Context, expr string) (string, error)

	// SetVar binds a global variable in the evaluation context.
	SetVar(name string, value interface{}) error

	// DeleteVar removes a global variable from the evaluation context.
	// Removing an unbound name is not an error.
	DeleteVar(name string) error
}
