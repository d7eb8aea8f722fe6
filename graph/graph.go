// Package graph models the loosely-typed object graph an interactive form
// lives in. The fill pipeline only ever touches the graph through the
// Document accessor, so callers can back it with any PDF object store.
package graph

import "fmt"

// ObjectRef uniquely identifies an indirect object in the graph.
type ObjectRef struct {
	Num int
	Gen int
}

func (r ObjectRef) String() string { return fmt.Sprintf("%d %d R", r.Num, r.Gen) }

// Object is the base interface for all graph values.
type Object interface {
	Type() string
	IsIndirect() bool
}

// Dictionary is a keyed collection of objects.
type Dictionary interface {
	Object
	Get(key string) (Object, bool)
	Set(key string, value Object)
	Keys() []string
	Len() int
}

// Array is an ordered collection of objects.
type Array interface {
	Object
	Get(index int) (Object, bool)
	Len() int
	Append(obj Object)
	Remove(index int)
}

// Name is a symbolic identifier (field types, appearance states, ...).
type Name interface {
	Object
	Value() string
}

// String is a byte string; field names and values may carry a UTF-16BE BOM.
type String interface {
	Object
	Value() []byte
}

// Number is a numeric value.
type Number interface {
	Object
	Int() int64
	Float() float64
	IsInteger() bool
}

// Boolean is a true/false value.
type Boolean interface {
	Object
	Value() bool
}

// Reference is an indirect pointer to another object.
type Reference interface {
	Object
	Ref() ObjectRef
}

// Document is the object-graph access capability the pipeline consumes:
// dereference indirect references, reach the catalog, and enumerate pages in
// order with a stable per-page identity usable as a lookup key.
type Document interface {
	// Root returns the document catalog, or false if the graph has none.
	Root() (Dictionary, bool)

	// Resolve follows indirect references until a direct object is reached.
	// Resolving nil or a dangling reference yields nil.
	Resolve(obj Object) Object

	// Pages enumerates the document's pages in document order.
	Pages() []ObjectRef

	// Page returns the page dictionary behind a ref returned by Pages.
	Page(ref ObjectRef) (Dictionary, bool)
}
