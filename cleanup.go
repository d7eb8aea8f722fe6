package formfill

import (
	"github.com/wudi/formfill/fields"
	"github.com/wudi/formfill/graph"
	"github.com/wudi/formfill/observability"
)

// cleanup removes each processed widget's reference from the form's field
// collection and from its own page's annotation collection. Removal is
// scoped to the (field, page) pair the widget actually belongs to, so
// painting the same field onto a page stack does not over-remove. It is
// best-effort: a graph without back-references just keeps its annotations.
func (e *Engine) cleanup(specs []fields.Spec) {
	root, ok := e.doc.Root()
	if !ok {
		return
	}
	form, ok := graph.DictValue(e.doc, root, "AcroForm")
	if !ok {
		return
	}
	collection, _ := graph.ArrayValue(e.doc, form, "Fields")

	for _, spec := range specs {
		if !spec.HasFieldRef {
			e.log.Debug("cleanup skipped: field has no back-reference",
				observability.String("field", spec.Name))
			continue
		}
		if collection != nil {
			removeRef(collection, spec.FieldRef)
		}
		if spec.HasPageRef {
			if page, ok := e.doc.Page(spec.PageRef); ok {
				if annots, ok := graph.ArrayValue(e.doc, page, "Annots"); ok {
					removeRef(annots, spec.FieldRef)
				}
			}
		}
	}
}

// removeRef deletes every element of arr referencing target.
func removeRef(arr graph.Array, target graph.ObjectRef) {
	for i := arr.Len() - 1; i >= 0; i-- {
		obj, _ := arr.Get(i)
		if ref, ok := obj.(graph.Reference); ok && ref.Ref() == target {
			arr.Remove(i)
		}
	}
}
