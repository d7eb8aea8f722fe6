package graph

// Resolver-aware typed accessors. Every entry in a form dictionary may be an
// indirect reference, so reads go through Document.Resolve before the type
// assertion.

// DictEntry reads key from dict and resolves it.
func DictEntry(doc Document, dict Dictionary, key string) (Object, bool) {
	obj, ok := dict.Get(key)
	if !ok {
		return nil, false
	}
	resolved := doc.Resolve(obj)
	if resolved == nil {
		return nil, false
	}
	return resolved, true
}

// NameEntry reads key as a Name value.
func NameEntry(doc Document, dict Dictionary, key string) (string, bool) {
	obj, ok := DictEntry(doc, dict, key)
	if !ok {
		return "", false
	}
	name, ok := obj.(Name)
	if !ok {
		return "", false
	}
	return name.Value(), true
}

// StringEntry reads key as a byte string.
func StringEntry(doc Document, dict Dictionary, key string) ([]byte, bool) {
	obj, ok := DictEntry(doc, dict, key)
	if !ok {
		return nil, false
	}
	str, ok := obj.(String)
	if !ok {
		return nil, false
	}
	return str.Value(), true
}

// DictValue reads key as a dictionary.
func DictValue(doc Document, dict Dictionary, key string) (Dictionary, bool) {
	obj, ok := DictEntry(doc, dict, key)
	if !ok {
		return nil, false
	}
	d, ok := obj.(Dictionary)
	return d, ok
}

// ArrayValue reads key as an array.
func ArrayValue(doc Document, dict Dictionary, key string) (Array, bool) {
	obj, ok := DictEntry(doc, dict, key)
	if !ok {
		return nil, false
	}
	a, ok := obj.(Array)
	return a, ok
}

// RefEntry reads key as an indirect reference without resolving it.
func RefEntry(dict Dictionary, key string) (ObjectRef, bool) {
	obj, ok := dict.Get(key)
	if !ok {
		return ObjectRef{}, false
	}
	ref, ok := obj.(Reference)
	if !ok {
		return ObjectRef{}, false
	}
	return ref.Ref(), true
}

// FloatValue extracts a numeric object's value.
func FloatValue(obj Object) (float64, bool) {
	num, ok := obj.(Number)
	if !ok {
		return 0, false
	}
	return num.Float(), true
}

// RectEntry reads key as a four-element numeric array.
func RectEntry(doc Document, dict Dictionary, key string) ([4]float64, bool) {
	arr, ok := ArrayValue(doc, dict, key)
	if !ok || arr.Len() != 4 {
		return [4]float64{}, false
	}
	var rect [4]float64
	for i := 0; i < 4; i++ {
		obj, _ := arr.Get(i)
		f, ok := FloatValue(doc.Resolve(obj))
		if !ok {
			return [4]float64{}, false
		}
		rect[i] = f
	}
	return rect, true
}
