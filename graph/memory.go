package graph

// Memory is an in-memory Document. It backs tests, fixtures loaded from
// disk, and callers that assemble a form graph programmatically.
type Memory struct {
	objects map[ObjectRef]Object
	root    Dictionary
	pages   []ObjectRef
	nextNum int
}

// NewMemory returns an empty in-memory document.
func NewMemory() *Memory {
	return &Memory{
		objects: make(map[ObjectRef]Object),
		nextNum: 1,
	}
}

// Add stores obj as an indirect object and returns a reference to it.
func (m *Memory) Add(obj Object) RefObj {
	ref := ObjectRef{Num: m.nextNum}
	m.nextNum++
	m.objects[ref] = obj
	return RefTo(ref)
}

// Put stores obj under an explicit ref, replacing any previous object.
func (m *Memory) Put(ref ObjectRef, obj Object) {
	m.objects[ref] = obj
	if ref.Num >= m.nextNum {
		m.nextNum = ref.Num + 1
	}
}

// SetRoot installs the document catalog.
func (m *Memory) SetRoot(root Dictionary) { m.root = root }

// AddPage stores a page dictionary and appends it to the page sequence.
func (m *Memory) AddPage(page Dictionary) ObjectRef {
	ref := m.Add(page).Ref()
	m.pages = append(m.pages, ref)
	return ref
}

func (m *Memory) Root() (Dictionary, bool) {
	if m.root == nil {
		return nil, false
	}
	return m.root, true
}

func (m *Memory) Resolve(obj Object) Object {
	for obj != nil {
		ref, ok := obj.(Reference)
		if !ok {
			return obj
		}
		obj = m.objects[ref.Ref()]
	}
	return nil
}

func (m *Memory) Pages() []ObjectRef {
	pages := make([]ObjectRef, len(m.pages))
	copy(pages, m.pages)
	return pages
}

func (m *Memory) Page(ref ObjectRef) (Dictionary, bool) {
	dict, ok := m.objects[ref].(Dictionary)
	return dict, ok
}
