package parser

import (
	"cglogic/internal/ast"
	"cglogic/internal/source"
)

// Definition is the node that first introduced a coreference label.
type Definition struct {
	Node ast.Node
	Span source.Span
}

// CoreferenceMap indexes defining labels for the duration of one CGIF parse.
// It only points into the tree; ownership stays with the tree.
type CoreferenceMap struct {
	defs  map[string]Definition
	order []string
}

func NewCoreferenceMap() *CoreferenceMap {
	return &CoreferenceMap{defs: make(map[string]Definition)}
}

// Define registers label. On a duplicate the earlier definition is kept
// and the previous entry is returned with ok=false.
func (m *CoreferenceMap) Define(label string, def Definition) (prev Definition, ok bool) {
	if prev, dup := m.defs[label]; dup {
		return prev, false
	}
	m.defs[label] = def
	m.order = append(m.order, label)
	return def, true
}

// Lookup returns the definition of label, if any was seen so far.
func (m *CoreferenceMap) Lookup(label string) (Definition, bool) {
	d, ok := m.defs[label]
	return d, ok
}

// Labels returns the defined labels in definition order.
func (m *CoreferenceMap) Labels() []string {
	return m.order
}

func (m *CoreferenceMap) Len() int {
	return len(m.defs)
}
