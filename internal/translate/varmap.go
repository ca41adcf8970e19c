package translate

import (
	"strconv"

	"cglogic/internal/ast"
)

// anonymousPrefix names variables of binders without a label ([Cat], [T: @every]).
const anonymousPrefix = "x"

// VariableMap assigns CL variable names to binding concepts for one translation.
type VariableMap struct {
	byNode  map[ast.Node]string
	byLabel map[string]string
	counter map[string]int
	taken   map[string]struct{}
	order   []string
}

func newVariableMap(taken map[string]struct{}) *VariableMap {
	return &VariableMap{
		byNode:  make(map[ast.Node]string),
		byLabel: make(map[string]string),
		counter: make(map[string]int),
		taken:   taken,
	}
}

// assign gives n a fresh variable. An empty label means anonymous.
// The second result is false when label is already mapped (duplicate definition).
func (m *VariableMap) assign(n ast.Node, label string) (string, bool) {
	if label != "" {
		if _, dup := m.byLabel[label]; dup {
			return "", false
		}
	}
	prefix := label
	if prefix == "" {
		prefix = anonymousPrefix
	}
	var name string
	for {
		m.counter[prefix]++
		name = prefix + strconv.Itoa(m.counter[prefix])
		if _, used := m.taken[name]; !used {
			break
		}
	}
	m.taken[name] = struct{}{}
	m.byNode[n] = name
	if label != "" {
		m.byLabel[label] = name
	}
	m.order = append(m.order, name)
	return name, true
}

// Of returns the variable assigned to binder n.
func (m *VariableMap) Of(n ast.Node) (string, bool) {
	v, ok := m.byNode[n]
	return v, ok
}

// Label returns the variable assigned to a defining label.
func (m *VariableMap) Label(label string) (string, bool) {
	v, ok := m.byLabel[label]
	return v, ok
}

// Names returns the generated names in assignment order.
func (m *VariableMap) Names() []string {
	return m.order
}
