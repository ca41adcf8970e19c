package ast

// Walk visits n and its descendants in pre-order, left to right.
// If fn returns false the children of that node are skipped. Nil nodes are ignored.
func Walk(n Node, fn func(Node) bool) {
	if IsNil(n) {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// Count returns the number of nodes reachable from n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node) bool {
		total++
		return true
	})
	return total
}

// IsNil reports a nil interface or a typed nil pointer stored in it.
func IsNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Expression:
		return v == nil
	case *Negation:
		return v == nil
	case *Concept:
		return v == nil
	case *Relation:
		return v == nil
	case *Function:
		return v == nil
	case *Context:
		return v == nil
	case *Coreference:
		return v == nil
	case *Name:
		return v == nil
	case *Quantifier:
		return v == nil
	case *Connective:
		return v == nil
	case *Equation:
		return v == nil
	}
	return false
}
