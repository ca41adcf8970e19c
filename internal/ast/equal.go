package ast

// Equal reports whether a and b are structurally identical, ignoring
// source locations.
func Equal(a, b Node) bool {
	an, bn := IsNil(a), IsNil(b)
	if an || bn {
		return an == bn
	}
	switch x := a.(type) {
	case *Expression:
		y, ok := b.(*Expression)
		return ok && equalList(x.Items, y.Items)
	case *Negation:
		y, ok := b.(*Negation)
		return ok && Equal(x.Body, y.Body)
	case *Concept:
		y, ok := b.(*Concept)
		return ok && x.Type == y.Type && x.Referent == y.Referent && x.Universal == y.Universal
	case *Relation:
		y, ok := b.(*Relation)
		return ok && x.Name == y.Name && equalList(x.Args, y.Args)
	case *Function:
		y, ok := b.(*Function)
		return ok && x.Name == y.Name && equalList(x.Inputs, y.Inputs) && equalList(x.Outputs, y.Outputs)
	case *Context:
		y, ok := b.(*Context)
		return ok && x.Type == y.Type && Equal(x.Body, y.Body)
	case *Coreference:
		y, ok := b.(*Coreference)
		return ok && x.Label == y.Label && x.Defining == y.Defining
	case *Name:
		y, ok := b.(*Name)
		return ok && x.Text == y.Text
	case *Quantifier:
		y, ok := b.(*Quantifier)
		if !ok || x.Quant != y.Quant || len(x.Vars) != len(y.Vars) {
			return false
		}
		for i := range x.Vars {
			if x.Vars[i] != y.Vars[i] {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	case *Connective:
		y, ok := b.(*Connective)
		return ok && x.Op == y.Op && equalList(x.Operands, y.Operands)
	case *Equation:
		y, ok := b.(*Equation)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

func equalList(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
