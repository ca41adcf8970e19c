package ast

// QuantKind distinguishes existential from universal binders.
type QuantKind uint8

const (
	Exists QuantKind = iota
	Forall
)

func (k QuantKind) String() string {
	if k == Forall {
		return "forall"
	}
	return "exists"
}

// Var is a quantified variable; Type is set for CL typed bindings (x Person).
type Var struct {
	Name string
	Type string
}

// Quantifier is (exists (vars) body) or (forall (vars) body).
type Quantifier struct {
	Base
	Quant QuantKind
	Vars  []Var
	Body  Node
}

// ConnOp is a CL boolean connective.
type ConnOp uint8

const (
	And ConnOp = iota
	Or
	If
	Iff
)

func (op ConnOp) String() string {
	switch op {
	case Or:
		return "or"
	case If:
		return "if"
	case Iff:
		return "iff"
	}
	return "and"
}

// Connective is (and ...), (or ...), (if a b) or (iff a b).
type Connective struct {
	Base
	Op       ConnOp
	Operands []Node
}

// Equation is (= left right).
type Equation struct {
	Base
	Left  Node
	Right Node
}

func (*Quantifier) Kind() Kind { return KindQuantifier }
func (*Connective) Kind() Kind { return KindConnective }
func (*Equation) Kind() Kind   { return KindEquation }

func (q *Quantifier) Children() []Node { return []Node{q.Body} }
func (c *Connective) Children() []Node { return c.Operands }
func (e *Equation) Children() []Node   { return []Node{e.Left, e.Right} }

func (*Quantifier) node() {}
func (*Connective) node() {}
func (*Equation) node()   {}
