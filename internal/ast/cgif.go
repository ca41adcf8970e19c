package ast

// ReferentKind classifies what fills the referent field of a concept.
type ReferentKind uint8

const (
	// ReferentNone: generic concept such as [Cat] or [Cat:].
	ReferentNone ReferentKind = iota
	// ReferentDefining: *x introduces a coreference label.
	ReferentDefining
	// ReferentBound: ?x refers back to a defining label.
	ReferentBound
	// ReferentConstant: an individual name such as John.
	ReferentConstant
)

func (k ReferentKind) String() string {
	switch k {
	case ReferentDefining:
		return "defining"
	case ReferentBound:
		return "bound"
	case ReferentConstant:
		return "constant"
	}
	return "none"
}

// Referent is the payload of the concept's referent field.
// Name holds the label without its sigil or the constant text.
type Referent struct {
	Kind ReferentKind
	Name string
}

// Concept is [Type: referent]. An empty Type means untyped.
// Universal is set by @every; it may be combined with a defining label.
type Concept struct {
	Base
	Type      string
	Referent  Referent
	Universal bool
}

// Binds reports whether the concept introduces a quantified variable:
// a defining label, @every, or a generic referent.
func (c *Concept) Binds() bool {
	return c.Universal || c.Referent.Kind == ReferentDefining || c.Referent.Kind == ReferentNone
}

// Relation is a CGIF conceptual relation (R a b) or a CL atomic sentence.
type Relation struct {
	Base
	Name string
	Args []Node
}

// Function is a CGIF actor (R in... | out...).
type Function struct {
	Base
	Name    string
	Inputs  []Node
	Outputs []Node
}

// Context is a typed concept whose referent is a nested graph: [Situation: ...].
type Context struct {
	Base
	Type string
	Body *Expression
}

// Coreference is a label used as a relation argument; Defining marks *x
// (allowed in actor outputs), otherwise it is a bound ?x.
type Coreference struct {
	Base
	Label    string
	Defining bool
}

// Name is a constant or variable term.
type Name struct {
	Base
	Text string
}

func (*Concept) Kind() Kind     { return KindConcept }
func (*Relation) Kind() Kind    { return KindRelation }
func (*Function) Kind() Kind    { return KindFunction }
func (*Context) Kind() Kind     { return KindContext }
func (*Coreference) Kind() Kind { return KindCoreference }
func (*Name) Kind() Kind        { return KindName }

func (*Concept) Children() []Node    { return nil }
func (r *Relation) Children() []Node { return r.Args }
func (f *Function) Children() []Node {
	out := make([]Node, 0, len(f.Inputs)+len(f.Outputs))
	out = append(out, f.Inputs...)
	return append(out, f.Outputs...)
}
func (c *Context) Children() []Node   { return []Node{c.Body} }
func (*Coreference) Children() []Node { return nil }
func (*Name) Children() []Node        { return nil }

func (*Concept) node()     {}
func (*Relation) node()    {}
func (*Function) node()    {}
func (*Context) node()     {}
func (*Coreference) node() {}
func (*Name) node()        {}
