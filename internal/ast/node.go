package ast

import (
	"cglogic/internal/source"
)

// Kind names the variant of a Node.
type Kind uint8

const (
	KindExpression Kind = iota
	KindConcept
	KindRelation
	KindFunction
	KindContext
	KindNegation
	KindCoreference
	KindName
	KindQuantifier
	KindConnective
	KindEquation
)

func (k Kind) String() string {
	switch k {
	case KindExpression:
		return "Expression"
	case KindConcept:
		return "Concept"
	case KindRelation:
		return "Relation"
	case KindFunction:
		return "Function"
	case KindContext:
		return "Context"
	case KindNegation:
		return "Negation"
	case KindCoreference:
		return "Coreference"
	case KindName:
		return "Name"
	case KindQuantifier:
		return "Quantifier"
	case KindConnective:
		return "Connective"
	case KindEquation:
		return "Equation"
	}
	return "Unknown"
}

// Node is implemented by every tree variant.
type Node interface {
	Span() source.Span
	Pos() source.Position
	Kind() Kind
	Children() []Node
	node()
}

// Base carries the source location shared by all nodes.
type Base struct {
	Sp source.Span
	At source.Position
}

// At builds a Base from a span and its resolved start position.
func At(sp source.Span, pos source.Position) Base {
	return Base{Sp: sp, At: pos}
}

func (b Base) Span() source.Span    { return b.Sp }
func (b Base) Pos() source.Position { return b.At }

// Expression is the root of a parse and the body of negations and contexts.
// Item order is significant.
type Expression struct {
	Base
	Items []Node
}

// Negation wraps a nested graph (CGIF ~[...]) or a sentence (CL (not ...)).
type Negation struct {
	Base
	Body Node
}

func (*Expression) Kind() Kind { return KindExpression }
func (*Negation) Kind() Kind   { return KindNegation }

func (e *Expression) Children() []Node { return e.Items }
func (n *Negation) Children() []Node   { return []Node{n.Body} }

func (*Expression) node() {}
func (*Negation) node()   {}
