package ast

import (
	"strings"
)

// FormatCGIF renders a tree in canonical CGIF text: single spaces,
// "[Type: referent]" concepts, "~[...]" negations.
func FormatCGIF(n Node) string {
	var b strings.Builder
	writeCGIF(&b, n)
	return b.String()
}

// FormatCL renders a tree in canonical CLIF text. Top-level sentences of an
// Expression are separated by newlines.
func FormatCL(n Node) string {
	var b strings.Builder
	writeCL(&b, n)
	return b.String()
}

func writeCGIF(b *strings.Builder, n Node) {
	if IsNil(n) {
		return
	}
	switch x := n.(type) {
	case *Expression:
		for i, it := range x.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeCGIF(b, it)
		}
	case *Concept:
		b.WriteByte('[')
		b.WriteString(x.Type)
		ref := referentText(x)
		if ref != "" {
			b.WriteString(": ")
			b.WriteString(ref)
		}
		b.WriteByte(']')
	case *Relation:
		b.WriteByte('(')
		b.WriteString(x.Name)
		for _, a := range x.Args {
			b.WriteByte(' ')
			writeCGIF(b, a)
		}
		b.WriteByte(')')
	case *Function:
		b.WriteByte('(')
		b.WriteString(x.Name)
		for _, a := range x.Inputs {
			b.WriteByte(' ')
			writeCGIF(b, a)
		}
		b.WriteString(" |")
		for _, a := range x.Outputs {
			b.WriteByte(' ')
			writeCGIF(b, a)
		}
		b.WriteByte(')')
	case *Context:
		b.WriteByte('[')
		b.WriteString(x.Type)
		b.WriteString(": ")
		writeCGIF(b, x.Body)
		b.WriteByte(']')
	case *Negation:
		b.WriteString("~[")
		writeCGIF(b, x.Body)
		b.WriteByte(']')
	case *Coreference:
		if x.Defining {
			b.WriteByte('*')
		} else {
			b.WriteByte('?')
		}
		b.WriteString(x.Label)
	case *Name:
		b.WriteString(x.Text)
	default:
		// CL-only узлы в CGIF не выражаются; пишем их как CL
		writeCL(b, n)
	}
}

func referentText(c *Concept) string {
	var parts []string
	if c.Universal {
		parts = append(parts, "@every")
	}
	switch c.Referent.Kind {
	case ReferentDefining:
		parts = append(parts, "*"+c.Referent.Name)
	case ReferentBound:
		parts = append(parts, "?"+c.Referent.Name)
	case ReferentConstant:
		parts = append(parts, c.Referent.Name)
	}
	return strings.Join(parts, " ")
}

func writeCL(b *strings.Builder, n Node) {
	if IsNil(n) {
		return
	}
	switch x := n.(type) {
	case *Expression:
		for i, it := range x.Items {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeCL(b, it)
		}
	case *Relation:
		b.WriteByte('(')
		b.WriteString(x.Name)
		for _, a := range x.Args {
			b.WriteByte(' ')
			writeCL(b, a)
		}
		b.WriteByte(')')
	case *Equation:
		b.WriteString("(= ")
		writeCL(b, x.Left)
		b.WriteByte(' ')
		writeCL(b, x.Right)
		b.WriteByte(')')
	case *Connective:
		b.WriteByte('(')
		b.WriteString(x.Op.String())
		for _, o := range x.Operands {
			b.WriteByte(' ')
			writeCL(b, o)
		}
		b.WriteByte(')')
	case *Negation:
		b.WriteString("(not ")
		writeCL(b, x.Body)
		b.WriteByte(')')
	case *Quantifier:
		b.WriteByte('(')
		b.WriteString(x.Quant.String())
		b.WriteString(" (")
		for i, v := range x.Vars {
			if i > 0 {
				b.WriteByte(' ')
			}
			if v.Type != "" {
				b.WriteString("(" + v.Name + " " + v.Type + ")")
			} else {
				b.WriteString(v.Name)
			}
		}
		b.WriteString(") ")
		writeCL(b, x.Body)
		b.WriteByte(')')
	case *Name:
		b.WriteString(x.Text)
	case *Coreference:
		b.WriteString(x.Label)
	default:
		writeCGIF(b, n)
	}
}
