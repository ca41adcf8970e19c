package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"cglogic/internal/ast"
	"cglogic/internal/source"
)

// NodeOutput is the JSON shape of one tree node.
type NodeOutput struct {
	Type     string          `json:"type"`
	Span     source.Span     `json:"span"`
	Pos      source.Position `json:"pos"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []NodeOutput    `json:"children,omitempty"`
}

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatTreePretty prints the tree with box-drawing guides, one node per line:
//
//	Expression (1:1)
//	└─ Concept Person *x (1:1)
func FormatTreePretty(w io.Writer, root ast.Node) error {
	if ast.IsNil(root) {
		_, err := fmt.Fprintln(w, "<nil>")
		return err
	}
	var b strings.Builder
	writeTree(&b, buildTreeNode(root), "", "", "")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTree(b *strings.Builder, n *treeNode, lead, branch, indent string) {
	b.WriteString(lead + branch + n.label + "\n")
	for i, c := range n.children {
		if i == len(n.children)-1 {
			writeTree(b, c, lead+indent, "└─ ", "   ")
		} else {
			writeTree(b, c, lead+indent, "├─ ", "│  ")
		}
	}
}

func buildTreeNode(n ast.Node) *treeNode {
	if ast.IsNil(n) {
		return &treeNode{label: "<nil>"}
	}
	label := n.Kind().String()
	if detail := nodeDetail(n); detail != "" {
		label += " " + detail
	}
	if pos := n.Pos(); pos.IsValid() {
		label += " (" + pos.String() + ")"
	}
	node := &treeNode{label: label}
	for _, c := range treeChildren(n) {
		node.children = append(node.children, buildTreeNode(c))
	}
	return node
}

// treeChildren: как Children, но аргументы актора делятся на входы и выходы.
func treeChildren(n ast.Node) []ast.Node {
	if f, ok := n.(*ast.Function); ok {
		return append(append([]ast.Node(nil), f.Inputs...), f.Outputs...)
	}
	return n.Children()
}

func nodeDetail(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Concept:
		parts := []string{x.Type}
		if x.Type == "" {
			parts[0] = "<untyped>"
		}
		if x.Universal {
			parts = append(parts, "@every")
		}
		switch x.Referent.Kind {
		case ast.ReferentDefining:
			parts = append(parts, "*"+x.Referent.Name)
		case ast.ReferentBound:
			parts = append(parts, "?"+x.Referent.Name)
		case ast.ReferentConstant:
			parts = append(parts, x.Referent.Name)
		}
		return strings.Join(parts, " ")
	case *ast.Relation:
		return x.Name
	case *ast.Function:
		return fmt.Sprintf("%s in=%d out=%d", x.Name, len(x.Inputs), len(x.Outputs))
	case *ast.Context:
		return x.Type
	case *ast.Coreference:
		if x.Defining {
			return "*" + x.Label
		}
		return "?" + x.Label
	case *ast.Name:
		return x.Text
	case *ast.Quantifier:
		vars := make([]string, len(x.Vars))
		for i, v := range x.Vars {
			vars[i] = v.Name
			if v.Type != "" {
				vars[i] += ":" + v.Type
			}
		}
		return x.Quant.String() + " (" + strings.Join(vars, " ") + ")"
	case *ast.Connective:
		return x.Op.String()
	}
	return ""
}

// FormatTreeJSON writes the tree as nested NodeOutput values.
func FormatTreeJSON(w io.Writer, root ast.Node) error {
	if ast.IsNil(root) {
		return encode(w, nil)
	}
	return encode(w, BuildNodeOutput(root))
}

// BuildNodeOutput converts a tree for JSON encoding.
func BuildNodeOutput(n ast.Node) NodeOutput {
	out := NodeOutput{
		Type: n.Kind().String(),
		Span: n.Span(),
		Pos:  n.Pos(),
	}
	switch x := n.(type) {
	case *ast.Concept:
		out.Fields = map[string]any{
			"type":      x.Type,
			"referent":  x.Referent.Kind.String(),
			"universal": x.Universal,
		}
		if x.Referent.Name != "" {
			out.Fields["name"] = x.Referent.Name
		}
	case *ast.Relation:
		out.Fields = map[string]any{"name": x.Name, "arity": len(x.Args)}
	case *ast.Function:
		out.Fields = map[string]any{"name": x.Name, "inputs": len(x.Inputs), "outputs": len(x.Outputs)}
	case *ast.Context:
		out.Fields = map[string]any{"type": x.Type}
	case *ast.Coreference:
		out.Fields = map[string]any{"label": x.Label, "defining": x.Defining}
	case *ast.Name:
		out.Fields = map[string]any{"text": x.Text}
	case *ast.Quantifier:
		vars := make([]map[string]string, len(x.Vars))
		for i, v := range x.Vars {
			vars[i] = map[string]string{"name": v.Name}
			if v.Type != "" {
				vars[i]["type"] = v.Type
			}
		}
		out.Fields = map[string]any{"quantifier": x.Quant.String(), "vars": vars}
	case *ast.Connective:
		out.Fields = map[string]any{"op": x.Op.String()}
	}
	for _, c := range treeChildren(n) {
		if ast.IsNil(c) {
			continue
		}
		out.Children = append(out.Children, BuildNodeOutput(c))
	}
	return out
}
