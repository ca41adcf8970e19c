// Package translate converts a CGIF tree into an equivalent CL tree and
// back (ToCGIF).
//
// Translation runs in two passes over a read-only input tree. The first pass
// walks the tree in document order and assigns a CL variable to every binding
// concept (VariableMap). The second pass rebuilds the graph as CL sentences,
// hoisting each binder into an exists/forall that scopes over the rest of its
// graph. Negations and contexts bound that hoisting: a label defined inside
// ~[...] is only visible inside the resulting (not ...).
//
// Contexts and actors have no CL counterpart here and are rejected rather
// than approximated. On any error the result carries no tree.
//
// ToCGIF goes the other way in one pass. Quantified variables become
// concepts with defining labels and a unary atom (T x) becomes the type of
// x's concept. (forall (x) (if (T x) B)) is written [T: @every *x] B;
// or, if and iff become nested negations. Equations have no CGIF form.
package translate
