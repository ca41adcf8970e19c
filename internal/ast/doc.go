// Package ast defines the tree produced by the CGIF and CL parsers and by the
// CGIF -> CL translator.
//
// Node is a closed sum type: every variant lives in this package and
// implements the unexported node() marker, so consumers switch over the
// concrete types exhaustively. Trees are acyclic and never mutated after
// construction. Coreference links are not stored as pointers: a bound label
// keeps only its label text and is resolved by name in a call-scoped table.
package ast
