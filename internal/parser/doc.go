// Package parser implements recursive-descent parsers for CGIF and CL.
//
// Each Parse call builds a fresh parser state: the CGIF CoreferenceMap and the
// CL scope stack live exactly as long as one call, so concurrent calls are
// independent. Parsers never stop at the first problem: they report through
// Options.Reporter, resynchronise and keep going, returning a possibly partial
// tree. Every loop consumes at least one token per iteration.
package parser
