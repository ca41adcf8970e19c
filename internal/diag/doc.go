// Package diag defines the diagnostic model shared by the tokenizers, parsers,
// translator and validator.
//
// # Data model
//
// Diagnostic is the central record (the "Error" of a processing result):
//
//   - Kind – closed classification (Lexical, Syntax, Reference,
//     UnsupportedConstruct, Semantic, Input) derived from Code.
//   - Code – compact numeric identifier grouped by family (see codes.go) with a
//     stable string form such as SYN2001.
//   - Severity – Error, or Info for the TooManyDiagnostics note.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – the source.Span pointing to the issue; Pos is the resolved
//     line/column/offset of its start.
//   - Suggestions – ordered advisory strings, empty by default.
//
// # Emitting diagnostics
//
// Phases never return domain failures as Go errors. They call a Reporter,
// usually a BagReporter feeding a Bag. A Bag has a capacity limit; once it is
// reached a single TooManyDiagnostics note is appended and further
// diagnostics are only counted, so nothing disappears without a trace.
//
// Package diag does no formatting beyond the one-line Short form used by
// tests and the CLI; rich rendering lives in internal/diagfmt.
package diag
