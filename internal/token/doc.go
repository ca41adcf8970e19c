// Package token defines lexical token kinds and trivia shared by the CGIF and CL tokenizers.
// Invariants:
//   - Token.Text is exactly the source slice covered by Token.Span.
//   - Whitespace and comments never appear in the token stream; they are kept as
//     Leading trivia of the next token (EOF included), so the spans of all tokens
//     plus their trivia cover the input contiguously.
//   - A character no lexical class accepts becomes one Invalid token of exactly
//     one character; the tokenizer never fails.
//   - CL keywords are case-sensitive and lowercase, as in CLIF.
package token
