// Package dialect names the two supported notations (CGIF and CL) and picks
// one for an input: from an explicit name, from the file extension, or by
// scoring lexical evidence in the content when neither is available.
//
// Detection never changes how a notation is parsed; it only selects which
// tokenizer and parser run.
package dialect
