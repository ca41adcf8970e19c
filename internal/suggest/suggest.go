// Package suggest turns diagnostics into human-readable advice.
//
// Suggestions are produced on demand from a finished diagnostic and never
// influence parsing. An empty result is valid.
package suggest

import (
	"slices"
	"strings"

	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/token"
)

// MaxKeywordDistance bounds the edit distance for "did you mean" hints.
const MaxKeywordDistance = 2

// For returns advice for d in the vocabulary of notation n.
// Suggestions already attached to d come first.
func For(n dialect.Notation, d diag.Diagnostic) []string {
	out := slices.Clone(d.Suggestions)
	var extra []string
	if n == dialect.CL {
		extra = forCL(d)
	} else {
		extra = forCGIF(d)
	}
	for _, s := range append(extra, common(d)...) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func common(d diag.Diagnostic) []string {
	switch d.Code {
	case diag.InpInvalidType:
		return []string{"Use 'CGIF' or 'CL' as the expression type"}
	case diag.SemArityMismatch:
		if w := firstQuoted(d.Message); w != "" {
			return []string{"use '" + w + "' with the same number of arguments everywhere"}
		}
	case diag.SemDuplicateQuantVar:
		return []string{"rename one of the variables"}
	case diag.UnsContext, diag.UnsFunction:
		return []string{"only concepts, relations and negations translate to CL"}
	case diag.UnsEmptyGraph:
		return []string{"remove the empty '~[]'"}
	case diag.UnsNotation:
		return []string{"translate CGIF trees to CL and CL trees to CGIF"}
	case diag.UnsEquation:
		return []string{"state the identity as a relation, for example (Same a b)"}
	}
	return nil
}

func forCGIF(d diag.Diagnostic) []string {
	switch d.Code {
	case diag.LexUnknownChar:
		return []string{"CGIF uses '[...]' for concepts, '(...)' for relations and '~[...]' for negation"}
	case diag.LexUnterminatedComment:
		return []string{"close the comment with '*/'"}
	case diag.LexIncompleteLabel:
		return []string{"a label needs a name, for example *x or ?x"}
	case diag.SynExpectRBracket:
		return []string{"add the missing ']'"}
	case diag.SynExpectRParen:
		return []string{"add the missing ')'"}
	case diag.SynExpectLBracket:
		return []string{"negation applies to a graph: write ~[ ... ]"}
	case diag.SynBadReferent:
		return []string{"a referent is *label, ?label, @every or a name"}
	case diag.SynExpectIdentifier:
		return []string{"a relation starts with its name: (Name arg ...)"}
	case diag.RefUndefinedLabel:
		if l := firstQuoted(d.Message); l != "" {
			return []string{"define the label first, for example [Thing: *" + l + "]"}
		}
	case diag.RefDuplicateLabel:
		if l := firstQuoted(d.Message); l != "" {
			return []string{"use ?" + l + " to refer to the existing concept", "rename this label"}
		}
	case diag.RefOutOfScope:
		if l := firstQuoted(d.Message); l != "" {
			return []string{"move the reference to ?" + l + " inside the graph that defines *" + l}
		}
	}
	return nil
}

func forCL(d diag.Diagnostic) []string {
	var out []string
	switch d.Code {
	case diag.LexUnknownChar:
		out = append(out, "CL sentences are written as (predicate term ...) or (operator sentence ...)")
	case diag.SynExpectRParen:
		out = append(out, "add the missing ')'")
	case diag.SynExpectVarList, diag.SynEmptyVarList:
		out = append(out, "declare variables in parentheses: (exists (x) ...)")
	case diag.SynBadArity:
		if form, ok := arityForms[firstQuoted(d.Message)]; ok {
			out = append(out, "write it as "+form)
		}
	case diag.SynExpectSentence:
		out = append(out, "a sentence is written in parentheses: (P a)")
	case diag.RefFreeVariable:
		if v := firstQuoted(d.Message); v != "" {
			out = append(out, "bind '"+v+"' with (exists ("+v+") ...) or (forall ("+v+") ...)")
		}
	case diag.SynUnexpectedToken:
		if strings.HasPrefix(d.Message, "function terms") {
			out = append(out, "replace the nested term with a quantified variable")
		}
	}
	if d.Kind() != diag.KindSyntax {
		return out
	}
	for _, w := range quoted(d.Message) {
		if kw, ok := Keyword(w); ok {
			out = append(out, "did you mean '"+kw+"'?")
			break
		}
	}
	return out
}

var arityForms = map[string]string{
	"not": "(not S)",
	"if":  "(if A B)",
	"iff": "(iff A B)",
	"and": "(and A B ...)",
	"or":  "(or A B ...)",
	"=":   "(= a b)",
}

// Keyword returns the closest CL keyword to word, if any is close enough.
// Exact keywords are not suggested; a case-only difference always is.
func Keyword(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	if _, ok := token.LookupKeyword(word); ok {
		return "", false
	}
	lower := strings.ToLower(word)
	if _, ok := token.LookupKeyword(lower); ok {
		return lower, true
	}
	best, bestDist := "", MaxKeywordDistance+1
	for _, kw := range token.Keywords() {
		// короткие слова: расстояние не больше половины длины
		limit := min(MaxKeywordDistance, len(kw)/2)
		if d := distance(lower, kw); d <= limit && d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best, best != ""
}

// quoted returns the '...' fragments of msg in order.
func quoted(msg string) []string {
	var out []string
	for {
		i := strings.IndexByte(msg, '\'')
		if i < 0 {
			return out
		}
		j := strings.IndexByte(msg[i+1:], '\'')
		if j < 0 {
			return out
		}
		out = append(out, msg[i+1:i+1+j])
		msg = msg[i+j+2:]
	}
}

func firstQuoted(msg string) string {
	if q := quoted(msg); len(q) > 0 {
		return q[0]
	}
	return ""
}
