package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates a character no lexical class accepts.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a generic identifier (type labels, relation names, constants, CL names).
	Ident

	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Colon separates a CGIF type label from its referent.
	Colon // :
	// Pipe separates the inputs of a CGIF actor from its outputs.
	Pipe // |
	// Tilde is the CGIF negation sigil.
	Tilde // ~
	// Equals is the CL equation operator.
	Equals // =

	// DefLabel is a CGIF defining coreference label.
	DefLabel // *x
	// BoundLabel is a CGIF bound coreference label.
	BoundLabel // ?x
	// Every is the CGIF universal quantifier.
	Every // @every

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwIff represents the 'iff' keyword.
	KwIff // iff
	// KwExists represents the 'exists' keyword.
	KwExists // exists
	// KwForall represents the 'forall' keyword.
	KwForall // forall

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LParen:     "LParen",
	RParen:     "RParen",
	Colon:      "Colon",
	Pipe:       "Pipe",
	Tilde:      "Tilde",
	Equals:     "Equals",
	DefLabel:   "DefLabel",
	BoundLabel: "BoundLabel",
	Every:      "Every",
	KwAnd:      "KwAnd",
	KwOr:       "KwOr",
	KwNot:      "KwNot",
	KwIf:       "KwIf",
	KwIff:      "KwIff",
	KwExists:   "KwExists",
	KwForall:   "KwForall",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether k marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// Describe returns the spelling used in diagnostics ("'['", "identifier", ...).
func (k Kind) Describe() string {
	switch k {
	case Invalid:
		return "invalid character"
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Colon:
		return "':'"
	case Pipe:
		return "'|'"
	case Tilde:
		return "'~'"
	case Equals:
		return "'='"
	case DefLabel:
		return "defining label"
	case BoundLabel:
		return "bound label"
	case Every:
		return "'@every'"
	case KwAnd, KwOr, KwNot, KwIf, KwIff, KwExists, KwForall:
		return "'" + keywordSpelling[k] + "'"
	}
	return k.String()
}
