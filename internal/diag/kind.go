package diag

// Kind classifies a diagnostic by the phase that can produce it.
type Kind uint8

const (
	KindLexical Kind = iota
	KindSyntax
	KindReference
	KindUnsupportedConstruct
	KindSemantic
	KindInput
	KindLimit
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "Lexical"
	case KindSyntax:
		return "Syntax"
	case KindReference:
		return "Reference"
	case KindUnsupportedConstruct:
		return "UnsupportedConstruct"
	case KindSemantic:
		return "Semantic"
	case KindInput:
		return "Input"
	case KindLimit:
		return "Limit"
	}
	return "Unknown"
}
