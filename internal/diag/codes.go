package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar         Code = 1001
	LexUnterminatedComment Code = 1002
	LexIncompleteLabel     Code = 1003

	// Синтаксические
	SynUnexpectedToken  Code = 2001
	SynExpectRBracket   Code = 2002
	SynExpectRParen     Code = 2003
	SynExpectIdentifier Code = 2004
	SynExpectLBracket   Code = 2005
	SynBadReferent      Code = 2006
	SynBadArity         Code = 2007
	SynExpectVarList    Code = 2008
	SynEmptyVarList     Code = 2009
	SynExpectSentence   Code = 2010
	SynUnexpectedEOF    Code = 2011

	// Ссылки и области видимости
	RefDuplicateLabel Code = 3001
	RefUndefinedLabel Code = 3002
	RefFreeVariable   Code = 3003
	RefOutOfScope     Code = 3004

	// Распознано, но не поддерживается
	UnsContext    Code = 4001
	UnsFunction   Code = 4002
	UnsNotation   Code = 4003
	UnsEmptyGraph Code = 4004
	UnsEquation   Code = 4005

	// Семантика (валидатор)
	SemArityMismatch     Code = 5001
	SemEmptyConnective   Code = 5002
	SemDuplicateQuantVar Code = 5003
	SemMissingChild      Code = 5004

	// Вход фасада
	InpInvalidType Code = 6001

	TooManyDiagnostics Code = 9001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexUnknownChar:         "Unknown character",
	LexUnterminatedComment: "Unterminated comment",
	LexIncompleteLabel:     "Label without a name",

	SynUnexpectedToken:  "Unexpected token",
	SynExpectRBracket:   "Expected ']'",
	SynExpectRParen:     "Expected ')'",
	SynExpectIdentifier: "Expected identifier",
	SynExpectLBracket:   "Expected '['",
	SynBadReferent:      "Invalid referent",
	SynBadArity:         "Wrong number of operands",
	SynExpectVarList:    "Expected variable list",
	SynEmptyVarList:     "Empty variable list",
	SynExpectSentence:   "Expected sentence",
	SynUnexpectedEOF:    "Unexpected end of input",

	RefDuplicateLabel: "Duplicate defining label",
	RefUndefinedLabel: "Undefined reference",
	RefFreeVariable:   "Free variable",
	RefOutOfScope:     "Label used outside its scope",

	UnsContext:    "Contexts are not supported",
	UnsFunction:   "Functions are not supported",
	UnsNotation:   "Tree is not in the expected notation",
	UnsEmptyGraph: "Empty graph has no CL form",
	UnsEquation:   "Equations have no CGIF form",

	SemArityMismatch:     "Inconsistent arity",
	SemEmptyConnective:   "Connective without operands",
	SemDuplicateQuantVar: "Variable declared twice",
	SemMissingChild:      "Missing child",

	InpInvalidType: "Invalid expression type",

	TooManyDiagnostics: "Too many diagnostics",
}

// Kind returns the classification implied by the code family.
func (c Code) Kind() Kind {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return KindLexical
	case ic >= 2000 && ic < 3000:
		return KindSyntax
	case ic >= 3000 && ic < 4000:
		return KindReference
	case ic >= 4000 && ic < 5000:
		return KindUnsupportedConstruct
	case ic >= 5000 && ic < 6000:
		return KindSemantic
	case ic >= 6000 && ic < 7000:
		return KindInput
	case ic >= 9000:
		return KindLimit
	}
	return KindSyntax
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("REF%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("UNS%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("INP%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("LIM%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
