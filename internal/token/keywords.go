package token

var keywords = map[string]Kind{
	"and":    KwAnd,
	"or":     KwOr,
	"not":    KwNot,
	"if":     KwIf,
	"iff":    KwIff,
	"exists": KwExists,
	"forall": KwForall,
}

var keywordSpelling = map[Kind]string{
	KwAnd:    "and",
	KwOr:     "or",
	KwNot:    "not",
	KwIf:     "if",
	KwIff:    "iff",
	KwExists: "exists",
	KwForall: "forall",
}

// LookupKeyword возвращает тип и bool если это ключевое слово CL.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keywords returns the CL keyword spellings in a stable order.
func Keywords() []string {
	return []string{"and", "or", "not", "if", "iff", "exists", "forall"}
}

// Spelling returns the source spelling of a keyword kind, or "".
func (k Kind) Spelling() string {
	return keywordSpelling[k]
}
