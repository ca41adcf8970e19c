package dialect

import (
	"bytes"
)

var clOperators = map[string]int{
	"and":    3,
	"or":     3,
	"not":    3,
	"if":     3,
	"iff":    4,
	"exists": 5,
	"forall": 5,
}

// Collect scans content once and records notation hints:
// CGIF concepts, coreference labels, @every and ~[ versus
// CL operators in head position, '=' atoms and ';' comments.
func Collect(content []byte) *Evidence {
	e := NewEvidence()
	for i := 0; i < len(content); i++ {
		b := content[i]
		switch b {
		case '[':
			e.Add(Hint{Notation: CGIF, Score: 2, Reason: "concept bracket", Offset: i})
		case '*', '?':
			if i+1 < len(content) && isNameByte(content[i+1]) {
				e.Add(Hint{Notation: CGIF, Score: 3, Reason: "coreference label", Offset: i})
			}
		case '@':
			if bytes.HasPrefix(content[i:], []byte("@every")) {
				e.Add(Hint{Notation: CGIF, Score: 5, Reason: "@every quantifier", Offset: i})
			}
		case '~':
			e.Add(Hint{Notation: CGIF, Score: 2, Reason: "negation sigil", Offset: i})
		case ';':
			e.Add(Hint{Notation: CL, Score: 2, Reason: "line comment", Offset: i})
		case '(':
			j := i + 1
			for j < len(content) && (content[j] == ' ' || content[j] == '\t' || content[j] == '\n') {
				j++
			}
			k := j
			for k < len(content) && isNameByte(content[k]) {
				k++
			}
			if score, ok := clOperators[string(content[j:k])]; ok {
				e.Add(Hint{Notation: CL, Score: score, Reason: "operator " + string(content[j:k]), Offset: j})
			} else if j < len(content) && content[j] == '=' {
				e.Add(Hint{Notation: CL, Score: 3, Reason: "equation", Offset: j})
			}
		}
	}
	return e
}

// Detect sniffs content and returns its most likely notation.
func Detect(content []byte) Classification {
	return Classifier{}.Classify(Collect(content))
}

// Resolve picks a notation: explicit wins, then the path extension,
// then content sniffing. The result may still be Unknown.
func Resolve(explicit Notation, path string, content []byte) Notation {
	if explicit.Valid() {
		return explicit
	}
	if n := FromPath(path); n.Valid() {
		return n
	}
	return Detect(content).Notation
}

func isNameByte(b byte) bool {
	return b == '_' || b == '-' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b >= 0x80
}
