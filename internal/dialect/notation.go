package dialect

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Notation identifies the textual notation of an expression.
type Notation uint8

const (
	Unknown Notation = iota
	CGIF
	CL

	notationCount
)

func (n Notation) String() string {
	switch n {
	case CGIF:
		return "CGIF"
	case CL:
		return "CL"
	default:
		return "unknown"
	}
}

func (n Notation) GoString() string {
	return fmt.Sprintf("Notation(%s)", n.String())
}

// Valid reports whether n names a concrete notation.
func (n Notation) Valid() bool {
	return n == CGIF || n == CL
}

// ParseNotation maps an expression-type name to a Notation.
// Matching is case-insensitive; "clif" is accepted as an alias of CL.
func ParseNotation(s string) (Notation, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CGIF":
		return CGIF, true
	case "CL", "CLIF":
		return CL, true
	}
	return Unknown, false
}

var extensions = map[string]Notation{
	".cgif": CGIF,
	".cg":   CGIF,
	".clif": CL,
	".cl":   CL,
}

// FromPath returns the notation implied by the file extension, or Unknown.
func FromPath(path string) Notation {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// IsSourcePath reports whether path has one of the recognised extensions.
func IsSourcePath(path string) bool {
	return FromPath(path) != Unknown
}
