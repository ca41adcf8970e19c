package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	}
	return "auto"
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color           bool
	Context         int8 // строк исходника перед строкой ошибки
	PathMode        PathMode
	ShowSuggestions bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions   bool // добавить line/col
	PathMode           PathMode
	Max                int // обрезка вывода, не Bag
	IncludeSuggestions bool
}
