package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"cglogic/internal/source"
)

// FormatShort renders diagnostics one per line as
// "<severity> <ID> <path>:<line>:<col> <message>". Input order is kept;
// callers that need a canonical order sort the Bag first.
// A nil FileSet falls back to the already resolved Pos and an empty path.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	var b strings.Builder
	for i, d := range diags {
		path := ""
		pos := d.Pos
		if fs != nil && int(d.Primary.File) < fs.Len() {
			path = filepath.ToSlash(fs.Get(d.Primary.File).Path)
			if !pos.IsValid() {
				pos = fs.Position(d.Primary)
			}
		}
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", severityLabel(d.Severity), d.Code.ID(), path, pos.Line, pos.Column, sanitizeMessage(d.Message))
		if i < len(diags)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
