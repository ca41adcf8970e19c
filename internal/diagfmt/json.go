package diagfmt

import (
	"encoding/json"
	"io"

	"cglogic/internal/diag"
	"cglogic/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity    string       `json:"severity"`
	Kind        string       `json:"kind"`
	Code        string       `json:"code"`
	Title       string       `json:"title"`
	Message     string       `json:"message"`
	Location    LocationJSON `json:"location"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// makeLocation создаёт LocationJSON из Span; без FileSet берётся уже разрешённая позиция.
func makeLocation(d diag.Diagnostic, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	span := d.Primary
	loc := LocationJSON{StartByte: span.Start, EndByte: span.End}
	if fs == nil || int(span.File) >= fs.Len() {
		if includePositions && d.Pos.IsValid() {
			loc.StartLine, loc.StartCol = d.Pos.Line, d.Pos.Column
		}
		return loc
	}
	f := fs.Get(span.File)
	loc.File = f.FormatPath(pathMode.String(), fs.BaseDir())
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	n := len(diags)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := make([]DiagnosticJSON, 0, n)
	for _, d := range diags[:n] {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Kind:     d.Kind().String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: makeLocation(d, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeSuggestions && len(d.Suggestions) > 0 {
			dj.Suggestions = append([]string(nil), d.Suggestions...)
		}
		out = append(out, dj)
	}
	return DiagnosticsOutput{Diagnostics: out, Count: len(out)}
}

// JSON форматирует диагностики bag в JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return encode(w, BuildDiagnosticsOutput(bag.Items(), fs, opts))
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
