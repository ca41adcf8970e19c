package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cglogic/internal/diag"
	"cglogic/internal/source"
)

// palette: цвета одного вызова Pretty; без Color все функции печатают как есть.
type palette struct {
	sev    map[diag.Severity]*color.Color
	code   *color.Color
	gutter *color.Color
	caret  *color.Color
	help   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError: color.New(color.FgRed, color.Bold),
			diag.SevInfo:  color.New(color.FgCyan, color.Bold),
		},
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		help:   color.New(color.FgGreen),
	}
	all := []*color.Color{p.code, p.gutter, p.caret, p.help}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид в порядке bag.Items()
// (ожидается bag.Sort() заранее). Для каждой диагностики:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строки контекста с подчёркиванием ^~~~ по Span и подсказки "help:".
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	PrettyList(w, bag.Items(), fs, opts)
}

// PrettyList is Pretty over a plain slice.
func PrettyList(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeOne(w, d, fs, opts, pal)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	var file *source.File
	if fs != nil && int(d.Primary.File) < fs.Len() {
		file = fs.Get(d.Primary.File)
	}
	pos := d.Pos
	if file != nil && !pos.IsValid() {
		pos = file.Position(d.Primary.Start)
	}

	sev := pal.sev[d.Severity]
	if sev == nil {
		sev = pal.code
	}
	loc := ""
	if file != nil {
		loc = file.FormatPath(opts.PathMode.String(), fs.BaseDir()) + ":"
	}
	fmt.Fprintf(w, "%s%d:%d: %s %s: %s\n", loc, pos.Line, pos.Column,
		sev.Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)

	if file != nil && pos.IsValid() {
		writeSnippet(w, file, d.Primary, pos, opts, pal)
	}
	if opts.ShowSuggestions {
		for _, s := range d.Suggestions {
			fmt.Fprintf(w, "  %s %s\n", pal.help.Sprint("help:"), s)
		}
	}
}

func writeSnippet(w io.Writer, f *source.File, sp source.Span, pos source.Position, opts PrettyOpts, pal palette) {
	first := pos.Line
	if c := uint32(max(opts.Context, 0)); c > 0 {
		first = 1
		if c < pos.Line {
			first = pos.Line - c
		}
	}
	width := len(fmt.Sprint(pos.Line))
	for ln := first; ln <= pos.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, ln), f.GetLine(ln))
	}

	prefix := prefixOf(f, pos)
	lineStart := sp.Start - min(sp.Start, uint32(len(prefix)))
	lineEnd := lineStart + uint32(len(f.GetLine(pos.Line)))

	// подчёркиваем только часть спана на этой строке
	underline := 1
	if end := min(sp.End, lineEnd); end > sp.Start {
		underline = max(1, runewidth.StringWidth(string(f.Content[sp.Start:end])))
	}
	marks := "^" + strings.Repeat("~", underline-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", width, ""),
		strings.Repeat(" ", runewidth.StringWidth(prefix)), pal.caret.Sprint(marks))
}

// prefixOf returns the text of pos's line before pos.
func prefixOf(f *source.File, pos source.Position) string {
	line := f.GetLine(pos.Line)
	runes := []rune(line)
	n := min(max(int(pos.Column)-1, 0), len(runes))
	return string(runes[:n])
}
