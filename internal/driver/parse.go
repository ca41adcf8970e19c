package driver

import (
	"context"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/source"
	"cglogic/internal/trace"
)

type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Notation dialect.Notation
	Tree     *ast.Expression
	Bag      *diag.Bag
}

// Success reports whether the file parsed without errors.
func (r *ParseResult) Success() bool {
	return r != nil && !r.Bag.HasErrors()
}

// Text renders the tree in its own notation; empty when the parse failed.
func (r *ParseResult) Text() string {
	if !r.Success() {
		return ""
	}
	return render(r.Notation, r.Tree)
}

// ParseFile loads path and parses it. The returned error is for I/O only;
// syntax and reference errors go to the Bag.
func ParseFile(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := newFileSet(opts)
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(ctx, fs, fs.Get(fileID), &opts), nil
}

// ParseSource parses an in-memory buffer named name.
func ParseSource(ctx context.Context, name string, text []byte, opts Options) *ParseResult {
	fs := newFileSet(opts)
	return parseLoaded(ctx, fs, fs.Get(fs.AddVirtual(name, text)), &opts)
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts *Options) *ParseResult {
	ctx, span := trace.BeginCtx(ctx, trace.ScopeFile, file.Path)
	res := &ParseResult{
		FileSet:  fs,
		File:     file,
		Notation: resolveNotation(opts.Notation, file),
	}
	runPhase(ctx, opts, file.Path, StageParse, func(context.Context) bool {
		res.Tree, res.Bag = parseFile(file, res.Notation, opts.MaxDiagnostics)
		return !res.Bag.HasErrors()
	})
	if !res.Success() {
		span.Fail()
	}
	span.WithExtra("notation", res.Notation.String()).End("")
	return res
}
