package driver

import (
	"context"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/source"
	"cglogic/internal/suggest"
	"cglogic/internal/trace"
	"cglogic/internal/validate"
)

// FileReport is the outcome of checking one file.
type FileReport struct {
	Path        string
	FileID      source.FileID
	Notation    dialect.Notation
	Diagnostics []diag.Diagnostic
	Nodes       int
	// Translation holds the CL text when Options.Translate was set and
	// the CGIF input translated cleanly.
	Translation string
	Cached      bool
}

// Failed reports whether the file has at least one error.
func (r FileReport) Failed() bool {
	for _, d := range r.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// CheckSource checks an in-memory buffer; the LSP server uses it for open documents.
func CheckSource(ctx context.Context, name string, text []byte, opts Options) (*source.FileSet, FileReport) {
	fs := newFileSet(opts)
	file := fs.Get(fs.AddVirtual(name, text))
	return fs, checkFile(ctx, file, &opts)
}

// checkFile: parse → validate → translate, с кешем по содержимому.
func checkFile(ctx context.Context, file *source.File, opts *Options) FileReport {
	n := resolveNotation(opts.Notation, file)
	rep := FileReport{Path: file.Path, FileID: file.ID, Notation: n}

	key := cacheKey(n, opts, file.Content)
	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok && payload.Schema == diskCacheSchemaVersion {
			rep = payload.report(file)
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache hit", file.Path, trace.ParentSpan(ctx))
			emit(opts.Progress, Event{File: file.Path, Stage: StageCache, Status: finalStatus(rep)})
			return rep
		}
	}

	ctx, span := trace.BeginCtx(ctx, trace.ScopeFile, file.Path)
	bag := diag.NewBag(opts.MaxDiagnostics)

	var tree *ast.Expression
	ok := runPhase(ctx, opts, file.Path, StageParse, func(context.Context) bool {
		var parsed *diag.Bag
		tree, parsed = parseFile(file, n, opts.MaxDiagnostics)
		bag.Merge(parsed)
		return !parsed.HasErrors()
	})
	rep.Nodes = ast.Count(tree)

	if ok && opts.Validate {
		ok = runPhase(ctx, opts, file.Path, StageValidate, func(context.Context) bool {
			res := validate.Check(tree, validate.Options{})
			for _, d := range res.Diagnostics {
				bag.Add(d)
			}
			return len(res.Diagnostics) == 0
		})
	}

	if ok && opts.Translate && n == dialect.CGIF {
		runPhase(ctx, opts, file.Path, StageTranslate, func(context.Context) bool {
			res := translateTree(tree)
			for _, d := range res.Errors {
				bag.Add(d)
			}
			rep.Translation = res.Text
			return res.Success
		})
	}

	rep.Diagnostics = append([]diag.Diagnostic(nil), bag.Items()...)
	if opts.Suggest {
		for i, d := range rep.Diagnostics {
			rep.Diagnostics[i].Suggestions = suggest.For(n, d)
		}
	}

	if rep.Failed() {
		span.Fail()
	}
	span.WithExtra("notation", n.String()).End("")
	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: finalStatus(rep)})

	if opts.Cache != nil {
		// ошибка записи кеша не влияет на результат проверки
		_ = opts.Cache.Put(key, newDiskPayload(rep))
	}
	return rep
}

func finalStatus(rep FileReport) Status {
	if rep.Failed() {
		return StatusError
	}
	return StatusDone
}
