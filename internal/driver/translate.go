package driver

import (
	"context"
	"errors"
	"fmt"

	"cglogic/internal/ast"
	"cglogic/internal/dialect"
	"cglogic/internal/translate"
)

type TranslateResult struct {
	Parse *ParseResult
	// Result carries the target tree and text; Success is false if either
	// the parse or the translation failed.
	Result ast.Result
}

// ErrSameNotation is returned when the input notation equals the target.
var ErrSameNotation = errors.New("translation input is already in the target notation")

// sourceNotation: вход всегда в другой нотации, чем цель.
func sourceNotation(to, forced dialect.Notation) (dialect.Notation, error) {
	from := dialect.CGIF
	if to == dialect.CGIF {
		from = dialect.CL
	}
	if forced != dialect.Unknown && forced != from {
		return dialect.Unknown, fmt.Errorf("%w: %s", ErrSameNotation, forced)
	}
	return from, nil
}

// TranslateFile parses path and translates it into the to notation
// (CL for CGIF input, CGIF for CL input).
func TranslateFile(ctx context.Context, path string, to dialect.Notation, opts Options) (*TranslateResult, error) {
	from, err := sourceNotation(to, opts.Notation)
	if err != nil {
		return nil, err
	}
	opts.Notation = from
	pr, err := ParseFile(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return translateParsed(ctx, pr, to, &opts), nil
}

// TranslateSource translates an in-memory buffer named name.
func TranslateSource(ctx context.Context, name string, text []byte, to dialect.Notation, opts Options) (*TranslateResult, error) {
	from, err := sourceNotation(to, opts.Notation)
	if err != nil {
		return nil, err
	}
	opts.Notation = from
	return translateParsed(ctx, ParseSource(ctx, name, text, opts), to, &opts), nil
}

func translateParsed(ctx context.Context, pr *ParseResult, to dialect.Notation, opts *Options) *TranslateResult {
	out := &TranslateResult{Parse: pr}
	if !pr.Success() {
		out.Result = ast.Failed(pr.Bag.Items()...)
		return out
	}
	runPhase(ctx, opts, pr.File.Path, StageTranslate, func(context.Context) bool {
		if to == dialect.CGIF {
			out.Result = translate.ToCGIF(pr.Tree)
		} else {
			out.Result = translateTree(pr.Tree)
		}
		return out.Result.Success
	})
	return out
}

func translateTree(tree ast.Node) ast.Result {
	return translate.Translate(tree)
}
