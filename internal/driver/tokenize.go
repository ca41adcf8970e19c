package driver

import (
	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/lexer"
	"cglogic/internal/source"
	"cglogic/internal/token"
)

type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Notation dialect.Notation
	Tokens   []token.Token
	Bag      *diag.Bag
}

// Tokenize загружает файл и прогоняет лексер до EOF.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := newFileSet(opts)
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), opts), nil
}

// TokenizeText tokenizes an in-memory buffer named name.
func TokenizeText(name string, text []byte, opts Options) *TokenizeResult {
	fs := newFileSet(opts)
	return tokenizeFile(fs, fs.Get(fs.AddVirtual(name, text)), opts)
}

func tokenizeFile(fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	n := resolveNotation(opts.Notation, file)
	bag := diag.NewBag(opts.MaxDiagnostics)
	tokens := lexer.Tokenize(file, lexer.Options{
		Notation: n,
		Reporter: diag.BagReporter{Bag: bag, File: file},
	})
	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Notation: n,
		Tokens:   tokens,
		Bag:      bag,
	}
}

func newFileSet(opts Options) *source.FileSet {
	fs := source.NewFileSet()
	if opts.BaseDir != "" {
		fs.SetBaseDir(opts.BaseDir)
	}
	return fs
}

// resolveNotation: явная нотация, затем расширение, затем содержимое;
// если ничего не подошло, считаем вход CGIF.
func resolveNotation(explicit dialect.Notation, file *source.File) dialect.Notation {
	n := dialect.Resolve(explicit, file.Path, file.Content)
	if !n.Valid() {
		return dialect.CGIF
	}
	return n
}
