package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/source"
	"cglogic/internal/trace"
)

// CheckReport собирает результаты проверки набора файлов.
type CheckReport struct {
	FileSet *source.FileSet
	Files   []FileReport // в порядке путей
	// LoadErr combines the I/O failures of files that could not be read;
	// those files have no FileReport.
	LoadErr error
}

// Failed reports whether any file has errors or failed to load.
func (r *CheckReport) Failed() bool {
	if r == nil {
		return false
	}
	if r.LoadErr != nil {
		return true
	}
	for _, f := range r.Files {
		if f.Failed() {
			return true
		}
	}
	return false
}

// Diagnostics returns every diagnostic of the run in file order.
func (r *CheckReport) Diagnostics() []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, f := range r.Files {
		out = append(out, f.Diagnostics...)
	}
	return out
}

// ListSourceFiles expands paths: files are taken as given, directories are
// walked for .cgif/.cg/.cl/.clif files. Hidden and excluded directories are
// skipped. The result is sorted and free of duplicates.
func ListSourceFiles(paths []string, exclude []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(root))
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != root && (strings.HasPrefix(name, ".") || slices.Contains(exclude, name)) {
					return filepath.SkipDir
				}
				return nil
			}
			if dialect.IsSourcePath(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return slices.Compact(files), nil
}

// CheckPaths проверяет файлы параллельно. Ошибка возвращается только при
// отмене ctx или невозможности обойти каталог; ошибки чтения отдельных
// файлов собираются в CheckReport.LoadErr.
func CheckPaths(ctx context.Context, paths []string, opts Options) (*CheckReport, error) {
	ctx, span := trace.BeginCtx(ctx, trace.ScopeDriver, "check")
	defer span.End("")

	files, err := ListSourceFiles(paths, opts.Exclude)
	if err != nil {
		span.Fail()
		return nil, err
	}
	span.WithExtra("files", fmt.Sprint(len(files)))

	fileSet := newFileSet(opts)
	report := &CheckReport{FileSet: fileSet}

	// Предзагрузка последовательно: FileSet не потокобезопасен на запись
	ids := make([]source.FileID, 0, len(files))
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			report.LoadErr = multierr.Append(report.LoadErr, fmt.Errorf("%s: %w", path, loadErr))
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
			continue
		}
		ids = append(ids, fileID)
	}
	if len(ids) == 0 {
		return report, nil
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileReport, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ids)))
	for i, id := range ids {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkFile(gctx, fileSet.Get(id), &opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.Fail()
		return nil, err
	}

	report.Files = results
	if report.Failed() {
		span.Fail()
	}
	return report, nil
}

// CheckFile checks one file on disk.
func CheckFile(ctx context.Context, path string, opts Options) (*source.FileSet, FileReport, error) {
	fileSet := newFileSet(opts)
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, FileReport{}, err
	}
	return fileSet, checkFile(ctx, fileSet.Get(fileID), &opts), nil
}
