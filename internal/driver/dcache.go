package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"cglogic/internal/dialect"
	"cglogic/internal/diag"
	"cglogic/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 2

// DiskCache хранит результаты проверки файлов по CacheKey на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the msgpack record of one FileReport.
// Spans are stored without the FileID, which is only valid within one run.
type DiskPayload struct {
	Schema      uint16             `msgpack:"schema"`
	Notation    uint8              `msgpack:"notation"`
	Nodes       int                `msgpack:"nodes"`
	Diagnostics []CachedDiagnostic `msgpack:"diagnostics"`
	Translation string             `msgpack:"translation,omitempty"`
}

type CachedDiagnostic struct {
	Severity    diag.Severity   `msgpack:"severity"`
	Code        diag.Code       `msgpack:"code"`
	Message     string          `msgpack:"message"`
	Start       uint32          `msgpack:"start"`
	End         uint32          `msgpack:"end"`
	Pos         source.Position `msgpack:"pos"`
	Suggestions []string        `msgpack:"suggestions,omitempty"`
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it when missing.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первому байту, чтобы не держать тысячи файлов в одном каталоге
	return filepath.Join(c.dir, "check", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key CacheKey, payload *DiskPayload) (err error) {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key CacheKey, out *DiskPayload) (ok bool, err error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	if decErr := msgpack.NewDecoder(f).Decode(out); decErr != nil {
		return false, decErr
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем каталог и удаляем старый
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func newDiskPayload(rep FileReport) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Notation:    uint8(rep.Notation),
		Nodes:       rep.Nodes,
		Translation: rep.Translation,
		Diagnostics: make([]CachedDiagnostic, len(rep.Diagnostics)),
	}
	for i, d := range rep.Diagnostics {
		payload.Diagnostics[i] = CachedDiagnostic{
			Severity:    d.Severity,
			Code:        d.Code,
			Message:     d.Message,
			Start:       d.Primary.Start,
			End:         d.Primary.End,
			Pos:         d.Pos,
			Suggestions: d.Suggestions,
		}
	}
	return payload
}

// report восстанавливает FileReport, привязывая спаны к текущему файлу.
func (p *DiskPayload) report(file *source.File) FileReport {
	rep := FileReport{
		Path:        file.Path,
		FileID:      file.ID,
		Notation:    dialect.Notation(p.Notation),
		Nodes:       p.Nodes,
		Translation: p.Translation,
		Cached:      true,
	}
	if len(p.Diagnostics) > 0 {
		rep.Diagnostics = make([]diag.Diagnostic, len(p.Diagnostics))
	}
	for i, d := range p.Diagnostics {
		rep.Diagnostics[i] = diag.Diagnostic{
			Severity:    d.Severity,
			Code:        d.Code,
			Message:     d.Message,
			Primary:     source.Span{File: file.ID, Start: d.Start, End: d.End},
			Pos:         d.Pos,
			Suggestions: d.Suggestions,
		}
	}
	return rep
}
