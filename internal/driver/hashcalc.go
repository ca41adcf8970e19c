package driver

import (
	"encoding/binary"

	"fortio.org/safecast"
	"github.com/zeebo/blake3"

	"cglogic/internal/dialect"
	"cglogic/internal/version"
)

// CacheKey identifies one cached check result.
type CacheKey [32]byte

// cacheKey: H(schema || version || notation || flags || limit || content).
// Всё, что влияет на результат проверки, должно попасть в ключ.
func cacheKey(n dialect.Notation, opts *Options, content []byte) CacheKey {
	var flags byte
	if opts.Validate {
		flags |= 1
	}
	if opts.Translate {
		flags |= 2
	}
	if opts.Suggest {
		flags |= 4
	}

	h := blake3.New()
	var hdr [16]byte
	binary.LittleEndian.PutUint16(hdr[0:], diskCacheSchemaVersion)
	hdr[2] = byte(n)
	hdr[3] = flags
	limit, _ := safecast.Conv[uint64](opts.MaxDiagnostics)
	binary.LittleEndian.PutUint64(hdr[4:], limit)
	_, _ = h.Write(hdr[:])
	_, _ = h.Write([]byte(version.Version))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(content)

	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}
