// Package ingest implements C2: reading a replay file off disk, bounding
// its size, and computing the identity hash every later stage keys off.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/rlcoach/rlcoach/internal/rlerrors"
)

// DefaultMaxBytes is the default maximum accepted replay file size.
const DefaultMaxBytes = 50 * 1024 * 1024

// MinPlausibleBytes is the smallest byte count a real replay file can be:
// below this a file cannot contain even a minimal header section.
const MinPlausibleBytes = 256

// Record is the result of ingesting a replay file.
type Record struct {
	Path      string
	BytesLen  int64
	SHA256    string
	CRCOK     bool
	CRCChecked bool
	Data      []byte
}

// Options bounds the ingest operation.
type Options struct {
	// MaxBytes is the largest file size accepted. Zero means DefaultMaxBytes.
	MaxBytes int64
}

// Ingest reads the file at path, enforcing size bounds, and returns a
// Record carrying its bytes, length, and content hash. It fails with
// rlerrors.KindUnreadableReplayFile when the file is missing, unreadable,
// exceeds the configured maximum, or is implausibly small.
func Ingest(path string, opts Options) (*Record, error) {
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, rlerrors.Wrap(rlerrors.KindUnreadableReplayFile, fmt.Sprintf("opening %q", path), err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, rlerrors.Wrap(rlerrors.KindUnreadableReplayFile, fmt.Sprintf("stat %q", path), err)
	}
	if info.Size() > maxBytes {
		return nil, rlerrors.New(rlerrors.KindUnreadableReplayFile,
			fmt.Sprintf("%q is %d bytes, exceeds configured maximum %d", path, info.Size(), maxBytes))
	}
	if info.Size() < MinPlausibleBytes {
		return nil, rlerrors.New(rlerrors.KindUnreadableReplayFile,
			fmt.Sprintf("%q is %d bytes, below minimum plausible replay size %d", path, info.Size(), MinPlausibleBytes))
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, rlerrors.Wrap(rlerrors.KindUnreadableReplayFile, fmt.Sprintf("reading %q", path), err)
	}

	sum := sha256.Sum256(data)

	return &Record{
		Path:     path,
		BytesLen: info.Size(),
		SHA256:   hex.EncodeToString(sum[:]),
		Data:     data,
	}, nil
}

// VerifyHeaderCRC performs a best-effort CRC-32 check of the header block
// (the first headerLen bytes) against an expected value. A mismatch is
// never fatal: the caller records it as a quality warning (crc_not_verified)
// and continues in whatever parse mode is available, per spec.md §4.2.
func VerifyHeaderCRC(data []byte, headerLen int, expected uint32) (ok bool) {
	if headerLen <= 0 || headerLen > len(data) {
		return false
	}
	return crc32.ChecksumIEEE(data[:headerLen]) == expected
}
