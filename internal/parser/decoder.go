// Package parser implements C3, the parser adapter: a polymorphic decoder
// over the capability set {parse_header, parse_network}, with variants
// {full, header_only_fallback} selected by configuration and by what the
// underlying bytes actually support.
//
// The section framing below (magic + format byte, then a sequence of
// length-prefixed, chunked, optionally-compressed sections) is the same
// shape as the teacher's repdecoder package: a small common decoder base
// plus per-format Section() implementations, selected once up front by
// sniffing the leading bytes.
package parser

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Format identifies which on-disk replay layout a file uses.
type Format int

// Possible Format values.
const (
	FormatUnknown Format = iota
	FormatZlib           // sections compressed with DEFLATE (compress/zlib)
	FormatZstd           // sections compressed with zstd
)

var magic = [4]byte{'R', 'L', 'C', 'R'}

// detectFormat sniffs the leading bytes of a replay file. Byte layout:
// magic(4) | formatByte(1) | ...sections.
func detectFormat(lead []byte) (Format, error) {
	if len(lead) < 5 || !bytes.Equal(lead[:4], magic[:]) {
		return FormatUnknown, errors.New("not a recognized replay file")
	}
	switch lead[4] {
	case 1:
		return FormatZlib, nil
	case 2:
		return FormatZstd, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown format byte %d", lead[4])
	}
}

// sectionReader decodes the length-prefixed, optionally-compressed section
// stream that follows the 5-byte file prefix. One sectionReader is used for
// both the header and network sections; callers call Next repeatedly.
type sectionReader struct {
	r      *bytes.Reader
	format Format
	zr     io.ReadCloser // closed by Close when set; Next opens a fresh reader per section and does not set it
}

func newSectionReader(data []byte, format Format) (*sectionReader, error) {
	if len(data) < 5 {
		return nil, errors.New("replay data too short")
	}
	return &sectionReader{r: bytes.NewReader(data[5:]), format: format}, nil
}

var errNoMoreSections = errors.New("no more sections")

// Next reads the next section's uncompressed bytes, or errNoMoreSections
// when the stream is exhausted.
func (s *sectionReader) Next() ([]byte, error) {
	if s.r.Len() == 0 {
		return nil, errNoMoreSections
	}

	var rawLen, compLen uint32
	if err := binary.Read(s.r, binary.LittleEndian, &rawLen); err != nil {
		return nil, fmt.Errorf("reading section raw length: %w", err)
	}
	if err := binary.Read(s.r, binary.LittleEndian, &compLen); err != nil {
		return nil, fmt.Errorf("reading section compressed length: %w", err)
	}

	compressed := make([]byte, compLen)
	if _, err := io.ReadFull(s.r, compressed); err != nil {
		return nil, fmt.Errorf("reading section body: %w", err)
	}

	if compLen == rawLen {
		// Stored uncompressed; section bodies small enough aren't worth it.
		return compressed, nil
	}

	switch s.format {
	case FormatZlib:
		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		defer zr.Close()
		out := make([]byte, 0, rawLen)
		buf := bytes.NewBuffer(out)
		if _, err := io.Copy(buf, zr); err != nil {
			return nil, fmt.Errorf("zlib decompress: %w", err)
		}
		return buf.Bytes(), nil
	case FormatZstd:
		zr, err := zstd.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		out := make([]byte, 0, rawLen)
		buf := bytes.NewBuffer(out)
		if _, err := io.Copy(buf, zr); err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %v", s.format)
	}
}

// Close closes zr if one is set.
func (s *sectionReader) Close() error {
	if s.zr != nil {
		return s.zr.Close()
	}
	return nil
}
