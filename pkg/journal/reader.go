package journal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Northroot-Labs/northroot/pkg/value"
)

// ReadMode selects how Reader.ReadNext treats trailing truncation (spec §4.4).
type ReadMode int

const (
	Strict ReadMode = iota
	Permissive
)

// Reader is a JournalReader (spec §4.4). It is stateless between calls
// beyond its own file cursor: it never seeks backwards and buffers no
// already-yielded events (spec §5).
type Reader struct {
	file   *os.File
	br     *bufio.Reader
	mode   ReadMode
	offset int64

	// TruncationSeen records whether a trailing short read was observed in
	// Permissive mode (spec §4.4: "expose a truncation_seen metric so
	// callers can record the fact without failing").
	TruncationSeen bool
}

// OpenReader parses and validates the 16-byte header, then positions the
// reader at the first frame. Unknown version or wrong magic is
// InvalidHeaderError.
func OpenReader(path string, mode ReadMode) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}

	br := bufio.NewReader(f)
	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(br, header)
	if err != nil {
		_ = f.Close()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &InvalidHeaderError{Reason: fmt.Sprintf("file shorter than %d-byte header (%d bytes)", HeaderSize, n)}
		}
		return nil, fmt.Errorf("journal: read header: %w", err)
	}
	if _, err := DecodeHeader(header); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Reader{file: f, br: br, mode: mode, offset: HeaderSize}, nil
}

// ReadNext reads and returns the next EventJson frame's payload as a
// parsed value.Value, or (nil, nil) on clean end-of-stream. Unknown frame
// kinds are skipped transparently for forward compatibility (spec §4.4,
// §8 scenario 6).
func (r *Reader) ReadNext() (*value.Value, error) {
	for {
		prefix := make([]byte, FramePrefixSize)
		n, err := io.ReadFull(r.br, prefix)
		if err != nil {
			return r.handlePrefixReadError(n, err)
		}

		kind, length := decodeFramePrefix(prefix)
		if length > MaxPayloadBytes {
			return nil, &PayloadTooLargeError{Length: length}
		}

		payload := make([]byte, length)
		pn, err := io.ReadFull(r.br, payload)
		if err != nil {
			return r.handlePayloadReadError(pn, err)
		}
		frameOffset := r.offset
		r.offset += int64(FramePrefixSize) + int64(length)

		if kind != KindEventJSON {
			// Unknown kind: skip and continue (spec §4.4).
			continue
		}

		v, perr := value.Parse(payload)
		if perr != nil {
			return nil, &InvalidJSONError{Offset: frameOffset, Cause: perr}
		}
		return v, nil
	}
}

func (r *Reader) handlePrefixReadError(n int, err error) (*value.Value, error) {
	if errors.Is(err, io.EOF) && n == 0 {
		// Clean EOF exactly at a frame boundary.
		return nil, nil
	}
	return r.truncated()
}

func (r *Reader) handlePayloadReadError(n int, err error) (*value.Value, error) {
	return r.truncated()
}

func (r *Reader) truncated() (*value.Value, error) {
	if r.mode == Permissive {
		r.TruncationSeen = true
		return nil, nil
	}
	return nil, &TruncatedFrameError{Offset: r.offset}
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}
