package journal

import (
	"fmt"
	"io"
	"os"
)

// WriteOptions configures OpenWriter (spec §4.4).
type WriteOptions struct {
	Create          bool
	Append          bool
	SyncAfterAppend bool
	ExpectedEmpty   bool
}

// DefaultWriteOptions matches the defaults named in spec §4.4.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Create: true, Append: true, SyncAfterAppend: false, ExpectedEmpty: false}
}

// writerState tracks the [Closed]/[Ready] state machine of spec §4.4.
type writerState int

const (
	stateReady writerState = iota
	stateClosed
)

// Writer is a JournalWriter (spec §4.4). It owns exclusive access to the
// underlying file handle; callers must not share a Writer across
// goroutines without their own synchronization (spec §5: "Writers hold
// exclusive ownership of the file handle").
//
// On the first error from any method, the writer becomes permanently
// unusable — the "any state --error-> [Closed]" transition of the state
// machine.
type Writer struct {
	file  *os.File
	opts  WriteOptions
	state writerState
}

// OpenWriter implements the writer half of spec §4.4. On a non-existent
// file with Create=true, it writes the header (fsyncing if
// SyncAfterAppend is set). On an existing file, it validates the header
// and refuses to continue on a magic/version mismatch.
func OpenWriter(path string, opts WriteOptions) (*Writer, error) {
	_, statErr := os.Stat(path)
	exists := statErr == nil

	if !exists && !opts.Create {
		return nil, fmt.Errorf("journal: %s does not exist and Create is false", path)
	}

	flags := os.O_RDWR
	if !exists {
		flags |= os.O_CREATE
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}

	w := &Writer{file: f, opts: opts, state: stateReady}

	if !exists {
		if err := w.writeHeader(); err != nil {
			_ = f.Close()
			w.state = stateClosed
			return nil, err
		}
	} else {
		if err := w.validateExistingHeader(); err != nil {
			_ = f.Close()
			w.state = stateClosed
			return nil, err
		}
		if opts.ExpectedEmpty {
			if err := w.checkEmpty(); err != nil {
				_ = f.Close()
				w.state = stateClosed
				return nil, err
			}
		}
	}

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		_ = f.Close()
		w.state = stateClosed
		return nil, fmt.Errorf("journal: seek to end: %w", err)
	}

	return w, nil
}

func (w *Writer) writeHeader() error {
	if _, err := w.file.Write(DefaultHeader().Encode()); err != nil {
		return fmt.Errorf("journal: write header: %w", err)
	}
	if w.opts.SyncAfterAppend {
		if err := w.file.Sync(); err != nil {
			return fmt.Errorf("journal: fsync header: %w", err)
		}
	}
	return nil
}

func (w *Writer) validateExistingHeader() error {
	buf := make([]byte, HeaderSize)
	if _, err := w.file.ReadAt(buf, 0); err != nil {
		return fmt.Errorf("journal: read header: %w", err)
	}
	_, err := DecodeHeader(buf)
	return err
}

func (w *Writer) checkEmpty() error {
	info, err := w.file.Stat()
	if err != nil {
		return fmt.Errorf("journal: stat: %w", err)
	}
	if info.Size() != HeaderSize {
		return fmt.Errorf("journal: ExpectedEmpty but file has %d bytes beyond the header", info.Size()-HeaderSize)
	}
	return nil
}

// AppendEvent writes one EventJson frame containing payload verbatim. The
// writer does not canonicalize or compute event_id — the caller supplies
// canonical (or at least valid) JSON already bearing its correct event_id
// (spec §4.4).
func (w *Writer) AppendEvent(payload []byte) error {
	return w.appendFrame(KindEventJSON, payload)
}

func (w *Writer) appendFrame(kind byte, payload []byte) error {
	if w.state == stateClosed {
		return fmt.Errorf("journal: writer is closed")
	}
	if len(payload) > MaxPayloadBytes {
		w.state = stateClosed
		_ = w.file.Close()
		return &PayloadTooLargeError{Length: uint32(len(payload))}
	}

	frame := buildFrame(kind, payload)
	if _, err := w.file.Write(frame); err != nil {
		w.state = stateClosed
		_ = w.file.Close()
		return fmt.Errorf("journal: append frame: %w", err)
	}

	if w.opts.SyncAfterAppend {
		if err := w.file.Sync(); err != nil {
			w.state = stateClosed
			_ = w.file.Close()
			return fmt.Errorf("journal: fsync frame: %w", err)
		}
	}
	return nil
}

// Flush is a no-op beyond what AppendEvent already guarantees: each
// AppendEvent call writes (and optionally fsyncs) its frame immediately,
// so there is no internal buffer to drain. It exists to satisfy the
// JournalWriter contract of spec §4.4 and for symmetry with callers that
// expect an explicit flush point.
func (w *Writer) Flush() error {
	if w.state == stateClosed {
		return fmt.Errorf("journal: writer is closed")
	}
	return nil
}

// Finish flushes buffers, guarantees durability of all previously
// appended frames if SyncAfterAppend was set, and closes the file (spec
// §4.4).
func (w *Writer) Finish() error {
	if w.state == stateClosed {
		return fmt.Errorf("journal: writer is closed")
	}
	w.state = stateClosed
	if w.opts.SyncAfterAppend {
		if err := w.file.Sync(); err != nil {
			_ = w.file.Close()
			return fmt.Errorf("journal: fsync on finish: %w", err)
		}
	}
	return w.file.Close()
}
