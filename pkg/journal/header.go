// Package journal implements the .nrj append-only container format of
// spec §4.4: a fixed 16-byte header followed by zero or more length-
// prefixed, kind-tagged frames.
package journal

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed byte length of a journal header.
	HeaderSize = 16

	magic        = "NRJ1"
	currentVersion uint16 = 0x0001
	reservedFlags  uint16 = 0x0000
)

// Header is the 16-byte journal file header (spec §4.4).
type Header struct {
	Version uint16
	Flags   uint16
}

// DefaultHeader is the header written by a fresh journal: magic "NRJ1",
// version 1, reserved flags zero.
func DefaultHeader() Header {
	return Header{Version: currentVersion, Flags: reservedFlags}
}

// Encode serializes h into the fixed 16-byte on-disk layout.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	binary.LittleEndian.PutUint16(buf[6:8], h.Flags)
	// bytes 8..16 are reserved, already zero.
	return buf
}

// DecodeHeader parses and validates a 16-byte header per spec §4.4 and
// §8 ("Header with magic \"NRJ0\" → InvalidHeader"). Unknown version,
// wrong magic, or non-zero reserved bytes are all InvalidHeader.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) != HeaderSize {
		return Header{}, &InvalidHeaderError{Reason: fmt.Sprintf("expected %d bytes, got %d", HeaderSize, len(buf))}
	}
	if string(buf[0:4]) != magic {
		return Header{}, &InvalidHeaderError{Reason: fmt.Sprintf("bad magic %q", buf[0:4])}
	}
	version := binary.LittleEndian.Uint16(buf[4:6])
	if version != currentVersion {
		return Header{}, &InvalidHeaderError{Reason: fmt.Sprintf("unsupported version %d", version)}
	}
	flags := binary.LittleEndian.Uint16(buf[6:8])
	for _, b := range buf[8:16] {
		if b != 0 {
			return Header{}, &InvalidHeaderError{Reason: "reserved bytes are not zero"}
		}
	}
	return Header{Version: version, Flags: flags}, nil
}
