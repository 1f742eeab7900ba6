package journal

import "encoding/binary"

// FramePrefixSize is the fixed byte length of a frame's kind/reserved/
// length prefix, before its payload (spec §4.4).
const FramePrefixSize = 6

// encodeFramePrefix writes the 6-byte prefix for a frame of the given kind
// and payload length.
func encodeFramePrefix(kind byte, length uint32) []byte {
	buf := make([]byte, FramePrefixSize)
	buf[0] = kind
	buf[1] = 0x00 // reserved
	binary.LittleEndian.PutUint32(buf[2:6], length)
	return buf
}

// decodeFramePrefix parses a 6-byte frame prefix.
func decodeFramePrefix(buf []byte) (kind byte, length uint32) {
	kind = buf[0]
	length = binary.LittleEndian.Uint32(buf[2:6])
	return
}

// buildFrame assembles one complete frame (prefix + payload) as a single
// byte slice so it can be written with one syscall, keeping the window in
// which a crash could leave a partial frame on disk as small as possible
// (spec §4.4: "a frame is either fully present on disk or absent").
func buildFrame(kind byte, payload []byte) []byte {
	out := make([]byte, FramePrefixSize+len(payload))
	copy(out, encodeFramePrefix(kind, uint32(len(payload))))
	copy(out[FramePrefixSize:], payload)
	return out
}
