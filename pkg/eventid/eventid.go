// Package eventid computes and verifies the content-derived event_id digest
// of spec §4.3: SHA-256 over a fixed domain separator concatenated with the
// canonical bytes of the event with its own event_id member removed.
package eventid

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
	"github.com/Northroot-Labs/northroot/pkg/value"
)

// DomainSeparator is the fixed 19-byte v1 domain separator (spec §4.3,
// §6): "northroot:event:v1\0". A length prefix is unnecessary — the
// canonical JSON that follows always begins with '{' or '[', which cannot
// occur inside the separator (spec §9).
var DomainSeparator = []byte("northroot:event:v1\x00")

// Kind values for Error.
const (
	ErrNotAnObject    = "NotAnObject"
	ErrHygieneFailed  = "HygieneFailed"
	ErrMalformedEvent = "MalformedEventId"
	ErrMismatch       = "Mismatch"
)

// Error is the EventIdError taxonomy of spec §7.
type Error struct {
	Kind   string
	Report *value.HygieneReport
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("eventid: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("eventid: %s", e.Kind)
}

// Compute implements compute_event_id (spec §4.3): strip event_id, canonicalize
// the remainder, domain-separate and hash, and base64url-no-pad encode.
func Compute(event *value.Value, c *canonicalize.Canonicalizer) (value.Digest, error) {
	if !event.IsObject() {
		return value.Digest{}, &Error{Kind: ErrNotAnObject}
	}

	remainder := event.Without("event_id")

	result, err := c.Canonicalize(remainder)
	if err != nil {
		var hErr *canonicalize.HygieneError
		if errors.As(err, &hErr) {
			return value.Digest{}, &Error{Kind: ErrHygieneFailed, Report: hErr.Report}
		}
		return value.Digest{}, fmt.Errorf("eventid: canonicalize: %w", err)
	}

	return digestOf(result.Bytes), nil
}

func digestOf(canonicalBytes []byte) value.Digest {
	h := sha256.New()
	h.Write(DomainSeparator)
	h.Write(canonicalBytes)
	sum := h.Sum(nil)
	return value.Digest{
		Alg: value.AlgSHA256,
		B64: base64.RawURLEncoding.EncodeToString(sum),
	}
}

// Verify implements verify_event_id (spec §4.3): recompute the digest and
// compare byte-for-byte against the event's own event_id field. Any
// mismatch, missing field, wrong shape, or non-sha-256 alg is Invalid — no
// partial credit.
func Verify(event *value.Value, c *canonicalize.Canonicalizer) error {
	if !event.IsObject() {
		return &Error{Kind: ErrNotAnObject}
	}

	claimed := event.Get("event_id")
	if claimed == nil || !claimed.IsObject() {
		return &Error{Kind: ErrMalformedEvent, Detail: "event_id missing or not an object"}
	}
	algField := claimed.Get("alg")
	b64Field := claimed.Get("b64")
	if algField == nil || algField.Kind != value.KindString || b64Field == nil || b64Field.Kind != value.KindString {
		return &Error{Kind: ErrMalformedEvent, Detail: "event_id is not a well-formed Digest"}
	}
	if algField.Str != value.AlgSHA256 {
		return &Error{Kind: ErrMalformedEvent, Detail: fmt.Sprintf("unsupported alg %q", algField.Str)}
	}

	computed, err := Compute(event, c)
	if err != nil {
		return err
	}

	if computed.B64 != b64Field.Str {
		return &Error{Kind: ErrMismatch}
	}
	return nil
}

// Insert returns a copy of event with its top-level event_id member set to
// d, replacing any existing one. Used by writers assembling an event
// before appending it to a journal, and by tests exercising the
// insert/recompute round trip of spec §8.
func Insert(event *value.Value, d value.Digest) *value.Value {
	stripped := event.Without("event_id")
	digestValue := value.Object(
		value.Member{Key: "alg", Value: value.String(d.Alg)},
		value.Member{Key: "b64", Value: value.String(d.B64)},
	)
	members := make([]value.Member, 0, len(stripped.Object)+1)
	members = append(members, stripped.Object...)
	members = append(members, value.Member{Key: "event_id", Value: digestValue})
	return &value.Value{Kind: value.KindObject, Object: members}
}
