package eventid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
	"github.com/Northroot-Labs/northroot/pkg/eventid"
	"github.com/Northroot-Labs/northroot/pkg/value"
)

func parseEvent(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func TestCompute_IsDeterministic(t *testing.T) {
	c := canonicalize.New(canonicalize.V1)
	event := parseEvent(t, `{"event_type":"order.created","amount":1}`)

	d1, err := eventid.Compute(event, c)
	require.NoError(t, err)
	d2, err := eventid.Compute(event, c)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.Equal(t, value.AlgSHA256, d1.Alg)
	assert.Len(t, d1.B64, 43) // 32 raw bytes, base64url-no-pad
}

func TestCompute_IgnoresExistingEventID(t *testing.T) {
	c := canonicalize.New(canonicalize.V1)
	withoutID := parseEvent(t, `{"event_type":"order.created"}`)
	withStaleID := parseEvent(t, `{"event_type":"order.created","event_id":{"alg":"sha-256","b64":"bogus"}}`)

	d1, err := eventid.Compute(withoutID, c)
	require.NoError(t, err)
	d2, err := eventid.Compute(withStaleID, c)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestCompute_RejectsNonObject(t *testing.T) {
	c := canonicalize.New(canonicalize.V1)
	_, err := eventid.Compute(parseEvent(t, `42`), c)
	require.Error(t, err)
	var e *eventid.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, eventid.ErrNotAnObject, e.Kind)
}

func TestInsertThenVerify_RoundTrips(t *testing.T) {
	c := canonicalize.New(canonicalize.V1)
	event := parseEvent(t, `{"event_type":"order.created"}`)

	digest, err := eventid.Compute(event, c)
	require.NoError(t, err)

	withID := eventid.Insert(event, digest)
	require.NoError(t, eventid.Verify(withID, c))
}

func TestVerify_DetectsTampering(t *testing.T) {
	c := canonicalize.New(canonicalize.V1)
	event := parseEvent(t, `{"event_type":"order.created"}`)
	digest, err := eventid.Compute(event, c)
	require.NoError(t, err)

	withID := eventid.Insert(event, digest)
	tampered := parseEvent(t, `{"event_type":"order.cancelled","event_id":{"alg":"sha-256","b64":"`+digest.B64+`"}}`)
	_ = withID

	err = eventid.Verify(tampered, c)
	require.Error(t, err)
	var e *eventid.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, eventid.ErrMismatch, e.Kind)
}

func TestVerify_RejectsMalformedEventID(t *testing.T) {
	c := canonicalize.New(canonicalize.V1)
	event := parseEvent(t, `{"event_type":"order.created","event_id":"not-an-object"}`)
	err := eventid.Verify(event, c)
	require.Error(t, err)
	var e *eventid.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, eventid.ErrMalformedEvent, e.Kind)
}

func TestVerify_RejectsUnsupportedAlg(t *testing.T) {
	c := canonicalize.New(canonicalize.V1)
	event := parseEvent(t, `{"event_type":"x","event_id":{"alg":"sha-1","b64":"abc"}}`)
	err := eventid.Verify(event, c)
	require.Error(t, err)
	var e *eventid.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, eventid.ErrMalformedEvent, e.Kind)
}

func TestInsert_ReplacesExistingEventID(t *testing.T) {
	event := parseEvent(t, `{"event_id":{"alg":"sha-256","b64":"old"},"x":1}`)
	d := value.Digest{Alg: value.AlgSHA256, B64: "new"}
	out := eventid.Insert(event, d)

	id := out.Get("event_id")
	require.NotNil(t, id)
	b64 := id.Get("b64")
	require.NotNil(t, b64)
	assert.Equal(t, "new", b64.Str)
}
