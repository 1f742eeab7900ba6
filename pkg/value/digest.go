package value

// Digest identifies content by hash (spec §3, Glossary). v1 fixes
// Alg to "sha-256" and B64 to the base64url-no-pad encoding of 32 raw bytes
// (43 characters).
type Digest struct {
	Alg string `json:"alg"`
	B64 string `json:"b64"`
}

const AlgSHA256 = "sha-256"

// ContentRef references external content by digest without embedding it
// in the canonical event (SPEC_FULL §E3.1; grounded on
// northroot-canonical/tests/golden.rs's ContentRef fixture in the original
// source). It participates in canonicalization like any other object.
type ContentRef struct {
	Digest    Digest `json:"digest"`
	SizeBytes *int64 `json:"size_bytes,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

// IsContentRef reports whether v looks like a serialized ContentRef: an
// object with a "digest" member shaped like a Digest.
func IsContentRef(v *Value) bool {
	if !v.IsObject() {
		return false
	}
	d := v.Get("digest")
	if !d.IsObject() {
		return false
	}
	alg := d.Get("alg")
	b64 := d.Get("b64")
	return alg != nil && alg.Kind == KindString && b64 != nil && b64.Kind == KindString
}

// ProfileId is an opaque string identifying a canonicalization profile
// (spec §3). It never encodes output-encoding choices — only numeric
// bounds and hygiene options.
type ProfileId string

// CanonicalProfileV1 is the literal v1 profile id (spec §6).
const CanonicalProfileV1 ProfileId = "northroot-canonical-v1"
