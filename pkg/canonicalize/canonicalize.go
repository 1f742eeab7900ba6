// Package canonicalize implements the Northroot canonicalization engine
// (spec §4.2): structural and numeric hygiene validation over a parsed
// value.Value, followed by RFC 8785 (JSON Canonicalization Scheme)
// serialization.
package canonicalize

import (
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/Northroot-Labs/northroot/pkg/value"
)

// CanonicalResult is the output of a successful canonicalization (spec §3).
type CanonicalResult struct {
	Bytes   []byte
	Profile value.ProfileId
	Hygiene *value.HygieneReport
}

// HygieneError is returned when canonicalization input review produces a
// HygieneStatus of Invalid. The caller gets the full report; spec §4.1
// says callers may gate downstream use on status==Ok, implying some callers
// tolerate Lossy/Ambiguous. Only Invalid stops canonicalize() from
// producing bytes.
type HygieneError struct {
	Report *value.HygieneReport
}

func (e *HygieneError) Error() string {
	return fmt.Sprintf("canonicalization: hygiene status %s (%d warnings)", e.Report.Status, len(e.Report.Warnings))
}

// Profile captures the numeric bounds and policy knobs a ProfileId selects
// (spec §4.2's "Profile identity": any change to these rules needs a new
// id). EnforceNumericField is the only policy toggle; V1 leaves it off.
type Profile struct {
	ID                  value.ProfileId
	Bounds              value.QuantityBounds
	EnforceNumericField bool
}

// V1 is the canonical v1 profile: "northroot-canonical-v1" with the
// default quantity bounds of spec §3 and no schema-typed numeric-field
// enforcement (the core is schema-agnostic by default, per spec §4.1).
var V1 = Profile{
	ID:                  value.CanonicalProfileV1,
	Bounds:              value.DefaultQuantityBounds,
	EnforceNumericField: false,
}

// Canonicalizer is a reusable, stateless value object (spec §5: "may be
// shared by any number of concurrent callers"). It holds nothing but a
// Profile, which is immutable after construction.
type Canonicalizer struct {
	profile Profile
}

// New returns a Canonicalizer bound to profile. Profiles are immutable
// value objects; the same Canonicalizer may be reused across goroutines.
func New(profile Profile) *Canonicalizer { return &Canonicalizer{profile: profile} }

// Profile returns the canonicalizer's bound profile.
func (c *Canonicalizer) Profile() Profile { return c.profile }

// Canonicalize runs the full pipeline of spec §4.2 over v and returns the
// canonical RFC 8785 bytes. If hygiene status is Invalid, it returns
// *HygieneError (wrapping the full report) and no bytes — "no rounding
// occurs" (spec §8).
func (c *Canonicalizer) Canonicalize(v *value.Value) (*CanonicalResult, error) {
	report := value.NewHygieneReport(string(c.profile.ID))

	validateTree(v, c.profile, report)

	if report.Status == value.StatusInvalid {
		return nil, &HygieneError{Report: report}
	}

	intermediate, err := value.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: re-encode failed: %w", err)
	}

	canonical, err := jcs.Transform(intermediate)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: RFC 8785 transform failed: %w", err)
	}

	return &CanonicalResult{
		Bytes:   canonical,
		Profile: c.profile.ID,
		Hygiene: report,
	}, nil
}

// CanonicalizeBytes parses data with value.Parse and canonicalizes the
// result, folding any parse-time structural errors into the hygiene report
// exactly as a validation-stage failure would be, per spec §4.1/§4.2's
// shared "Structural validation" stage.
func (c *Canonicalizer) CanonicalizeBytes(data []byte) (*CanonicalResult, error) {
	v, err := value.Parse(data)
	if err != nil {
		report := value.NewHygieneReport(string(c.profile.ID))
		if pe, ok := err.(*value.ParseError); ok {
			report.Invalidate(pe.Code)
		} else {
			report.Invalidate("InvalidJSON")
		}
		return nil, &HygieneError{Report: report}
	}
	return c.Canonicalize(v)
}

// validateTree walks v depth-first applying quantity validation (stage 2)
// and numeric-field policy (stage 3) of spec §4.2.
func validateTree(v *value.Value, profile Profile, report *value.HygieneReport) {
	if v == nil {
		return
	}

	if kind, isQuantity := value.IsQuantityObject(v); isQuantity {
		value.ValidateQuantity(kind, v, profile.Bounds, report)
		// A quantity's own structural members (m, s, t, v, n, d, bits) are
		// plain strings/numbers; no further recursion is meaningful beyond
		// what ValidateQuantity already inspected.
		return
	}

	if v.Kind == value.KindNumber && v.NumericField && profile.EnforceNumericField {
		report.Invalidate(value.WarnFloatInNumericField)
		return
	}

	switch v.Kind {
	case value.KindArray:
		for _, item := range v.Arr {
			validateTree(item, profile, report)
		}
	case value.KindObject:
		for _, m := range v.Object {
			validateTree(m.Value, profile, report)
		}
	}
}
