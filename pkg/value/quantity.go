package value

import (
	"math/big"
	"regexp"
)

// QuantityBounds carries the numeric bounds a ProfileId selects (spec §3).
// The default profile bounds are DefaultQuantityBounds.
type QuantityBounds struct {
	MinScale     int // inclusive
	MaxScale     int // inclusive
	MaxMantissaDigits int
}

// DefaultQuantityBounds are the v1 "northroot-canonical-v1" defaults: scale
// in 0..=18, mantissa digit count <= 39 (spec §3).
var DefaultQuantityBounds = QuantityBounds{
	MinScale:          0,
	MaxScale:          18,
	MaxMantissaDigits: 39,
}

var (
	integerPattern = regexp.MustCompile(`^-?[0-9]+$`)
	hex16Pattern   = regexp.MustCompile(`^[0-9a-f]{16}$`)
)

// IsQuantityObject reports whether v is a JSON object carrying the
// quantity discriminant "t" with one of the four recognized values.
func IsQuantityObject(v *Value) (string, bool) {
	if !v.IsObject() {
		return "", false
	}
	t := v.Get("t")
	if t == nil || t.Kind != KindString {
		return "", false
	}
	switch t.Str {
	case "dec", "int", "rat", "f64":
		return t.Str, true
	default:
		return t.Str, false
	}
}

// ValidateQuantity checks v (known to carry t=kind) against the rules of
// spec §3, recording any violation on report and returning a boolean that
// is true only when the quantity is fully well-formed.
func ValidateQuantity(kind string, v *Value, bounds QuantityBounds, report *HygieneReport) bool {
	switch kind {
	case "dec":
		return validateDec(v, bounds, report)
	case "int":
		return validateIntQuantity(v, bounds, report)
	case "rat":
		return validateRat(v, report)
	case "f64":
		return validateF64(v, report)
	default:
		report.Invalidate(WarnUnknownQuantityType)
		return false
	}
}

// validateMantissa enforces the shared m/v digit-string rules: matches
// -?[0-9]+, minimal (no leading zeros; "0" is the sole zero representation;
// "-0" forbidden), and within the mantissa digit bound.
func validateMantissa(s string, bounds QuantityBounds, report *HygieneReport) bool {
	if !integerPattern.MatchString(s) {
		report.Invalidate(WarnNonMinimalInteger)
		return false
	}
	neg := s[0] == '-'
	digits := s
	if neg {
		digits = s[1:]
	}
	if neg && digits == "0" {
		report.Invalidate(WarnNegativeZero)
		return false
	}
	if len(digits) > 1 && digits[0] == '0' {
		report.Invalidate(WarnNonMinimalInteger)
		return false
	}
	if len(digits) > bounds.MaxMantissaDigits {
		report.Invalidate(WarnMantissaTooLong)
		return false
	}
	return true
}

func validateDec(v *Value, bounds QuantityBounds, report *HygieneReport) bool {
	m := v.Get("m")
	s := v.Get("s")
	if m == nil || m.Kind != KindString {
		report.Invalidate(WarnNonMinimalInteger)
		return false
	}
	ok := validateMantissa(m.Str, bounds, report)

	if s == nil {
		report.Invalidate(WarnScaleOutOfRange)
		return false
	}
	scale, isInt := scaleOf(s)
	if !isInt {
		report.Invalidate(WarnScaleOutOfRange)
		return false
	}
	if scale < bounds.MinScale || scale > bounds.MaxScale {
		report.Invalidate(WarnScaleOutOfRange)
		ok = false
	}
	return ok
}

// scaleOf reads the "s" field of a dec quantity, which per spec §3 is a
// "non-negative integer" — the wire representation is a JSON number (not a
// digit string), unlike "m"/"v"/"n"/"d".
func scaleOf(s *Value) (int, bool) {
	if s.Kind != KindNumber {
		return 0, false
	}
	n := new(big.Int)
	if _, ok := n.SetString(string(s.Num), 10); !ok {
		return 0, false
	}
	if n.Sign() < 0 || !n.IsInt64() {
		return 0, false
	}
	return int(n.Int64()), true
}

func validateIntQuantity(v *Value, bounds QuantityBounds, report *HygieneReport) bool {
	vv := v.Get("v")
	if vv == nil || vv.Kind != KindString {
		report.Invalidate(WarnNonMinimalInteger)
		return false
	}
	return validateMantissa(vv.Str, bounds, report)
}

func validateRat(v *Value, report *HygieneReport) bool {
	n := v.Get("n")
	d := v.Get("d")
	if n == nil || n.Kind != KindString || d == nil || d.Kind != KindString {
		report.Invalidate(WarnNonMinimalInteger)
		return false
	}

	// "n" follows the shared mantissa rules (no leading zeros, -0 forbidden).
	bigBounds := QuantityBounds{MaxMantissaDigits: 1 << 20}
	if !validateMantissa(n.Str, bigBounds, report) {
		return false
	}

	dInt := new(big.Int)
	if _, ok := dInt.SetString(d.Str, 10); !ok {
		report.Invalidate(WarnNonPositiveDenom)
		return false
	}
	if dInt.Sign() <= 0 {
		report.Invalidate(WarnNonPositiveDenom)
		return false
	}
	// d must itself be minimal (no leading zeros) — it is always
	// non-negative so there is no sign/NegativeZero case to check.
	if len(d.Str) > 1 && d.Str[0] == '0' {
		report.Invalidate(WarnNonMinimalInteger)
		return false
	}

	nInt := new(big.Int)
	nInt.SetString(n.Str, 10)
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(nInt), dInt)
	if g.Cmp(big.NewInt(1)) != 0 {
		report.Invalidate(WarnRationalNotReduced)
		return false
	}
	return true
}

func validateF64(v *Value, report *HygieneReport) bool {
	bits := v.Get("bits")
	if bits == nil || bits.Kind != KindString {
		report.Invalidate(WarnBadFloatBits)
		return false
	}
	if !hex16Pattern.MatchString(bits.Str) {
		report.Invalidate(WarnBadFloatBits)
		return false
	}
	// Reject non-canonical NaN payloads by default (spec §9 Open Questions:
	// "the core should default to rejecting non-canonical NaN payloads
	// unless a future profile explicitly allows them"). IEEE-754 double
	// exponent field is bits[1:12] of the 64-bit pattern; all-ones marks
	// NaN/Infinity.
	raw, ok := parseHex64(bits.Str)
	if !ok {
		report.Invalidate(WarnBadFloatBits)
		return false
	}
	exponent := (raw >> 52) & 0x7FF
	mantissa := raw & ((uint64(1) << 52) - 1)
	if exponent == 0x7FF {
		// Infinity is canonical (mantissa==0); any NaN is rejected in v1.
		if mantissa != 0 {
			report.Invalidate(WarnBadFloatBits)
			return false
		}
	}
	return true
}

func parseHex64(s string) (uint64, bool) {
	var out uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		default:
			return 0, false
		}
		out = out<<4 | d
	}
	return out, true
}
