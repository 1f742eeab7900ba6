package value

// HygieneStatus is the overall verdict of a hygiene pass over a Value,
// per spec §3/§4.2.
type HygieneStatus string

const (
	StatusOk        HygieneStatus = "Ok"
	StatusLossy     HygieneStatus = "Lossy"
	StatusAmbiguous HygieneStatus = "Ambiguous"
	StatusInvalid   HygieneStatus = "Invalid"
)

// Stable warning codes (spec §3, §4.2, §8). These strings are part of the
// wire contract: a future profile may add codes but must never repurpose
// one of these for a different condition.
const (
	WarnDuplicateKeys       = "DuplicateKeys"
	WarnInvalidUTF8         = "InvalidUTF8"
	WarnTrailingGarbage     = "TrailingGarbage"
	WarnNonMinimalInteger   = "NonMinimalInteger"
	WarnNegativeZero        = "NegativeZero"
	WarnScaleOutOfRange     = "ScaleOutOfRange"
	WarnMantissaTooLong     = "MantissaTooLong"
	WarnRationalNotReduced  = "RationalNotReduced"
	WarnNonPositiveDenom    = "NonPositiveDenominator"
	WarnBadFloatBits        = "BadFloatBits"
	WarnUnknownQuantityType = "UnknownQuantityType"
	WarnFloatInNumericField = "FloatInNumericField"
)

// HygieneReport accumulates the outcome of validating a Value, per spec §3.
type HygieneReport struct {
	Status    HygieneStatus  `json:"status"`
	Warnings  []string       `json:"warnings"`
	Metrics   map[string]int `json:"metrics"`
	ProfileID string         `json:"profile_id,omitempty"`
}

// NewHygieneReport returns an empty, Ok-status report.
func NewHygieneReport(profileID string) *HygieneReport {
	return &HygieneReport{
		Status:    StatusOk,
		Warnings:  nil,
		Metrics:   make(map[string]int),
		ProfileID: profileID,
	}
}

// AddWarning appends a warning code and bumps its metric counter. It does
// not by itself change Status — callers decide which codes are fatal via
// Invalidate, since some warnings (reserved for future profiles) may be
// informational only.
func (r *HygieneReport) AddWarning(code string) {
	r.Warnings = append(r.Warnings, code)
	r.Metrics[metricNameFor(code)]++
}

// Invalidate marks the report Invalid and records the triggering warning.
// Once Invalid, Status never regresses to a weaker verdict.
func (r *HygieneReport) Invalidate(code string) {
	r.AddWarning(code)
	r.Status = StatusInvalid
}

func metricNameFor(code string) string {
	switch code {
	case WarnDuplicateKeys:
		return "duplicate_keys"
	case WarnFloatInNumericField:
		return "numeric_coercions"
	case WarnScaleOutOfRange, WarnMantissaTooLong:
		return "bound_violations"
	default:
		return "other_" + code
	}
}

// Merge folds other into r, preserving the stronger (more severe) status.
func (r *HygieneReport) Merge(other *HygieneReport) {
	if other == nil {
		return
	}
	r.Warnings = append(r.Warnings, other.Warnings...)
	for k, v := range other.Metrics {
		r.Metrics[k] += v
	}
	if severity(other.Status) > severity(r.Status) {
		r.Status = other.Status
	}
}

func severity(s HygieneStatus) int {
	switch s {
	case StatusOk:
		return 0
	case StatusLossy:
		return 1
	case StatusAmbiguous:
		return 2
	case StatusInvalid:
		return 3
	default:
		return 3
	}
}
