// Package verifier performs offline verification of a .nrj journal: it
// streams frames from a journal.Reader and recomputes/cross-checks each
// event's event_id, per spec §4.3/§8.
//
// Trust model, mirrored from the teacher's verifier package: this package
// trusts only the cryptographic primitive (SHA-256) and the canonical
// JSON format. It opens no network connection and makes no judgment about
// the event's domain semantics — the core is untyped (spec §9).
package verifier

import (
	"fmt"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
	"github.com/Northroot-Labs/northroot/pkg/eventid"
	"github.com/Northroot-Labs/northroot/pkg/journal"
	"github.com/Northroot-Labs/northroot/pkg/value"
)

// Verdict is the per-event outcome of a verification pass.
type Verdict string

const (
	VerdictOk      Verdict = "Ok"
	VerdictInvalid Verdict = "Invalid"
)

// EventResult is one event's verification outcome, in journal order.
type EventResult struct {
	Offset   int   `json:"offset"`
	EventID  string `json:"event_id,omitempty"`
	Verdict  Verdict `json:"verdict"`
	Reason   string `json:"reason,omitempty"`
}

// Report is the structured output of a journal verification run (spec
// §7: "a verification run reports total events read, total Ok, total
// Invalid, and the first failing offset").
type Report struct {
	Journal           string        `json:"journal"`
	TotalEvents       int           `json:"total_events"`
	TotalOk           int           `json:"total_ok"`
	TotalInvalid      int           `json:"total_invalid"`
	FirstFailingOffset int          `json:"first_failing_offset,omitempty"`
	TruncationSeen    bool          `json:"truncation_seen,omitempty"`
	Results           []EventResult `json:"results"`
}

// Passed reports whether every event verified Ok.
func (r *Report) Passed() bool { return r.TotalInvalid == 0 }

// Options configures Run.
type Options struct {
	Mode      journal.ReadMode
	MaxEvents int // 0 means unlimited
}

// Run streams every frame of the journal at path, verifying each
// EventJson frame's event_id against its canonical bytes, and returns a
// Report. Verification is a single streaming pass — per spec §4.4/§5,
// the reader never buffers more than one frame at a time, so Run does
// the same: it never loads the whole journal into memory.
func Run(path string, opts Options) (*Report, error) {
	r, err := journal.OpenReader(path, opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("verifier: open %s: %w", path, err)
	}
	defer r.Close()

	c := canonicalize.New(canonicalize.V1)

	report := &Report{Journal: path}
	offset := 0
	firstFailing := -1

	for {
		if opts.MaxEvents > 0 && offset >= opts.MaxEvents {
			break
		}
		v, err := r.ReadNext()
		if err != nil {
			return report, fmt.Errorf("verifier: read frame %d: %w", offset, err)
		}
		if v == nil {
			break
		}

		result := EventResult{Offset: offset}
		if id := v.Get("event_id"); id != nil {
			if b64 := id.Get("b64"); b64 != nil && b64.Kind == value.KindString {
				result.EventID = b64.Str
			}
		}

		if verr := eventid.Verify(v, c); verr != nil {
			result.Verdict = VerdictInvalid
			result.Reason = verr.Error()
			report.TotalInvalid++
			if firstFailing == -1 {
				firstFailing = offset
			}
		} else {
			result.Verdict = VerdictOk
			report.TotalOk++
		}

		report.Results = append(report.Results, result)
		report.TotalEvents++
		offset++
	}

	report.TruncationSeen = r.TruncationSeen
	if firstFailing != -1 {
		report.FirstFailingOffset = firstFailing
	}
	return report, nil
}
