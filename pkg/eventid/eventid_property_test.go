//go:build property
// +build property

package eventid_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
	"github.com/Northroot-Labs/northroot/pkg/eventid"
	"github.com/Northroot-Labs/northroot/pkg/value"
)

// TestEventID_StableUnderReinsertion verifies that inserting a computed
// event_id and recomputing it from the result always yields the same digest
// — the insert/recompute round trip is a fixed point.
func TestEventID_StableUnderReinsertion(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("event_id is stable across insert/recompute", prop.ForAll(
		func(eventType string) bool {
			if eventType == "" {
				return true
			}
			c := canonicalize.New(canonicalize.V1)
			event := value.Object(value.Member{Key: "event_type", Value: value.String(eventType)})

			d1, err := eventid.Compute(event, c)
			if err != nil {
				return false
			}
			withID := eventid.Insert(event, d1)

			d2, err := eventid.Compute(withID, c)
			if err != nil {
				return false
			}
			return d1 == d2
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

// TestEventID_VerifyAcceptsOwnComputation verifies that Verify always
// succeeds on an event carrying the digest Compute produced for it.
func TestEventID_VerifyAcceptsOwnComputation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Verify accepts a freshly inserted digest", prop.ForAll(
		func(eventType string) bool {
			if eventType == "" {
				return true
			}
			c := canonicalize.New(canonicalize.V1)
			event := value.Object(value.Member{Key: "event_type", Value: value.String(eventType)})

			d, err := eventid.Compute(event, c)
			if err != nil {
				return false
			}
			withID := eventid.Insert(event, d)
			return eventid.Verify(withID, c) == nil
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
