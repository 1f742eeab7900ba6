//go:build property
// +build property

package canonicalize_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
)

// TestCanonicalize_IdempotentOverRandomObjects verifies that re-canonicalizing
// already-canonical bytes always reproduces them exactly.
func TestCanonicalize_IdempotentOverRandomObjects(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("canonicalization is idempotent", prop.ForAll(
		func(keys []string, values []int) bool {
			c := canonicalize.New(canonicalize.V1)
			obj := map[string]int{}
			for i := 0; i < len(keys) && i < len(values); i++ {
				if keys[i] != "" {
					obj[keys[i]] = values[i]
				}
			}
			if len(obj) == 0 {
				return true
			}

			raw := "{"
			first := true
			for k, v := range obj {
				if !first {
					raw += ","
				}
				first = false
				raw += `"` + k + `":` + itoa(v)
			}
			raw += "}"

			once, err := c.CanonicalizeBytes([]byte(raw))
			if err != nil {
				return true
			}
			twice, err := c.CanonicalizeBytes(once.Bytes)
			if err != nil {
				return false
			}
			return string(once.Bytes) == string(twice.Bytes)
		},
		gen.SliceOfN(5, gen.Identifier()),
		gen.SliceOfN(5, gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
