// Command northroot-fixtures generates a small corpus of sample events and
// their computed event_id digests, mirroring
// northroot-canonical/examples/generate_fixtures.rs (SPEC_FULL §E2): each
// fixture gets a fresh random uuid-based correlation_id on every run, so
// repeated generator runs produce distinguishable, non-colliding sample data without the
// generator itself needing any domain knowledge of what the events mean.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
	"github.com/Northroot-Labs/northroot/pkg/eventid"
	"github.com/Northroot-Labs/northroot/pkg/value"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

func Run(args []string, stdout, stderr *os.File) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	outDir := "testdata/fixtures"
	if len(args) > 1 {
		outDir = args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	c := canonicalize.New(canonicalize.V1)
	for i, spec := range sampleSpecs() {
		event := spec.build()
		digest, err := eventid.Compute(event, c)
		if err != nil {
			logger.Error("fixture generation failed", "name", spec.name, "error", err)
			return 1
		}
		withID := eventid.Insert(event, digest)

		canon, err := c.Canonicalize(withID)
		if err != nil {
			logger.Error("canonicalization failed", "name", spec.name, "error", err)
			return 1
		}

		path := filepath.Join(outDir, fmt.Sprintf("%02d_%s.json", i, spec.name))
		if err := os.WriteFile(path, canon.Bytes, 0o644); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger.Info("wrote fixture", "path", path, "event_id", digest.B64)
	}
	return 0
}

type fixtureSpec struct {
	name  string
	build func() *value.Value
}

// sampleSpecs enumerates the fixture shapes worth exercising: a plain
// event, one carrying a dec quantity, one carrying a rat quantity, and one
// with a ContentRef. No fixture carries an int or f64 quantity.
func sampleSpecs() []fixtureSpec {
	return []fixtureSpec{
		{name: "plain", build: plainEvent},
		{name: "decimal_quantity", build: decimalQuantityEvent},
		{name: "rational_quantity", build: rationalQuantityEvent},
		{name: "content_ref", build: contentRefEvent},
	}
}

func plainEvent() *value.Value {
	return value.Object(
		value.Member{Key: "event_type", Value: value.String("sample.plain")},
		value.Member{Key: "correlation_id", Value: value.String(uuid.NewString())},
		value.Member{Key: "note", Value: value.String("generated fixture, no numeric payload")},
	)
}

func decimalQuantityEvent() *value.Value {
	return value.Object(
		value.Member{Key: "event_type", Value: value.String("sample.decimal_quantity")},
		value.Member{Key: "correlation_id", Value: value.String(uuid.NewString())},
		value.Member{Key: "amount", Value: value.Object(
			value.Member{Key: "t", Value: value.String("dec")},
			value.Member{Key: "m", Value: value.String("1050")},
			value.Member{Key: "s", Value: value.Num("2")},
		)},
	)
}

func rationalQuantityEvent() *value.Value {
	return value.Object(
		value.Member{Key: "event_type", Value: value.String("sample.rational_quantity")},
		value.Member{Key: "correlation_id", Value: value.String(uuid.NewString())},
		value.Member{Key: "ratio", Value: value.Object(
			value.Member{Key: "t", Value: value.String("rat")},
			value.Member{Key: "n", Value: value.String("1")},
			value.Member{Key: "d", Value: value.String("3")},
		)},
	)
}

func contentRefEvent() *value.Value {
	return value.Object(
		value.Member{Key: "event_type", Value: value.String("sample.content_ref")},
		value.Member{Key: "correlation_id", Value: value.String(uuid.NewString())},
		value.Member{Key: "payload", Value: value.Object(
			value.Member{Key: "digest", Value: value.Object(
				value.Member{Key: "alg", Value: value.String(value.AlgSHA256)},
				value.Member{Key: "b64", Value: value.String("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")},
			)},
			value.Member{Key: "media_type", Value: value.String("application/octet-stream")},
		)},
	)
}
