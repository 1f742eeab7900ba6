package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
	"github.com/Northroot-Labs/northroot/pkg/eventid"
	"github.com/Northroot-Labs/northroot/pkg/value"
)

// runEventIDCmd implements `northroot event-id` (spec §6): stdin event
// JSON -> Digest JSON on stdout.
func runEventIDCmd(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	cmd := flag.NewFlagSet("event-id", flag.ContinueOnError)
	cmd.SetOutput(stderr)
	if err := cmd.Parse(args); err != nil {
		return 64
	}

	input, err := io.ReadAll(io.LimitReader(os.Stdin, maxCLIInputBytes))
	if err != nil {
		fmt.Fprintf(stderr, "Error: reading stdin: %v\n", err)
		return 2
	}

	v, err := value.Parse(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	c := canonicalize.New(canonicalize.V1)
	digest, err := eventid.Compute(v, c)
	if err != nil {
		logger.Warn("event-id computation failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	out, err := json.Marshal(digest)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}
