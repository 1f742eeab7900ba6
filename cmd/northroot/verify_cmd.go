package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Northroot-Labs/northroot/pkg/journal"
	"github.com/Northroot-Labs/northroot/pkg/verifier"
)

// runVerifyCmd implements `northroot verify <path>` (spec §6): exit 0 on
// all Ok, non-zero with a count of failures otherwise.
func runVerifyCmd(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	cmd := flag.NewFlagSet("verify", flag.ContinueOnError)
	cmd.SetOutput(stderr)
	jsonOutput := cmd.Bool("json", false, "emit the structured verification report as JSON")
	permissive := cmd.Bool("permissive", false, "tolerate trailing truncation instead of erroring")
	maxEvents := cmd.Int("max-events", 0, "stop after this many events (0 = unlimited)")
	maxSize := cmd.Int64("max-size", 0, "refuse journals larger than this many bytes (0 = unlimited)")
	if err := cmd.Parse(args); err != nil {
		return 64
	}
	if cmd.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: verify requires a journal path")
		return 64
	}
	path := cmd.Arg(0)

	if *maxSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to stat journal: %s\n", sanitizePath(path))
			return 2
		}
		if info.Size() > *maxSize {
			fmt.Fprintf(stderr, "Error: journal size %d exceeds maximum %d bytes\n", info.Size(), *maxSize)
			return 2
		}
	}

	mode := journal.Strict
	if *permissive {
		mode = journal.Permissive
	}

	report, err := verifier.Run(path, verifier.Options{Mode: mode, MaxEvents: *maxEvents})
	if err != nil {
		logger.Warn("verification run failed", "path", sanitizePath(path), "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if *jsonOutput {
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(stdout, string(out))
	} else {
		fmt.Fprintf(stdout, "%-44s %s\n", "EVENT_ID", "VERDICT")
		fmt.Fprintln(stdout, "--------------------------------------------------------")
		for _, res := range report.Results {
			fmt.Fprintf(stdout, "%-44s %s\n", res.EventID, res.Verdict)
		}
		fmt.Fprintf(stdout, "\n%d/%d events Ok, %d Invalid\n", report.TotalOk, report.TotalEvents, report.TotalInvalid)
	}

	if !report.Passed() {
		return 1
	}
	return 0
}
