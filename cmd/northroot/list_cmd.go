package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/Northroot-Labs/northroot/pkg/journal"
	"github.com/Northroot-Labs/northroot/pkg/value"
)

// runListCmd implements `northroot list <path>` (spec §6): print each
// event's id and type.
func runListCmd(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	cmd := flag.NewFlagSet("list", flag.ContinueOnError)
	cmd.SetOutput(stderr)
	permissive := cmd.Bool("permissive", false, "tolerate trailing truncation instead of erroring")
	maxEvents := cmd.Int("max-events", 0, "stop after this many events (0 = unlimited)")
	if err := cmd.Parse(args); err != nil {
		return 64
	}
	if cmd.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: list requires a journal path")
		return 64
	}
	path := cmd.Arg(0)

	mode := journal.Strict
	if *permissive {
		mode = journal.Permissive
	}

	r, err := journal.OpenReader(path, mode)
	if err != nil {
		logger.Warn("failed to open journal", "path", sanitizePath(path), "error", err)
		fmt.Fprintf(stderr, "Error: failed to open journal: %s\n", sanitizePath(path))
		return 2
	}
	defer r.Close()

	fmt.Fprintf(stdout, "%-44s %s\n", "EVENT_ID", "EVENT_TYPE")
	count := 0
	for {
		if *maxEvents > 0 && count >= *maxEvents {
			break
		}
		v, err := r.ReadNext()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		if v == nil {
			break
		}
		fmt.Fprintf(stdout, "%-44s %s\n", eventIDOf(v), eventTypeOf(v))
		count++
	}
	return 0
}

func eventIDOf(v *value.Value) string {
	id := v.Get("event_id")
	if id == nil {
		return "-"
	}
	b64 := id.Get("b64")
	if b64 == nil || b64.Kind != value.KindString {
		return "-"
	}
	return b64.Str
}

func eventTypeOf(v *value.Value) string {
	t := v.Get("event_type")
	if t == nil || t.Kind != value.KindString {
		return "-"
	}
	return t.Str
}
