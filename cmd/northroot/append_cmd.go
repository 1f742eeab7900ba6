package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
	"github.com/Northroot-Labs/northroot/pkg/eventid"
	"github.com/Northroot-Labs/northroot/pkg/journal"
	"github.com/Northroot-Labs/northroot/pkg/value"
)

// runAppendCmd implements `northroot append <path>` (SPEC_FULL §E3.2): reads
// one event from stdin, canonicalizes it, computes and inserts its
// event_id, and appends the result as a single frame. This is the
// write-side half of the round trip that canonicalize+event-id alone
// can't exercise end-to-end.
func runAppendCmd(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	cmd := flag.NewFlagSet("append", flag.ContinueOnError)
	cmd.SetOutput(stderr)
	syncAfter := cmd.Bool("sync", false, "fsync after the append")
	if err := cmd.Parse(args); err != nil {
		return 64
	}
	if cmd.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: append requires a journal path")
		return 64
	}
	path := cmd.Arg(0)

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
		fmt.Fprintf(stderr, "Error: computing event_id: %v\n", err)
		return 2
	}
	withID := eventid.Insert(v, digest)

	canon, err := c.Canonicalize(withID)
	if err != nil {
		fmt.Fprintf(stderr, "Error: canonicalizing event: %v\n", err)
		return 2
	}

	opts := journal.DefaultWriteOptions()
	opts.SyncAfterAppend = *syncAfter
	w, err := journal.OpenWriter(path, opts)
	if err != nil {
		logger.Warn("failed to open journal for append", "path", sanitizePath(path), "error", err)
		fmt.Fprintf(stderr, "Error: failed to open journal: %s\n", sanitizePath(path))
		return 2
	}

	if err := w.AppendEvent(canon.Bytes); err != nil {
		fmt.Fprintf(stderr, "Error: append failed: %v\n", err)
		return 2
	}
	if err := w.Finish(); err != nil {
		fmt.Fprintf(stderr, "Error: finish failed: %v\n", err)
		return 2
	}

	fmt.Fprintln(stdout, digest.B64)
	return 0
}
