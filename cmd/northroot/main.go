// Command northroot is the reference CLI for the Northroot trust kernel
// (spec §6). It is an external collaborator, not part of the core: the
// core packages never log, parse flags, or read the environment; log/slog
// appears only in this binary and in cmd/northroot-fixtures.
package main

import (
	"io"
	"log/slog"
	"os"
)

// maxCLIInputBytes bounds stdin reads so a malicious or accidental
// unbounded stream can't exhaust memory; well above any realistic event
// or journal-frame payload (spec's own per-frame cap is 16 MiB).
const maxCLIInputBytes = 64 * 1024 * 1024

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the CLI entrypoint, factored out of main for testability (the
// same shape as cmd/helm/main.go's Run(args, stdout, stderr) int).
func Run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if len(args) < 2 {
		usage(stderr)
		return 64
	}

	switch args[1] {
	case "canonicalize":
		return runCanonicalizeCmd(args[2:], stdout, stderr, logger)
	case "event-id":
		return runEventIDCmd(args[2:], stdout, stderr, logger)
	case "list":
		return runListCmd(args[2:], stdout, stderr, logger)
	case "verify":
		return runVerifyCmd(args[2:], stdout, stderr, logger)
	case "append":
		return runAppendCmd(args[2:], stdout, stderr, logger)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 64
	}
}

func usage(w io.Writer) {
	io.WriteString(w, `northroot - Northroot trust kernel CLI

Usage:
  northroot canonicalize             (stdin: JSON value) -> canonical bytes on stdout
  northroot event-id                 (stdin: event JSON) -> Digest JSON on stdout
  northroot list <path>              list each event's id and type
  northroot verify <path> [flags]    exit 0 on all Ok, non-zero otherwise
  northroot append <path> [flags]    (stdin: event JSON) -> append one frame

Exit codes: 0 success, 1 verification failure, 2 I/O or format error, 64 usage error.
`)
}
