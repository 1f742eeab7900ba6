package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Northroot-Labs/northroot/pkg/canonicalize"
)

// runCanonicalizeCmd implements `northroot canonicalize` (spec §6):
// stdin -> canonical RFC 8785 bytes on stdout.
func runCanonicalizeCmd(args []string, stdout, stderr io.Writer, logger *slog.Logger) int {
	cmd := flag.NewFlagSet("canonicalize", flag.ContinueOnError)
	cmd.SetOutput(stderr)
	profileID := cmd.String("profile", string(canonicalize.V1.ID), "canonicalization profile id")
	if err := cmd.Parse(args); err != nil {
		return 64
	}

	input, err := io.ReadAll(io.LimitReader(os.Stdin, maxCLIInputBytes))
	if err != nil {
		fmt.Fprintf(stderr, "Error: reading stdin: %v\n", err)
		return 2
	}

	profile, err := canonicalize.Lookup(*profileID)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 64
	}

	c := canonicalize.New(profile)
	result, err := c.CanonicalizeBytes(input)
	if err != nil {
		logger.Warn("canonicalization failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	stdout.Write(result.Bytes)
	return 0
}
