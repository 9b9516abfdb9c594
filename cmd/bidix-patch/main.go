// Command bidix-patch converts a bilingual word-pair list into a bidix patch
// file: one <e> element per pair, grouped by the left word's part-of-speech
// tag and sorted by that tag.
//
// Usage:
//
//	bidix-patch [flags] <input-file>
//
// Flags:
//
//	-w, --workdir  directory holding the input and output files (default ".")
//	-o, --output   output file name inside the work dir (default "bidix.patches")
//	    --config   path to a YAML config file (optional; falls back to env)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("bidix-patch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
