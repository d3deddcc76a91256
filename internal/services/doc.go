// Package services defines shared utilities consumed by the organizer, the
// batch workflow, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and the file being processed
//     so log lines from every layer can be correlated.
//   - Structured error markers plus the Wrap helper, and FailureKind which
//     turns any per-file failure into a stable label for logs and summaries.
//
// Use these helpers when adding new placement behaviour so error reporting
// stays uniform across files and runs.
package services
