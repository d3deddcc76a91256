// Package workflow drives one organize pass over a source tree.
//
// The Runner enumerates media files, parses each name, hands matches to the
// organizer Engine, and accumulates a Summary. Files are processed one at a
// time and independently: a failure is recorded and the run moves on.
// Non-dry runs hold an exclusive lock per target directory so two passes
// never rearrange the same library concurrently.
package workflow
