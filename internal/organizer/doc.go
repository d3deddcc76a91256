// Package organizer places parsed episode files into the per-series library
// layout.
//
// The Engine computes <target>/<series>/<episode> <tags><ext>, creates the
// series directory, and moves, copies, or hard-links the source into place.
// Link mode goes through a fileutil.Linker and never falls back to copying;
// cross-device and unsupported-link failures surface as typed errors. Every
// per-file failure is logged once and returned inside the Outcome so a batch
// keeps going.
package organizer
