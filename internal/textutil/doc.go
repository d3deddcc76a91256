// Package textutil turns arbitrary strings into filesystem-safe tokens used
// for lock and state file names.
package textutil
