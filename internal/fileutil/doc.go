// Package fileutil holds the filesystem primitives the placement engine relies
// on: streaming copies, renames that survive volume boundaries, and the hard-link
// strategy chain.
//
// Hard links are created through a Linker. NewLinker resolves the strategy list
// for the current platform once (runtime primitive, then the platform system
// call, then the external ln tool on unix) and classifies the final failure as
// a CrossDeviceLinkError, LinkUnsupportedError, or LinkFailedError. Callers match
// on those types with errors.As; the chain never substitutes a copy.
package fileutil
