// Package backend hosts the thin cgo layer that links the Go API to the
// native gexiv2 library. The real implementation lives behind build tags so
// that the rest of the repository can compile without cgo.
//
// Native GExiv2Metadata pointers never leave this package. Callers receive a
// [Handle], an opaque registry key, and every string, array and byte buffer
// returned by gexiv2 is copied into Go memory before the native original is
// released.
package backend
