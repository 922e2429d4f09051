// Package archive writes comic-book containers.
//
// Two backends implement [Sink]: CBZ, a zip file with uncompressed entries,
// and CBT, a GNU tar file. Both write entries in call order with fixed
// metadata (mode 0755, epoch timestamps), so the same sequence of calls
// always produces the same bytes.
//
// # Thread Safety
//
// Backends are not safe for concurrent use. Wrap one with [NewLocked] to
// share it between goroutines; every call then holds the guard's mutex for
// its whole duration, so at most one write is in flight at a time.
package archive
