// Package page defines the unit of work of the pipeline: one decoded page
// image together with the key that decides where it lands in the archive.
//
// # Ordering
//
// Pages order by the number found in their source path, then by half with
// the fixed precedence None < Right < Left, then by discovery position. The
// last key only matters for malformed input where two files yield the same
// number; it keeps the result deterministic by falling back to path order.
// Pixel content never takes part in ordering or equality.
package page
