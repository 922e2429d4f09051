// Package pipeline turns a directory of scanned pages into one archive.
//
// A run moves through five steps:
//
//	Discover → Transform (parallel) → Order → Emit → Close
//
//   - Discover lists the input directory and keeps files whose content is a
//     recognized image, sorted by path.
//   - Transform decodes each file and applies margin trimming, spread
//     splitting and resizing on a bounded worker pool. Each task writes only
//     its own result slot, so tasks share no mutable state.
//   - Order flattens the results and sorts them with page.Sort.
//   - Emit encodes pages that changed (or need a new codec) on the same pool,
//     then writes a cover entry and every page, one at a time, to the
//     archive sink. Untouched pages are copied from their source file.
//   - Close finishes the sink. A run that fails after the output file was
//     created removes it.
//
// Undecodable files are skipped with a warning unless Strict is set, in
// which case the first one aborts the run. Encoding and sink failures always
// abort.
package pipeline
