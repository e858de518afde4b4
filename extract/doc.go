// Package extract turns PDF documents into ordered, layout-aware text blocks.
//
// The Extractor merges the sub-spans of each visual line into one TextBlock:
// text concatenated in reading order, bounding boxes unioned, font size and
// name taken as the modal value across spans, and bold/italic set if any
// span's font name says so. RelativeY normalizes the block's vertical center
// to [0,1] from the top of the page, independent of page size.
//
// Batch runs extraction across documents over a bounded worker pool, with
// per-document failure isolation and an optional content-hash block cache.
package extract
