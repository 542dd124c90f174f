// Package libdiff computes differences between doc.Node trees.
//
// Diff produces an RFC 6902 JSON Patch, as a doc.Node array of operation
// objects, which turns one tree into another when applied in order (see
// package patch). Objects are compared field by field; arrays are aligned
// by a sequence diff of element summaries so that insertions and
// deletions in the middle of an array produce add and remove operations
// rather than a cascade of replacements.
//
// Lines produces a line oriented textual diff of the indented JSON form of
// two trees, for display.
package libdiff
