// Package storage persists the result of a run.
//
// Drivers:
//   - "file": one indented JSON document, replaced atomically on every Save
//   - "none": discards everything (dry runs)
package storage
