package storage

import "errors"

// ErrDisabled is returned by Save on the "none" driver.
var ErrDisabled = errors.New("storage disabled")

// DefaultPath is where the file driver writes when Path is empty.
const DefaultPath = "available_slots.json"

// Config configures storage.
//
// Driver values:
//   - "file" (default when empty)
//   - "none"
type Config struct {
	Driver string
	Path   string
}
