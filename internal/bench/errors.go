package bench

import "errors"

// ErrArchiveCorrupt is returned when a benchmark archive fails schema
// validation on load: a non-integer key, or a negative duration.
var ErrArchiveCorrupt = errors.New("bench: corrupt archive")
