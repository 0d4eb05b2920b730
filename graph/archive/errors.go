package archive

import "errors"

// ErrArchiveCorrupt is returned when a graph archive fails schema
// validation on load: malformed edge keys, missing fields, or
// negative weight/cost attributes.
var ErrArchiveCorrupt = errors.New("archive: corrupt archive")
