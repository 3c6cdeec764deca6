package record

import "errors"

// ErrInvalidImport is returned when imported data is not a JSON object or a
// known field cannot be decoded.
var ErrInvalidImport = errors.New("invalid file format")
