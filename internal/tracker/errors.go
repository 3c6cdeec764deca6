package tracker

import "errors"

// ErrInvalidSplit is returned when saving a budget split that does not sum
// to 100%.
var ErrInvalidSplit = errors.New("budget split must total 100%")
