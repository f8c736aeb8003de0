package formats

import "errors"

// ErrUnknownName is returned by ParseFormat for a name that matches no format.
var ErrUnknownName = errors.New("formats: unknown format name")
