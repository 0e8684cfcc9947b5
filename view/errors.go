package view

import "errors"

// ErrOriginUnavailable is returned by Recover when the wrapped value
// carries no origin marker, i.e. it was wrapped with origin tracking
// disabled or was not produced by Wrap at all.
var ErrOriginUnavailable = errors.New("no origin recorded for wrapped entity")
