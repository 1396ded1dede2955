package engine

import "errors"

// ErrInvalidParameter covers every rejected input: negative rates,
// shares outside [0,1], unknown amortization modes, non-positive terms,
// a project term shorter than the loan term. It is only ever returned
// by New; a constructed Project cannot fail mid-calculation.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrUnavailableFeature is returned by Tabulate when no rendering
// backend is registered for the requested format. It does not affect
// any other method on the Project.
var ErrUnavailableFeature = errors.New("feature unavailable")
