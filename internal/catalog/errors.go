package catalog

import "errors"

// ErrMalformed indicates the catalog document does not have the expected
// tier → list-of-records shape.
var ErrMalformed = errors.New("malformed catalog")
