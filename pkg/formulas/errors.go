package formulas

import "errors"

// ErrInvalidInput is returned when a calculator receives structurally
// invalid inputs (non-positive principal, non-positive tenure, and so on).
// Callers must not proceed with a partial computation when this is returned.
var ErrInvalidInput = errors.New("invalid input")
