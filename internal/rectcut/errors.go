package rectcut

import "errors"

var (
	// ErrInvalidDimensions is returned for non-positive or over-limit
	// grid dimensions. Distinct from a count of zero, which is a valid
	// mathematical answer (e.g. for odd-by-odd grids).
	ErrInvalidDimensions = errors.New("rectcut: invalid dimensions")

	// ErrSearchSpaceTooLarge is returned when the mask space for the
	// requested grid exceeds the exhaustive-search bound. Callers get
	// this error, never an approximation.
	ErrSearchSpaceTooLarge = errors.New("rectcut: search space too large")
)

// AssertionError marks a programming error, such as an out-of-range
// cell index. It is panicked, not returned.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
