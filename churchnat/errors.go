package churchnat

import "fmt"

// ErrNegative is returned when asked to encode a negative integer.
type ErrNegative struct {
	K int64
}

func (e ErrNegative) Error() string {
	return fmt.Sprintf("churchnat: cannot encode negative integer %d", e.K)
}

// ErrDepthExceeded is returned when a numeral is too large to build or run
// within the configured limit.
type ErrDepthExceeded struct {
	Depth uint64
	Limit int
	// AtLeast is set when the numeral was stopped while running,
	// and Depth is only a lower bound.
	AtLeast bool
}

func (e ErrDepthExceeded) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("churchnat: numeral needs more than %d applications, limit is %d", e.Depth-1, e.Limit)
	}
	return fmt.Sprintf("churchnat: numeral needs %d applications, limit is %d", e.Depth, e.Limit)
}
