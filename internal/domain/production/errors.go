package production

import "errors"

var (
	ErrRecordNotFound = errors.New("production record not found")
	// ErrTotalsExceeded is returned when approved plus rejected is above total produced.
	ErrTotalsExceeded = errors.New("sum of approved and rejected exceeds total produced")
)
