package quality

import "errors"

var (
	ErrControlNotFound = errors.New("quality control not found")
	// ErrAlreadyInspected is returned by the repository when the lot already
	// has an inspection, whether detected by lookup or by the unique index.
	ErrAlreadyInspected = errors.New("production record already has a quality control")
)
