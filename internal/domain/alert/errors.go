package alert

import "errors"

var (
	ErrAlertNotFound = errors.New("alert not found")
	// ErrNotActive is returned when a resolved or dismissed alert is closed again,
	// including when a concurrent request closed it first.
	ErrNotActive = errors.New("alert is not active")
)
