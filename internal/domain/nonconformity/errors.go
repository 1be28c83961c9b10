package nonconformity

import "errors"

var (
	ErrNonConformityNotFound = errors.New("non-conformity not found")
	ErrCodeTaken             = errors.New("non-conformity code already exists")
)
