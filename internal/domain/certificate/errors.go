package certificate

import "errors"

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	// ErrNotPending is returned when a decided certificate is approved or rejected again.
	ErrNotPending = errors.New("certificate is not pending")
	// ErrCodeTaken is returned by the repository when the generated code collides.
	ErrCodeTaken = errors.New("certificate code already exists")
	// ErrNotApproved means the document cannot be downloaded yet.
	ErrNotApproved = errors.New("certificate is not approved")
	// ErrDocumentMissing means an approved certificate has no stored document.
	ErrDocumentMissing = errors.New("certificate document not found")
)
