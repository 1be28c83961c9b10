package certificate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) *Certificate {
	t.Helper()
	c, err := NewCertificate("CERT-20260115143005-7KQ2", 3, 10, nil, 8)
	require.NoError(t, err)
	return c
}

func TestNewCertificate_StartsPending(t *testing.T) {
	c := newPending(t)

	assert.Equal(t, StatusPending, c.Status())
	assert.Nil(t, c.ApprovedBy())
	assert.Nil(t, c.DocumentRef())
}

func TestApprove(t *testing.T) {
	c := newPending(t)
	at := time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC)

	require.NoError(t, c.Approve(2, "certificates/2026/01/16/x.pdf", at))

	assert.Equal(t, StatusApproved, c.Status())
	assert.Equal(t, uint(2), *c.ApprovedBy())
	assert.Equal(t, at, *c.ApprovedAt())
	ref, err := c.DownloadableRef()
	require.NoError(t, err)
	assert.Equal(t, "certificates/2026/01/16/x.pdf", ref)
}

func TestApprove_RequiresDocument(t *testing.T) {
	c := newPending(t)

	assert.Error(t, c.Approve(2, "", time.Now()))
	assert.Equal(t, StatusPending, c.Status())
}

func TestReject(t *testing.T) {
	c := newPending(t)

	assert.Error(t, c.Reject(2, " ", time.Now()))
	require.NoError(t, c.Reject(2, "dimensiones fuera de tolerancia", time.Now()))

	assert.Equal(t, StatusRejected, c.Status())
	assert.Equal(t, "dimensiones fuera de tolerancia", c.RejectionReason())
	assert.Nil(t, c.DocumentRef())
	_, err := c.DownloadableRef()
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestDecidedCertificatesAreTerminal(t *testing.T) {
	approved := newPending(t)
	require.NoError(t, approved.Approve(2, "ref", time.Now()))
	assert.ErrorIs(t, approved.Approve(2, "ref2", time.Now()), ErrNotPending)
	assert.ErrorIs(t, approved.Reject(2, "late", time.Now()), ErrNotPending)

	rejected := newPending(t)
	require.NoError(t, rejected.Reject(2, "no", time.Now()))
	assert.ErrorIs(t, rejected.Approve(2, "ref", time.Now()), ErrNotPending)
	assert.ErrorIs(t, rejected.Reject(2, "again", time.Now()), ErrNotPending)
}

func TestDownloadableRef_Pending(t *testing.T) {
	_, err := newPending(t).DownloadableRef()
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestDownloadableRef_ApprovedWithoutDocument(t *testing.T) {
	c, err := ReconstructCertificate(1, "C", 3, 10, nil, 8, nil, StatusApproved, nil, nil, "", time.Now(), time.Now())
	require.NoError(t, err)

	_, err = c.DownloadableRef()
	assert.ErrorIs(t, err, ErrDocumentMissing)
}

func TestRegenerateCode(t *testing.T) {
	c := newPending(t)
	require.NoError(t, c.RegenerateCode("CERT-2"))
	assert.Equal(t, "CERT-2", c.Code())

	require.NoError(t, c.SetID(4))
	assert.Error(t, c.RegenerateCode("CERT-3"))
}
