package id

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCertificateCode_Format(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 30, 5, 0, time.UTC)

	code, err := NewCertificateCode("CERT", now)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CERT-20260115143005-[2-9A-HJ-NP-Z]{4}$`), code)
}

func TestNewNonConformityCode_Format(t *testing.T) {
	now := time.Date(2026, 3, 2, 23, 59, 0, 0, time.FixedZone("CST", -6*3600))

	code, err := NewNonConformityCode("NC", now)

	require.NoError(t, err)
	// stamp is taken in UTC
	assert.Regexp(t, regexp.MustCompile(`^NC-20260303-[2-9A-HJ-NP-Z]{6}$`), code)
}

func TestRandomSuffix_RejectsNonPositiveLength(t *testing.T) {
	_, err := RandomSuffix(0)
	assert.Error(t, err)
}

func TestRandomSuffix_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		s, err := RandomSuffix(8)
		require.NoError(t, err)
		seen[s] = struct{}{}
	}
	assert.Greater(t, len(seen), 45)
}
