// Package id generates human-readable business codes for certificates and non-conformities.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Upper-case alphanumerics without the look-alike characters 0, O, 1 and I.
const alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	certificateStampLayout   = "20060102150405"
	nonConformityStampLayout = "20060102"

	certificateSuffixLength   = 4
	nonConformitySuffixLength = 6
)

// RandomSuffix returns length cryptographically random characters from the code alphabet.
func RandomSuffix(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid suffix length %d", length)
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewCode builds "<prefix>-<stamp>-<suffix>" with now formatted by layout.
func NewCode(prefix, layout string, suffixLength int, now time.Time) (string, error) {
	suffix, err := RandomSuffix(suffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format(layout), suffix), nil
}

// NewCertificateCode returns e.g. CERT-20260115143005-7KQ2.
func NewCertificateCode(prefix string, now time.Time) (string, error) {
	return NewCode(prefix, certificateStampLayout, certificateSuffixLength, now)
}

// NewNonConformityCode returns e.g. NC-20260115-X9Z4MD.
func NewNonConformityCode(prefix string, now time.Time) (string, error) {
	return NewCode(prefix, nonConformityStampLayout, nonConformitySuffixLength, now)
}
