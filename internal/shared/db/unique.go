package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var uniqueViolationMarkers = []string{
	"duplicate entry",          // mysql 1062
	"duplicate key value",      // postgres 23505
	"unique constraint failed", // sqlite
	"sqlstate 23505",
}

// IsUniqueViolation reports whether err was caused by a unique index.
// gorm only translates the error when TranslateError is enabled, so the
// driver message is inspected as well.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range uniqueViolationMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
