package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

// isConstraintViolation reports whether err is a uniqueness or foreign key
// failure. Drivers that do not translate errors are matched by message.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"unique constraint", "duplicate key", "duplicate entry", "foreign key constraint", "violates foreign key"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// RecordError carries the client-facing message for a classified failure and
// keeps both the sentinel and the store cause reachable through errors.Is/As.
type RecordError struct {
	Class   error
	Message string
	Cause   error
}

func (e *RecordError) Error() string {
	return e.Message
}

func (e *RecordError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Class}
	}
	return []error{e.Class, e.Cause}
}
