package xlbook

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlbook-go/pkg/xlbook/parser"
)

// ErrInvalidTitle indicates a sheet title that is empty, too long or contains
// one of * : / \ ? [ ].
var ErrInvalidTitle = errors.New("invalid sheet title")

// ErrNotOwned indicates a sheet that does not belong to the workbook.
var ErrNotOwned = errors.New("sheet does not belong to this workbook")

// ErrNotFound indicates a missing relationship, style or named range.
var ErrNotFound = errors.New("not found")

// ErrReadOnly indicates a mutation of a read-only workbook.
var ErrReadOnly = errors.New("workbook is read-only")

// ErrInconsistentState indicates registries that no longer agree with each
// other, e.g. a sheet without its worksheet relationship.
var ErrInconsistentState = errors.New("inconsistent workbook state")

// ErrIndexOutOfRange indicates a sheet or format index outside the pool.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInvalidReference indicates a range reference that cannot be parsed.
var ErrInvalidReference = errors.New("invalid range reference")

// ErrInvalidEncoding indicates an encoding name unknown to the IANA registry.
var ErrInvalidEncoding = errors.New("invalid encoding")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx package.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrEncryptedPackage indicates a password-protected workbook.
var ErrEncryptedPackage = parser.ErrEncryptedPackage

// OpError records the operation and subject that failed.
type OpError struct {
	Op      string // "create sheet", "remove sheet", "add named range", ...
	Subject string
	Err     error
}

func (e *OpError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Subject, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op, subject string, err error) *OpError {
	return &OpError{
		Op:      op,
		Subject: subject,
		Err:     err,
	}
}
