package jsparse

import (
	"errors"
	"fmt"
)

// ErrTooManyErrors replaces the tail of an ErrorList trimmed by Trim.
var ErrTooManyErrors = errors.New("too many errors")

// ErrorList collects per-input errors, syntax errors in particular, into a
// single error value.
type ErrorList []error

func (errs ErrorList) Error() string {
	if len(errs) == 0 {
		return "<no errors>"
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", errs[0].Error(), len(errs)-1)
}

// ErrOrNil returns nil for an empty list, or the list as an error otherwise.
func (errs ErrorList) ErrOrNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Append adds an error to the list. A nested ErrorList is flattened and a
// nil err leaves the list unmodified.
func (errs ErrorList) Append(err error) ErrorList {
	if err == nil {
		return errs
	}
	if err, ok := err.(ErrorList); ok {
		return append(errs, err...)
	}
	return append(errs, err)
}

// Trim caps the list at limit errors, replacing the surplus with a single
// ErrTooManyErrors entry.
func (errs ErrorList) Trim(limit int) ErrorList {
	if len(errs) <= limit {
		return errs
	}
	return append(errs[:limit], ErrTooManyErrors)
}
