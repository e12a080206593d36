package transform

import "github.com/pkg/errors"

// MalformedError reports a record that cannot be applied: an unknown kind,
// a raw matrix without exactly 16 elements, a vector without 3 components,
// or center/rate on a record that does not accept them.
type MalformedError struct {
	Kind   Kind
	Reason string
}

func (e *MalformedError) Error() string {
	return "malformed " + e.Kind.String() + " record: " + e.Reason
}

// MissingDataError reports a translation, rotation or scaling record with no value.
type MissingDataError struct {
	Kind Kind
}

func (e *MissingDataError) Error() string {
	return e.Kind.String() + " record has no value"
}

// IsMalformed reports whether err wraps a *MalformedError.
func IsMalformed(err error) bool {
	var target *MalformedError
	return errors.As(err, &target)
}

// IsMissingData reports whether err wraps a *MissingDataError.
func IsMissingData(err error) bool {
	var target *MissingDataError
	return errors.As(err, &target)
}
