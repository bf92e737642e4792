package hull

import "github.com/pkg/errors"

// The hull procedures are recursive and loop-heavy, and their only failure
// modes are bad input and a broken internal invariant. Rather than threading
// errors through every level, they panic with a HullError, and the public
// facade recovers it into an ordinary error.

// The payload of a deliberate hull panic. Any other panic value, runtime errors
// included, is a bug and is never recovered.
type HullError struct {
	err error
}

func (e HullError) Error() string {
	return e.err.Error()
}

func (e HullError) Cause() error {
	return e.err
}

func (e HullError) Unwrap() error {
	return e.err
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	throw(errors.Errorf(format, args...))
}

func throw(err error) {
	panic(HullError{err: err})
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.err
		}
		panic(r)
	}
	return nil
}
