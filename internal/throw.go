package internal

import "github.com/pkg/errors"

// Validation failures deep inside a fill are raised as panics carrying a
// GeometryError. Every exported entry point recovers them and hands back an
// ordinary error. Any other panic is a bug and is re-raised.

type GeometryError struct {
	error
}

func (e GeometryError) Unwrap() error {
	return e.error
}

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError{errors.Errorf(format, args...)})
}

func HandleFillPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}

func IsGeometryError(err error) bool {
	var geometryError GeometryError
	return errors.As(err, &geometryError)
}
