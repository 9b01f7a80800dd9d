package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleFillPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleFillPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
		assert.True(t, IsGeometryError(err))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

// Helpers

// Run f, converting a GeometryError panic into an error.
func catchFill(f func()) (err error) {
	defer func() {
		if recoveredErr := HandleFillPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	f()
	return nil
}
