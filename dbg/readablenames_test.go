package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	a, b := new(int), new(int)
	assert.Equal(t, Name(a), Name(a), "same pointer should keep its name")
	assert.NotEmpty(t, Name(b))
	assert.Equal(t, "Ø", Name(nil))
	var nilPtr *int
	assert.Equal(t, "Ø", Name(nilPtr))
}
