package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnpack2(t *testing.T) {
	a, b := Unpack2([]string{"A", "B", "C"})
	assert.Equal(t, "A", a)
	assert.Equal(t, "B", b)

	a, b = Unpack2([]string{"A"})
	assert.Equal(t, "A", a)
	assert.Empty(t, b)
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 99999))
	assert.True(t, IsInRange(0, 99999, 99999))
	assert.False(t, IsInRange(0, -1, 99999))
	assert.False(t, IsInRange(0, 100000, 99999))
}

func TestIsOneOf(t *testing.T) {
	assert.True(t, IsOneOf("b", "a", "b"))
	assert.False(t, IsOneOf("c", "a", "b"))
	assert.False(t, IsOneOf(1))
}
