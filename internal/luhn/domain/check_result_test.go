package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCheckDigit(t *testing.T) {
	for d := 0; d <= 9; d++ {
		r := NewCheckDigit(d)
		c, ok := r.Digit()
		assert.True(t, ok)
		assert.Equal(t, byte('0'+d), c)
		assert.Equal(t, string(rune('0'+d)), r.String())
	}

	assert.Equal(t, NoCheckDigit, NewCheckDigit(-1))
	assert.Equal(t, NoCheckDigit, NewCheckDigit(10))
}

func TestNoCheckDigit(t *testing.T) {
	assert.False(t, NoCheckDigit.Found())
	assert.Equal(t, LuhnCheckFailed, NoCheckDigit.String())

	for c := byte('0'); c <= '9'; c++ {
		assert.False(t, NoCheckDigit.Matches(c), "sentinel matched %q", c)
	}
	assert.False(t, NoCheckDigit.Matches(0))
}

func TestCheckResult_Matches(t *testing.T) {
	r := NewCheckDigit(8)
	assert.True(t, r.Matches('8'))
	assert.False(t, r.Matches('0'))
	assert.False(t, r.Matches(8))
}
