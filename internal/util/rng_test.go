package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Intn(101), b.Intn(101), "draw %d", i)
	}
}

func TestNew_ZeroSeedMatchesOne(t *testing.T) {
	a, b := New(0), New(1)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestScripted_CyclesAndBounds(t *testing.T) {
	s := NewScripted(5, 100, 250)

	assert.Equal(t, 5, s.Intn(101))
	assert.Equal(t, 100, s.Intn(101))
	assert.Equal(t, 48, s.Intn(101)) // 250 % 101
	assert.Equal(t, 5, s.Intn(101))
	assert.Equal(t, 4, s.Calls())
}

func TestScripted_EmptyDefaultsToZero(t *testing.T) {
	s := NewScripted()
	assert.Equal(t, 0, s.Intn(10))
	assert.Equal(t, 0, s.Intn(0))
}
