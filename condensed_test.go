package linkage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondensedMatrixIndexing(t *testing.T) {
	// A 3-observation matrix has 3 condensed entries: (0,1), (0,2), (1,2).
	data := []float64{1.0, 2.0, 3.0}
	m := NewCondensedMatrix(data, 3)

	assert.Equal(t, 1.0, m.Get(0, 1))
	assert.Equal(t, 2.0, m.Get(0, 2))
	assert.Equal(t, 3.0, m.Get(1, 2))

	m.Set(1, 2, 9.0)
	assert.Equal(t, 9.0, m.Get(1, 2))
}

func TestCondensedMatrixEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCondensedMatrix([]float64{}, 0)
	})
	assert.NotPanics(t, func() {
		NewCondensedMatrix([]float64{}, 1)
	})
}

func TestCondensedMatrixPanicsOnEmptyWithTooManyObservations(t *testing.T) {
	assert.Panics(t, func() {
		NewCondensedMatrix([]float64{}, 2)
	})
}

func TestCondensedMatrixPanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewCondensedMatrix([]float64{1.0, 2.0}, 3)
	})
}

func TestCondensedMatrixPanicsOnBadIndex(t *testing.T) {
	m := NewCondensedMatrix([]float64{1.0, 2.0, 3.0}, 3)
	assert.Panics(t, func() {
		m.Get(1, 0) // row must be < column
	})
	assert.Panics(t, func() {
		m.Get(0, 3) // column out of range
	})
}
