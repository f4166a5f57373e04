package fuzzyseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognize(t *testing.T) {
	t.Run("grows in both directions from the seed", func(t *testing.T) {
		points := []Point{{X: -2, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}
		strip, segment, err := Recognize(points, 2, 2, 1)
		require.NoError(t, err)
		assert.Len(t, segment, 5)
		assert.True(t, strip.WidthLess(2, 1))
		for _, p := range segment {
			assert.True(t, strip.Contains(p))
		}
	})

	t.Run("stops where the strip would reach the bound", func(t *testing.T) {
		points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 10, Y: -10}}
		_, segment, err := Recognize(points, 0, 2, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}, segment)
	})

	t.Run("propagates construction errors", func(t *testing.T) {
		_, _, err := Recognize(nil, 0, 2, 1)
		assert.Error(t, err)
		_, _, err = Recognize([]Point{{X: 0, Y: 0}}, 0, 0, 1)
		assert.Error(t, err)
	})
}

func TestStepByStep(t *testing.T) {
	r, err := NewRecognizer([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Extended, r.ExtendFront())
	assert.Equal(t, Extended, r.ExtendFront())
	assert.Equal(t, Exhausted, r.ExtendFront())
	assert.Equal(t, Exhausted, r.ExtendBack())
	assert.True(t, r.Maximal())
	assert.Equal(t, 3, r.Size())
}
