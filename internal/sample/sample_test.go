package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameDraws(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
		assert.Equal(t, a.Float(0, 1), b.Float(0, 1))
		assert.Equal(t, a.Bool(), b.Bool())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 50; i++ {
		if a.Int(0, 1<<30) != b.Int(0, 1<<30) {
			same = false
			break
		}
	}
	assert.False(t, same, "seeds 1 and 2 should not produce identical streams")
}

func TestIntBoundsInclusive(t *testing.T) {
	s := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := s.Int(3, 5)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "all of 3, 4, 5 should appear")
}

func TestIntSingleValueRange(t *testing.T) {
	s := New(7)
	assert.Equal(t, 9, s.Int(9, 9))
}

func TestIndexPanicsOnEmpty(t *testing.T) {
	s := New(1)
	assert.Panics(t, func() { s.Index(0) })
	assert.Panics(t, func() { s.Index(-3) })
}

func TestInvertedRangesPanic(t *testing.T) {
	s := New(1)
	assert.Panics(t, func() { s.Int(5, 4) })
	assert.Panics(t, func() { s.Float(2.0, 1.0) })
}

func TestWeightedIndexHonorsZeroWeight(t *testing.T) {
	s := New(11)
	weights := []float64{0, 1, 0}
	for i := 0; i < 500; i++ {
		assert.Equal(t, 1, s.WeightedIndex(weights))
	}
}

func TestWeightedIndexSkew(t *testing.T) {
	s := New(13)
	weights := []float64{90, 10}
	counts := [2]int{}
	for i := 0; i < 5000; i++ {
		counts[s.WeightedIndex(weights)]++
	}
	assert.Greater(t, counts[0], counts[1]*4, "a 9:1 weighting should dominate")
}

func TestWeightedIndexPanics(t *testing.T) {
	s := New(1)
	assert.Panics(t, func() { s.WeightedIndex(nil) })
	assert.Panics(t, func() { s.WeightedIndex([]float64{1, -1}) })
	assert.Panics(t, func() { s.WeightedIndex([]float64{0, 0}) })
}

func TestPickNDistinct(t *testing.T) {
	s := New(3)
	picked := s.PickN(10, 6)
	require.Len(t, picked, 6)
	seen := make(map[int]bool)
	for _, i := range picked {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, 10)
		require.False(t, seen[i], "index %d drawn twice", i)
		seen[i] = true
	}
}

func TestPickNWholeRange(t *testing.T) {
	s := New(3)
	assert.Len(t, s.PickN(4, 4), 4)
	assert.Empty(t, s.PickN(4, 0))
	assert.Panics(t, func() { s.PickN(4, 5) })
}

func TestDigitsShape(t *testing.T) {
	s := New(5)
	got := s.Digits(8)
	require.Len(t, got, 8)
	for _, c := range got {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestUpperLettersSkipAmbiguous(t *testing.T) {
	s := New(5)
	got := s.UpperLetters(200)
	assert.NotContains(t, got, "I")
	assert.NotContains(t, got, "O")
}

func TestPickCoversPool(t *testing.T) {
	s := New(17)
	pool := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[Pick(s, pool)] = true
	}
	assert.Len(t, seen, 3)
}
