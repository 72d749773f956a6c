package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandIntIncludesBothEnds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := randInt(r, 3, 6)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	for want := 3; want <= 6; want++ {
		require.True(t, seen[want], "value %d never drawn", want)
	}
}

func TestRandIntSingleValueRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		require.Equal(t, 7, randInt(r, 7, 7))
	}
}

func TestUniformStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		v := uniform(r, -200, 200)
		require.GreaterOrEqual(t, v, -200.0)
		require.Less(t, v, 200.0)
	}
}

func TestPickCoversAllItems(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		seen[pick(r, items)] = true
	}
	require.Len(t, seen, 3)
}

func TestWeightedPickHonorsZeroWeights(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	items := []string{"never", "always", "never either"}
	weights := []float64{0, 1, 0}
	for i := 0; i < 500; i++ {
		require.Equal(t, "always", weightedPick(r, items, weights))
	}
}

func TestWeightedPickUnnormalizedWeights(t *testing.T) {
	// Weights do not need to sum to 1; relative mass is what counts.
	r := rand.New(rand.NewSource(5))
	items := []string{"heavy", "light"}
	weights := []float64{9, 1}
	counts := make(map[string]int)
	for i := 0; i < 2000; i++ {
		counts[weightedPick(r, items, weights)]++
	}
	require.Greater(t, counts["heavy"], counts["light"])
	require.Greater(t, counts["light"], 0)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.0, 1.0},
		{1.004, 1.0},
		{1.006, 1.01},
		{-3.14159, -3.14},
		{499.999, 500.0},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, round2(tt.in), 1e-9)
	}
}

func TestAllocatorSequencesAreIndependent(t *testing.T) {
	ids := NewAllocator()
	require.Equal(t, int64(1), ids.NextMemberID())
	require.Equal(t, int64(2), ids.NextMemberID())
	require.Equal(t, int64(1), ids.NextAccountID())
	require.Equal(t, int64(1), ids.NextTransactionID())
	require.Equal(t, int64(2), ids.NextTransactionID())
	require.Equal(t, int64(3), ids.NextTransactionID())
	require.Equal(t, int64(1), ids.NextLoanID())
	require.Equal(t, int64(1), ids.NextEventID())
	require.Equal(t, int64(3), ids.NextMemberID())
}

func TestHumanCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, humanCount(tt.in))
	}
}
