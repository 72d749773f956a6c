package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftline-labs/churnforge/internal/model"
)

func TestComma(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Comma(tt.in))
	}
}

func TestFromDataset(t *testing.T) {
	ds := &model.Dataset{
		Members: []model.Member{
			{ID: 1, Persona: "Primary Banker", Churned: true},
			{ID: 2, Persona: "Primary Banker"},
			{ID: 3, Persona: "Loan-Only"},
			{ID: 4, Persona: "Loan-Only"},
		},
		Accounts:     make([]model.Account, 6),
		Transactions: make([]model.Transaction, 50),
		Loans:        make([]model.Loan, 3),
		Events:       make([]model.Event, 9),
	}

	s := FromDataset(ds)
	require.Equal(t, int64(4), s.Members)
	require.Equal(t, int64(6), s.Accounts)
	require.Equal(t, int64(50), s.Transactions)
	require.Equal(t, int64(3), s.Loans)
	require.Equal(t, int64(9), s.Events)
	require.InDelta(t, 0.25, s.ChurnRate, 1e-9)
	require.Equal(t, map[string]int64{"Primary Banker": 2, "Loan-Only": 2}, s.Personas)
	require.False(t, s.SizeKnown)
}

func TestFromCounts(t *testing.T) {
	counts := map[string]int64{
		"members":      200,
		"accounts":     340,
		"transactions": 41000,
		"loans":        80,
		"events":       600,
	}
	personas := map[string]int64{"Early Usage": 40, "Rate Shopper": 30}

	s := FromCounts(counts, 200, 70, personas)
	require.Equal(t, int64(200), s.Members)
	require.Equal(t, int64(41000), s.Transactions)
	require.InDelta(t, 0.35, s.ChurnRate, 1e-9)
	require.Equal(t, personas, s.Personas)

	empty := FromCounts(map[string]int64{}, 0, 0, nil)
	require.Zero(t, empty.ChurnRate)
}

func TestWithSize(t *testing.T) {
	s := Stats{}.WithSize(5 << 20)
	require.True(t, s.SizeKnown)
	require.Equal(t, int64(5<<20), s.SizeBytes)
}
