package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftline-labs/churnforge/internal/store/mysql"
	"github.com/driftline-labs/churnforge/internal/store/postgres"
	"github.com/driftline-labs/churnforge/internal/store/sqlite"
)

var (
	_ Store = (*sqlite.Store)(nil)
	_ Store = (*postgres.Store)(nil)
	_ Store = (*mysql.Store)(nil)
)

func TestNewSelectsProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"sqlite", "sqlite"},
		{"sqlite3", "sqlite"},
		{"postgresql", "postgresql"},
		{"postgres", "postgresql"},
		{"mysql", "mysql"},
	}
	for _, tt := range tests {
		s, err := New(tt.provider, "unused", 0)
		require.NoError(t, err)
		require.Equal(t, tt.want, s.Provider())
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New("oracle", "", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "oracle")
}
