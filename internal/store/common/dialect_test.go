package common

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/driftline-labs/churnforge/internal/model"
)

func TestCreateTableSQLPerDialect(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{
			SQLite,
			"CREATE TABLE accounts (account_id INTEGER PRIMARY KEY, member_id INTEGER, account_type TEXT, open_date TEXT, balance REAL, status TEXT)",
		},
		{
			Postgres,
			"CREATE TABLE accounts (account_id BIGINT PRIMARY KEY, member_id BIGINT, account_type TEXT, open_date DATE, balance DOUBLE PRECISION, status TEXT)",
		},
		{
			MySQL,
			"CREATE TABLE accounts (account_id BIGINT PRIMARY KEY, member_id BIGINT, account_type VARCHAR(255), open_date DATE, balance DOUBLE, status VARCHAR(255))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.Name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.dialect.CreateTableSQL(model.TableAccounts))
		})
	}
}

func TestDialectCoversEveryColumnKind(t *testing.T) {
	kinds := []model.ColumnKind{
		model.KindID, model.KindInt, model.KindBigInt, model.KindFloat,
		model.KindText, model.KindDate, model.KindBool,
	}
	for _, d := range []Dialect{SQLite, Postgres, MySQL} {
		for _, k := range kinds {
			require.NotEmpty(t, d.ColumnType(k), "dialect %s kind %d", d.Name, k)
		}
	}
}

func TestPlaceholderFormats(t *testing.T) {
	require.Equal(t, squirrel.Question, SQLite.Placeholder)
	require.Equal(t, squirrel.Dollar, Postgres.Placeholder)
	require.Equal(t, squirrel.Question, MySQL.Placeholder)
}

func TestIndexAndDropSQL(t *testing.T) {
	require.Equal(t,
		"CREATE INDEX idx_trans_member ON transactions (member_id)",
		SQLite.CreateIndexSQL(Indexes[0]))
	require.Equal(t, "DROP TABLE IF EXISTS members", SQLite.DropTableSQL("members"))
	require.Len(t, Indexes, 4)
}
