package sqlite

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/driftline-labs/churnforge/internal/gen"
	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/persona"
)

func testDataset(t *testing.T) *model.Dataset {
	t.Helper()
	start, err := time.Parse(model.DateFormat, "2022-01-01")
	require.NoError(t, err)
	g := gen.New(persona.Builtin(), gen.Params{Population: 60, Months: 6, Start: start}, rand.New(rand.NewSource(42)))
	ds, err := g.GenerateAll()
	require.NoError(t, err)
	return ds
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	return New(path, 100), path
}

func TestGenerateLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	ds := testDataset(t)
	s, _ := newTestStore(t)

	require.NoError(t, s.PrepareDestination(ctx, false))
	defer s.Close()
	require.NoError(t, s.CreateSchema(ctx))
	require.NoError(t, s.InsertDataset(ctx, ds))
	require.NoError(t, s.CreateIndexes(ctx))

	counts, err := s.TableCounts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(len(ds.Members)), counts["members"])
	require.Equal(t, int64(len(ds.Accounts)), counts["accounts"])
	require.Equal(t, int64(len(ds.Transactions)), counts["transactions"])
	require.Equal(t, int64(len(ds.Loans)), counts["loans"])
	require.Equal(t, int64(len(ds.Events)), counts["events"])

	total, churned, err := s.ChurnStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(len(ds.Members)), total)
	var wantChurned int64
	for _, m := range ds.Members {
		if m.Churned {
			wantChurned++
		}
	}
	require.Equal(t, wantChurned, churned)

	personas, err := s.PersonaCounts(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.PersonaCounts(), personas)

	size, ok := s.SizeBytes()
	require.True(t, ok)
	require.Greater(t, size, int64(0))
}

func TestSecondaryIndexesExist(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.PrepareDestination(ctx, false))
	defer s.Close()
	require.NoError(t, s.CreateSchema(ctx))
	require.NoError(t, s.InsertDataset(ctx, testDataset(t)))
	require.NoError(t, s.CreateIndexes(ctx))

	rows, err := s.DB.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_%'")
	require.NoError(t, err)
	defer rows.Close()

	found := make(map[string]bool)
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	require.NoError(t, rows.Err())

	for _, want := range []string{"idx_trans_member", "idx_trans_date", "idx_accounts_member", "idx_events_member"} {
		require.True(t, found[want], "missing index %s", want)
	}
}

func TestFetchTableLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	ds := testDataset(t)
	s, _ := newTestStore(t)

	require.NoError(t, s.PrepareDestination(ctx, false))
	defer s.Close()
	require.NoError(t, s.CreateSchema(ctx))
	require.NoError(t, s.InsertDataset(ctx, ds))

	data, err := s.FetchTable(ctx, model.TableTransactions, 100)
	require.NoError(t, err)
	require.Equal(t, model.TableTransactions.ColumnNames(), data.Columns)
	require.Len(t, data.Rows, 100)
	for i, row := range data.Rows {
		require.EqualValues(t, i+1, row[0], "rows come back in primary key order")
	}

	full, err := s.FetchTable(ctx, model.TableMembers, 0)
	require.NoError(t, err)
	require.Len(t, full.Rows, len(ds.Members))

	// Booleans land as 0/1 integers, dates as text.
	first := full.Rows[0]
	require.IsType(t, int64(0), first[8])
	require.Contains(t, []int64{0, 1}, first[8].(int64))
	require.IsType(t, "", first[2])
	_, err = time.Parse(model.DateFormat, first[2].(string))
	require.NoError(t, err)
}

func TestPrepareDestinationForcePolicy(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	require.NoError(t, s.PrepareDestination(ctx, false))
	require.NoError(t, s.CreateSchema(ctx))
	require.NoError(t, s.Close())

	// An existing file refuses to be clobbered without force.
	again := New(path, 100)
	err := again.PrepareDestination(ctx, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	// Force removes the old file and starts clean.
	forced := New(path, 100)
	require.NoError(t, forced.PrepareDestination(ctx, true))
	defer forced.Close()
	exists, err := forced.TableExists(ctx, "members")
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, forced.CreateSchema(ctx))
}

func TestOpenMissingDatabase(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent.db"), 0)
	err := s.Open(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}
