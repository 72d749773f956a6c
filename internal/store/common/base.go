package common

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/driftline-labs/churnforge/internal/model"
)

// DefaultBatch is the rows-per-INSERT used when the caller does not set one.
const DefaultBatch = 500

// Bind parameter ceiling across the supported providers: sqlite allows
// 32766, postgres and mysql 65535. Batches are clamped so a wide table can
// never exceed it.
const maxBindParams = 30000

// TableData is a fetched table slice: column names in declaration order plus
// raw row values.
type TableData struct {
	Columns []string
	Rows    [][]any
}

// Base implements every store operation that is identical across providers
// once a database/sql handle and a dialect are in place. Provider packages
// embed it and add connection and destination handling.
type Base struct {
	DB      *sql.DB
	Dialect Dialect
	Batch   int
}

func NewBase(dialect Dialect, batch int) *Base {
	if batch <= 0 {
		batch = DefaultBatch
	}
	return &Base{Dialect: dialect, Batch: batch}
}

func (b *Base) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(b.Dialect.Placeholder)
}

func (b *Base) Provider() string {
	return b.Dialect.Name
}

func (b *Base) Close() error {
	if b.DB != nil {
		return b.DB.Close()
	}
	return nil
}

func (b *Base) Ping(ctx context.Context) error {
	return b.DB.PingContext(ctx)
}

// TableExists probes for a table through the dialect's catalog query.
func (b *Base) TableExists(ctx context.Context, table string) (bool, error) {
	rows, err := b.DB.QueryContext(ctx, b.Dialect.TableExistsSQL, table)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return exists, nil
}

// AnyTableExists reports whether any dataset table is already present.
func (b *Base) AnyTableExists(ctx context.Context) (bool, error) {
	for _, spec := range model.Tables {
		exists, err := b.TableExists(ctx, spec.Name)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}
	return false, nil
}

// DropTables removes the dataset tables in reverse insertion order.
func (b *Base) DropTables(ctx context.Context) error {
	for i := len(model.Tables) - 1; i >= 0; i-- {
		name := model.Tables[i].Name
		if _, err := b.DB.ExecContext(ctx, b.Dialect.DropTableSQL(name)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", name, err)
		}
	}
	return nil
}

// CreateSchema creates the five dataset tables. The destination is expected
// to be clean; an existing table is an error.
func (b *Base) CreateSchema(ctx context.Context) error {
	for _, spec := range model.Tables {
		if _, err := b.DB.ExecContext(ctx, b.Dialect.CreateTableSQL(spec)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", spec.Name, err)
		}
	}
	return nil
}

// CreateIndexes builds the secondary indexes. Called after the bulk load.
func (b *Base) CreateIndexes(ctx context.Context) error {
	for _, idx := range Indexes {
		if _, err := b.DB.ExecContext(ctx, b.Dialect.CreateIndexSQL(idx)); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.Name, err)
		}
	}
	return nil
}

// InsertDataset bulk-loads every table in insertion order. Each table is one
// transaction of multi-row INSERT batches; any failure aborts the run.
func (b *Base) InsertDataset(ctx context.Context, ds *model.Dataset) error {
	if err := b.insertTable(ctx, model.TableMembers, len(ds.Members), func(i int) []any {
		return ds.Members[i].Row()
	}); err != nil {
		return err
	}
	if err := b.insertTable(ctx, model.TableAccounts, len(ds.Accounts), func(i int) []any {
		return ds.Accounts[i].Row()
	}); err != nil {
		return err
	}
	if err := b.insertTable(ctx, model.TableTransactions, len(ds.Transactions), func(i int) []any {
		return ds.Transactions[i].Row()
	}); err != nil {
		return err
	}
	if err := b.insertTable(ctx, model.TableLoans, len(ds.Loans), func(i int) []any {
		return ds.Loans[i].Row()
	}); err != nil {
		return err
	}
	return b.insertTable(ctx, model.TableEvents, len(ds.Events), func(i int) []any {
		return ds.Events[i].Row()
	})
}

// insertTable streams count rows through rowAt into batched multi-row
// INSERTs inside a single transaction. The accessor keeps the typed slices
// unboxed; only one batch of []any values is alive at a time.
func (b *Base) insertTable(ctx context.Context, spec model.TableSpec, count int, rowAt func(int) []any) error {
	if count == 0 {
		return nil
	}

	batch := b.Batch
	if batch <= 0 {
		batch = DefaultBatch
	}
	if batch*len(spec.Columns) > maxBindParams {
		batch = maxBindParams / len(spec.Columns)
	}

	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", spec.Name, err)
	}
	defer tx.Rollback()

	qb := b.builder()
	columns := spec.ColumnNames()
	for start := 0; start < count; start += batch {
		end := start + batch
		if end > count {
			end = count
		}

		insert := qb.Insert(spec.Name).Columns(columns...)
		for i := start; i < end; i++ {
			insert = insert.Values(rowAt(i)...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", spec.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", spec.Name, err)
		}
	}

	return tx.Commit()
}

// FetchTable reads a table back in primary key order, so "first N rows"
// matches insertion order. limit <= 0 fetches everything.
func (b *Base) FetchTable(ctx context.Context, spec model.TableSpec, limit int) (*TableData, error) {
	columns := spec.ColumnNames()
	query := b.builder().Select(columns...).From(spec.Name).OrderBy(spec.PK)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query for %s: %w", spec.Name, err)
	}

	rows, err := b.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", spec.Name, err)
	}
	defer rows.Close()

	data := &TableData{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", spec.Name, err)
		}
		for i, val := range values {
			if bs, ok := val.([]byte); ok {
				values[i] = string(bs)
			}
		}
		data.Rows = append(data.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows of %s: %w", spec.Name, err)
	}

	return data, nil
}

// TableCounts returns the row count of every dataset table.
func (b *Base) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(model.Tables))
	for _, spec := range model.Tables {
		query, args, err := b.builder().Select("COUNT(*)").From(spec.Name).ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build count query for %s: %w", spec.Name, err)
		}
		var count int64
		if err := b.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", spec.Name, err)
		}
		counts[spec.Name] = count
	}
	return counts, nil
}

// ChurnStats returns the member total and how many of them churned. The CASE
// expression keeps the query valid for boolean and integer churned columns
// alike.
func (b *Base) ChurnStats(ctx context.Context) (total, churned int64, err error) {
	query := "SELECT COUNT(*), COALESCE(SUM(CASE WHEN churned THEN 1 ELSE 0 END), 0) FROM members"
	if err := b.DB.QueryRowContext(ctx, query).Scan(&total, &churned); err != nil {
		return 0, 0, fmt.Errorf("failed to compute churn stats: %w", err)
	}
	return total, churned, nil
}

// PersonaCounts returns the member count per persona.
func (b *Base) PersonaCounts(ctx context.Context) (map[string]int64, error) {
	query, args, err := b.builder().Select("persona", "COUNT(*)").From("members").GroupBy("persona").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build persona count query: %w", err)
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count personas: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var persona string
		var count int64
		if err := rows.Scan(&persona, &count); err != nil {
			return nil, fmt.Errorf("failed to scan persona count: %w", err)
		}
		counts[persona] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating persona counts: %w", err)
	}
	return counts, nil
}
