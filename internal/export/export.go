package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/store/common"
)

// TransactionSampleLimit caps the transactions CSV: the full table runs to
// millions of rows, so only the first rows are mirrored for quick viewing.
const TransactionSampleLimit = 100000

// FileNameFor maps a table to its CSV file name. Transactions get the sample
// name because the mirror is truncated.
func FileNameFor(table string) string {
	if table == model.TableTransactions.Name {
		return "transactions_sample.csv"
	}
	return table + ".csv"
}

// WriteDataset mirrors an in-memory dataset to CSV files under dir and
// returns the written paths. Members, accounts, loans, and events are written
// in full; transactions are truncated to the sample limit.
func WriteDataset(dir string, ds *model.Dataset) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	sample := len(ds.Transactions)
	if sample > TransactionSampleLimit {
		sample = TransactionSampleLimit
	}

	jobs := []struct {
		spec  model.TableSpec
		count int
		rowAt func(int) []any
	}{
		{model.TableMembers, len(ds.Members), func(i int) []any { return ds.Members[i].Row() }},
		{model.TableAccounts, len(ds.Accounts), func(i int) []any { return ds.Accounts[i].Row() }},
		{model.TableTransactions, sample, func(i int) []any { return ds.Transactions[i].Row() }},
		{model.TableLoans, len(ds.Loans), func(i int) []any { return ds.Loans[i].Row() }},
		{model.TableEvents, len(ds.Events), func(i int) []any { return ds.Events[i].Row() }},
	}

	paths := make([]string, 0, len(jobs))
	for _, job := range jobs {
		path := filepath.Join(dir, FileNameFor(job.spec.Name))
		if err := writeCSV(path, job.spec.ColumnNames(), job.count, job.rowAt); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteTableData mirrors rows fetched back from a store to the table's CSV
// file and returns the written path.
func WriteTableData(dir string, spec model.TableSpec, data *common.TableData) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileNameFor(spec.Name))
	err := writeCSV(path, data.Columns, len(data.Rows), func(i int) []any { return data.Rows[i] })
	if err != nil {
		return "", err
	}
	return path, nil
}

func writeCSV(path string, headers []string, count int, rowAt func(int) []any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	record := make([]string, len(headers))
	for i := 0; i < count; i++ {
		for j, v := range rowAt(i) {
			record[j] = formatValue(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// formatValue renders one cell. Money stays at two decimals, booleans become
// 0/1 whether they arrive as Go bools (in-memory rows) or integers (rows read
// back from sqlite/mysql), NULLs become empty strings.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case time.Time:
		return val.Format(model.DateFormat)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
