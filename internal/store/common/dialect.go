package common

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/driftline-labs/churnforge/internal/model"
)

// Dialect carries everything provider-independent code needs to speak a
// provider's SQL: placeholder style, logical-to-SQL type mapping, and the
// table existence probe.
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
	// TableExistsSQL takes the table name as its only bind parameter and
	// returns at least one row when the table exists.
	TableExistsSQL string
	columnTypes    map[model.ColumnKind]string
}

var (
	SQLite = Dialect{
		Name:           "sqlite",
		Placeholder:    squirrel.Question,
		TableExistsSQL: "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
		columnTypes: map[model.ColumnKind]string{
			model.KindID:     "INTEGER",
			model.KindInt:    "INTEGER",
			model.KindBigInt: "INTEGER",
			model.KindFloat:  "REAL",
			model.KindText:   "TEXT",
			model.KindDate:   "TEXT",
			model.KindBool:   "INTEGER",
		},
	}

	Postgres = Dialect{
		Name:           "postgresql",
		Placeholder:    squirrel.Dollar,
		TableExistsSQL: "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1",
		columnTypes: map[model.ColumnKind]string{
			model.KindID:     "BIGINT",
			model.KindInt:    "INTEGER",
			model.KindBigInt: "BIGINT",
			model.KindFloat:  "DOUBLE PRECISION",
			model.KindText:   "TEXT",
			model.KindDate:   "DATE",
			model.KindBool:   "BOOLEAN",
		},
	}

	MySQL = Dialect{
		Name:           "mysql",
		Placeholder:    squirrel.Question,
		TableExistsSQL: "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?",
		columnTypes: map[model.ColumnKind]string{
			model.KindID:     "BIGINT",
			model.KindInt:    "INT",
			model.KindBigInt: "BIGINT",
			model.KindFloat:  "DOUBLE",
			model.KindText:   "VARCHAR(255)",
			model.KindDate:   "DATE",
			model.KindBool:   "TINYINT(1)",
		},
	}
)

// ColumnType maps a logical column kind to this dialect's SQL type.
func (d Dialect) ColumnType(kind model.ColumnKind) string {
	return d.columnTypes[kind]
}

// CreateTableSQL renders the CREATE TABLE statement for a table spec.
func (d Dialect) CreateTableSQL(spec model.TableSpec) string {
	defs := make([]string, 0, len(spec.Columns))
	for _, col := range spec.Columns {
		def := col.Name + " " + d.columnTypes[col.Kind]
		if col.Name == spec.PK {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", spec.Name, strings.Join(defs, ", "))
}

func (d Dialect) DropTableSQL(table string) string {
	return "DROP TABLE IF EXISTS " + table
}

// Index describes a secondary index created after the bulk load.
type Index struct {
	Name   string
	Table  string
	Column string
}

// Indexes are created once every table is populated; building them up front
// would slow the bulk inserts down.
var Indexes = []Index{
	{Name: "idx_trans_member", Table: "transactions", Column: "member_id"},
	{Name: "idx_trans_date", Table: "transactions", Column: "transaction_date"},
	{Name: "idx_accounts_member", Table: "accounts", Column: "member_id"},
	{Name: "idx_events_member", Table: "events", Column: "member_id"},
}

func (d Dialect) CreateIndexSQL(idx Index) string {
	return fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.Name, idx.Table, idx.Column)
}
