package model

// ColumnKind is the logical column type; each store dialect maps it to its
// own SQL type.
type ColumnKind int

const (
	KindID ColumnKind = iota
	KindInt
	KindBigInt
	KindFloat
	KindText
	KindDate
	KindBool
)

type Column struct {
	Name string
	Kind ColumnKind
}

// TableSpec names a persisted table and its column order. The same order is
// used for CREATE TABLE statements, bulk inserts, and CSV headers, so rows and
// headers can never drift apart.
type TableSpec struct {
	Name    string
	PK      string
	Columns []Column
}

// ColumnNames returns the column names in declaration order.
func (t TableSpec) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

var (
	TableMembers = TableSpec{
		Name: "members",
		PK:   "member_id",
		Columns: []Column{
			{"member_id", KindID},
			{"persona", KindText},
			{"join_date", KindDate},
			{"age", KindInt},
			{"credit_score", KindInt},
			{"income", KindBigInt},
			{"zip_code", KindText},
			{"channel", KindText},
			{"churned", KindBool},
			{"churn_date", KindDate},
		},
	}

	TableAccounts = TableSpec{
		Name: "accounts",
		PK:   "account_id",
		Columns: []Column{
			{"account_id", KindID},
			{"member_id", KindBigInt},
			{"account_type", KindText},
			{"open_date", KindDate},
			{"balance", KindFloat},
			{"status", KindText},
		},
	}

	TableTransactions = TableSpec{
		Name: "transactions",
		PK:   "transaction_id",
		Columns: []Column{
			{"transaction_id", KindID},
			{"account_id", KindBigInt},
			{"member_id", KindBigInt},
			{"transaction_date", KindDate},
			{"transaction_type", KindText},
			{"amount", KindFloat},
			{"merchant_category", KindText},
		},
	}

	TableLoans = TableSpec{
		Name: "loans",
		PK:   "loan_id",
		Columns: []Column{
			{"loan_id", KindID},
			{"member_id", KindBigInt},
			{"loan_type", KindText},
			{"origination_date", KindDate},
			{"original_amount", KindBigInt},
			{"current_balance", KindBigInt},
			{"interest_rate", KindFloat},
			{"term_months", KindInt},
			{"status", KindText},
		},
	}

	TableEvents = TableSpec{
		Name: "events",
		PK:   "event_id",
		Columns: []Column{
			{"event_id", KindID},
			{"member_id", KindBigInt},
			{"event_date", KindDate},
			{"event_type", KindText},
			{"event_detail", KindText},
		},
	}
)

// Tables lists every persisted table in insertion order (members first, then
// the entities that reference them).
var Tables = []TableSpec{
	TableMembers,
	TableAccounts,
	TableTransactions,
	TableLoans,
	TableEvents,
}

// TableByName resolves a table spec by its SQL name.
func TableByName(name string) (TableSpec, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableSpec{}, false
}
