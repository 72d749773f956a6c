package model

import (
	"time"
)

// DateFormat is the canonical day-precision layout used in every table and
// CSV export.
const DateFormat = "2006-01-02"

type AccountType string

const (
	AccountChecking AccountType = "Checking"
	AccountSavings  AccountType = "Savings"
	AccountCD       AccountType = "CD"
)

type AccountStatus string

const (
	AccountActive AccountStatus = "Active"
	AccountClosed AccountStatus = "Closed"
)

type LoanType string

const (
	LoanAuto     LoanType = "Auto"
	LoanPersonal LoanType = "Personal"
	LoanHELOC    LoanType = "HELOC"
	LoanMortgage LoanType = "Mortgage"
)

type LoanStatus string

const (
	LoanActive  LoanStatus = "Active"
	LoanPaidOff LoanStatus = "Paid Off"
	LoanClosed  LoanStatus = "Closed"
)

type EventType string

const (
	EventPALRequest     EventType = "PAL_Request"
	EventCallCenter     EventType = "Call_Center"
	EventBranchVisit    EventType = "Branch_Visit"
	EventEmail          EventType = "Email"
	EventChat           EventType = "Chat"
	EventBalanceDecline EventType = "Balance_Decline"
	EventInactivity     EventType = "Inactivity"
)

// Member is the root entity; every other record references it by ID.
// ChurnDate is nil unless the member churned inside the observation window.
type Member struct {
	ID          int64
	Persona     string
	JoinDate    time.Time
	Age         int
	CreditScore int
	Income      int64
	ZipCode     string
	Channel     string
	Churned     bool
	ChurnDate   *time.Time
}

type Account struct {
	ID       int64
	MemberID int64
	Type     AccountType
	OpenDate time.Time
	Balance  float64
	Status   AccountStatus
}

type Transaction struct {
	ID               int64
	AccountID        int64
	MemberID         int64
	Date             time.Time
	Type             string
	Amount           float64
	MerchantCategory string
}

type Loan struct {
	ID              int64
	MemberID        int64
	Type            LoanType
	OriginationDate time.Time
	OriginalAmount  int64
	CurrentBalance  int64
	InterestRate    float64
	TermMonths      int
	Status          LoanStatus
}

type Event struct {
	ID       int64
	MemberID int64
	Date     time.Time
	Type     EventType
	Detail   string
}

// Dataset holds all generated tables in memory until persistence. The whole
// run is materialized before any row is written (accepted cost at the stated
// scale).
type Dataset struct {
	Members      []Member
	Accounts     []Account
	Transactions []Transaction
	Loans        []Loan
	Events       []Event
}

// ChurnRate reports the fraction of churned members, 0 for an empty dataset.
func (d *Dataset) ChurnRate() float64 {
	if len(d.Members) == 0 {
		return 0
	}
	churned := 0
	for _, m := range d.Members {
		if m.Churned {
			churned++
		}
	}
	return float64(churned) / float64(len(d.Members))
}

// PersonaCounts returns the member count per persona label.
func (d *Dataset) PersonaCounts() map[string]int64 {
	counts := make(map[string]int64)
	for _, m := range d.Members {
		counts[m.Persona]++
	}
	return counts
}

func formatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Row returns the member's column values in TableMembers order. Dates are
// emitted as strings and the churn date as nil when absent so the same row
// shape works across all store dialects.
func (m Member) Row() []any {
	var churnDate any
	if m.ChurnDate != nil {
		churnDate = formatDate(*m.ChurnDate)
	}
	return []any{m.ID, m.Persona, formatDate(m.JoinDate), m.Age, m.CreditScore, m.Income, m.ZipCode, m.Channel, m.Churned, churnDate}
}

func (a Account) Row() []any {
	return []any{a.ID, a.MemberID, string(a.Type), formatDate(a.OpenDate), a.Balance, string(a.Status)}
}

func (t Transaction) Row() []any {
	return []any{t.ID, t.AccountID, t.MemberID, formatDate(t.Date), t.Type, t.Amount, t.MerchantCategory}
}

func (l Loan) Row() []any {
	return []any{l.ID, l.MemberID, string(l.Type), formatDate(l.OriginationDate), l.OriginalAmount, l.CurrentBalance, l.InterestRate, l.TermMonths, string(l.Status)}
}

func (e Event) Row() []any {
	return []any{e.ID, e.MemberID, formatDate(e.Date), string(e.Type), e.Detail}
}
