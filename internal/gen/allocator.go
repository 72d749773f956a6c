package gen

// Allocator hands out the five entity ID sequences. Counters start at 1,
// advance one at a time, and are never reset during a run, so IDs are dense
// per entity. Consumption is strictly sequential; the pipeline has no
// concurrency.
type Allocator struct {
	member      int64
	account     int64
	transaction int64
	loan        int64
	event       int64
}

func NewAllocator() *Allocator {
	return &Allocator{member: 1, account: 1, transaction: 1, loan: 1, event: 1}
}

func next(counter *int64) int64 {
	id := *counter
	*counter++
	return id
}

func (a *Allocator) NextMemberID() int64      { return next(&a.member) }
func (a *Allocator) NextAccountID() int64     { return next(&a.account) }
func (a *Allocator) NextTransactionID() int64 { return next(&a.transaction) }
func (a *Allocator) NextLoanID() int64        { return next(&a.loan) }
func (a *Allocator) NextEventID() int64       { return next(&a.event) }
