package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"

	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/persona"
	"github.com/driftline-labs/churnforge/internal/report"
)

// Calendar constants shared by the stages. The horizon is measured in fixed
// 30-day months and members join within the first 18 of them; churn happens
// 3-18 months after joining.
const (
	daysPerMonth   = 30
	joinWindowDays = 540
	churnOffsetMin = 90
	churnOffsetMax = 540
)

// Params bound a generation run. Start is truncated to day precision.
type Params struct {
	Population int
	Months     int
	Start      time.Time
}

// HorizonEnd is the exclusive upper bound of the observation window.
func (p Params) HorizonEnd() time.Time {
	return p.Start.AddDate(0, 0, p.Months*daysPerMonth)
}

// Generator produces the full dataset from the persona table and one seeded
// RNG. All randomness flows through the single rand handle in a fixed draw
// order, and all IDs come from the single allocator, so the same seed and
// parameters always rebuild the identical dataset.
type Generator struct {
	personas *persona.Table
	params   Params
	rng      *rand.Rand
	ids      *Allocator

	// Verbose enables per-stage console progress. Off by default so library
	// use and tests stay silent.
	Verbose bool
}

func New(table *persona.Table, params Params, rng *rand.Rand) *Generator {
	return &Generator{
		personas: table,
		params:   params,
		rng:      rng,
		ids:      NewAllocator(),
	}
}

// GenerateAll runs the five stages in their fixed order and returns the
// complete dataset. Members come first (the root entity), then accounts,
// transactions, loans, and events, each consuming the shared RNG stream in
// sequence.
func (g *Generator) GenerateAll() (*model.Dataset, error) {
	g.stagef("\n1. Generating members...")
	members := g.Members()
	g.donef("Created %s members", humanCount(len(members)))

	g.stagef("\n2. Generating accounts...")
	accounts, err := g.Accounts(members)
	if err != nil {
		return nil, err
	}
	g.donef("Created %s accounts", humanCount(len(accounts)))

	g.stagef("\n3. Generating transactions...")
	transactions, err := g.Transactions(members, accounts)
	if err != nil {
		return nil, err
	}
	g.donef("Created %s transactions", humanCount(len(transactions)))

	g.stagef("\n4. Generating loans...")
	loans := g.Loans(members)
	g.donef("Created %s loans", humanCount(len(loans)))

	g.stagef("\n5. Generating events...")
	events := g.Events(members)
	g.donef("Created %s events", humanCount(len(events)))

	return &model.Dataset{
		Members:      members,
		Accounts:     accounts,
		Transactions: transactions,
		Loans:        loans,
		Events:       events,
	}, nil
}

func (g *Generator) stagef(format string, a ...any) {
	if g.Verbose {
		color.Cyan(format, a...)
	}
}

func (g *Generator) donef(format string, a ...any) {
	if g.Verbose {
		color.Green("   ✓ "+format, a...)
	}
}

func (g *Generator) progressf(format string, a ...any) {
	if g.Verbose {
		fmt.Printf(format+"\n", a...)
	}
}

func humanCount(n int) string {
	return report.Comma(int64(n))
}
