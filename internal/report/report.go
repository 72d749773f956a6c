package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/driftline-labs/churnforge/internal/model"
)

const ruleWidth = 60

// Stats carries the figures rendered by Summary, whether they came from an
// in-memory dataset or from store queries.
type Stats struct {
	Members      int64
	Accounts     int64
	Transactions int64
	Loans        int64
	Events       int64
	ChurnRate    float64 // fraction, 0..1
	Personas     map[string]int64
	SizeBytes    int64
	SizeKnown    bool
}

// FromDataset assembles Stats from a freshly generated dataset.
func FromDataset(ds *model.Dataset) Stats {
	return Stats{
		Members:      int64(len(ds.Members)),
		Accounts:     int64(len(ds.Accounts)),
		Transactions: int64(len(ds.Transactions)),
		Loans:        int64(len(ds.Loans)),
		Events:       int64(len(ds.Events)),
		ChurnRate:    ds.ChurnRate(),
		Personas:     ds.PersonaCounts(),
	}
}

// FromCounts assembles Stats from store query results.
func FromCounts(counts map[string]int64, total, churned int64, personas map[string]int64) Stats {
	s := Stats{
		Members:      counts[model.TableMembers.Name],
		Accounts:     counts[model.TableAccounts.Name],
		Transactions: counts[model.TableTransactions.Name],
		Loans:        counts[model.TableLoans.Name],
		Events:       counts[model.TableEvents.Name],
		Personas:     personas,
	}
	if total > 0 {
		s.ChurnRate = float64(churned) / float64(total)
	}
	return s
}

// WithSize attaches a known on-disk size to the stats.
func (s Stats) WithSize(bytes int64) Stats {
	s.SizeBytes = bytes
	s.SizeKnown = true
	return s
}

// Banner prints the run header before generation starts.
func Banner(members, months int) {
	rule := strings.Repeat("=", ruleWidth)
	color.Cyan(rule)
	color.Cyan("CREDIT UNION SYNTHETIC DATA GENERATOR")
	color.Cyan("Generating data for %s members over %d months", Comma(int64(members)), months)
	color.Cyan(rule)
}

// Summary prints the final statistics block.
func (s Stats) Summary() {
	rule := strings.Repeat("=", ruleWidth)
	color.Cyan("\n" + rule)
	color.Cyan("GENERATION COMPLETE - SUMMARY STATISTICS")
	color.Cyan(rule)

	fmt.Printf("Total Members:       %12s\n", Comma(s.Members))
	fmt.Printf("Total Accounts:      %12s\n", Comma(s.Accounts))
	fmt.Printf("Total Transactions:  %12s\n", Comma(s.Transactions))
	fmt.Printf("Total Loans:         %12s\n", Comma(s.Loans))
	fmt.Printf("Total Events:        %12s\n", Comma(s.Events))
	fmt.Printf("\nChurn Rate:          %11.1f%%\n", s.ChurnRate*100)
	if s.SizeKnown {
		fmt.Printf("\nDatabase Size:       ~%.1f MB\n", float64(s.SizeBytes)/1024/1024)
	}
	color.Cyan(rule)

	if len(s.Personas) > 0 {
		fmt.Println("\nPersona Distribution:")
		names := lo.Keys(s.Personas)
		sort.Strings(names)
		width := 0
		for _, name := range names {
			if len(name) > width {
				width = len(name)
			}
		}
		for _, name := range names {
			fmt.Printf("%-*s  %8s\n", width, name, Comma(s.Personas[name]))
		}
	}
}

// Comma formats n with thousands separators, e.g. 1234567 -> "1,234,567".
func Comma(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String()
}
