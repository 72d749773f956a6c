package gen

import (
	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/persona"
)

var (
	loanTypes       = []model.LoanType{model.LoanAuto, model.LoanPersonal, model.LoanHELOC, model.LoanMortgage}
	loanTypeWeights = []float64{0.5, 0.3, 0.1, 0.1}

	autoLoanTerms  = []int{36, 48, 60, 72}
	otherLoanTerms = []int{36, 60, 84, 120, 240, 360}

	openLoanStatuses = []model.LoanStatus{model.LoanActive, model.LoanPaidOff}

	loanAmountRanges = map[model.LoanType][2]int{
		model.LoanAuto:     {15000, 35000},
		model.LoanPersonal: {5000, 25000},
		model.LoanHELOC:    {20000, 100000},
		model.LoanMortgage: {150000, 500000},
	}
)

// Loans gives every Loan-Only member exactly one auto loan shortly after
// join; everyone else takes a loan with probability 0.3, originated well into
// the relationship. Churn closes the book: a churned Loan-Only member shows
// Paid Off, any other churned borrower shows Closed.
func (g *Generator) Loans(members []model.Member) []model.Loan {
	var loans []model.Loan

	for i := range members {
		m := &members[i]

		if m.Persona == persona.LoanOnly {
			status := model.LoanActive
			if m.Churned {
				status = model.LoanPaidOff
			}
			loans = append(loans, model.Loan{
				ID:              g.ids.NextLoanID(),
				MemberID:        m.ID,
				Type:            model.LoanAuto,
				OriginationDate: m.JoinDate.AddDate(0, 0, randInt(g.rng, 0, 30)),
				OriginalAmount:  int64(randInt(g.rng, 15000, 35000)),
				CurrentBalance:  int64(randInt(g.rng, 0, 10000)),
				InterestRate:    round2(uniform(g.rng, 3.5, 7.5)),
				TermMonths:      pick(g.rng, autoLoanTerms),
				Status:          status,
			})
			continue
		}

		if g.rng.Float64() < 0.3 {
			origination := m.JoinDate.AddDate(0, 0, randInt(g.rng, 90, 540))
			loanType := weightedPick(g.rng, loanTypes, loanTypeWeights)
			bounds := loanAmountRanges[loanType]
			amount := int64(randInt(g.rng, bounds[0], bounds[1]))
			balance := int64(randInt(g.rng, 0, bounds[1]))
			rate := round2(uniform(g.rng, 3.5, 12))
			term := pick(g.rng, otherLoanTerms)
			// Status is drawn last, and only for members still on the books.
			status := model.LoanClosed
			if !m.Churned {
				status = pick(g.rng, openLoanStatuses)
			}
			loans = append(loans, model.Loan{
				ID:              g.ids.NextLoanID(),
				MemberID:        m.ID,
				Type:            loanType,
				OriginationDate: origination,
				OriginalAmount:  amount,
				CurrentBalance:  balance,
				InterestRate:    rate,
				TermMonths:      term,
				Status:          status,
			})
		}
	}
	return loans
}
