package gen

import (
	"fmt"
	"strings"

	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/persona"
)

// Transaction type mixes per persona bucket. Primary Banker and Digital-First
// have their own channel habits; everyone else shares the default mix.
var (
	primaryBankerTxTypes   = []string{"Direct Deposit", "Debit Card", "ACH Payment", "Check", "ATM Withdrawal", "Transfer"}
	primaryBankerTxWeights = []float64{0.15, 0.35, 0.25, 0.10, 0.10, 0.05}

	digitalFirstTxTypes   = []string{"Direct Deposit", "Debit Card", "Mobile Payment", "P2P Transfer", "ATM Withdrawal"}
	digitalFirstTxWeights = []float64{0.20, 0.40, 0.20, 0.15, 0.05}

	defaultTxTypes   = []string{"Direct Deposit", "Debit Card", "ACH Payment", "ATM Withdrawal", "Check"}
	defaultTxWeights = []float64{0.15, 0.40, 0.20, 0.15, 0.10}

	atmAmounts         = []float64{20, 40, 60, 80, 100, 200}
	merchantCategories = []string{"Retail", "Grocery", "Gas", "Restaurant", "Utilities", "Entertainment", "Other"}
)

// Transactions is the dominant stage: roughly persona-average × months rows
// per member, all booked against the member's checking account. Activity runs
// from join until churn (or the horizon end for retained members) in fixed
// 30-day months.
func (g *Generator) Transactions(members []model.Member, accounts []model.Account) ([]model.Transaction, error) {
	checkingByMember := make(map[int64]int64, len(members))
	for _, a := range accounts {
		if a.Type != model.AccountChecking {
			continue
		}
		if _, ok := checkingByMember[a.MemberID]; !ok {
			checkingByMember[a.MemberID] = a.ID
		}
	}

	end := g.params.HorizonEnd()
	var transactions []model.Transaction

	for i := range members {
		m := &members[i]
		if i > 0 && i%1000 == 0 {
			g.progressf("   processed %s members, %s transactions so far", humanCount(i), humanCount(len(transactions)))
		}

		cfg, err := g.personas.Lookup(m.Persona)
		if err != nil {
			return nil, err
		}
		accountID, ok := checkingByMember[m.ID]
		if !ok {
			return nil, fmt.Errorf("member %d has no checking account", m.ID)
		}

		endActive := end
		if m.Churned && m.ChurnDate != nil {
			endActive = *m.ChurnDate
		}

		for anchor := m.JoinDate; anchor.Before(endActive); anchor = anchor.AddDate(0, 0, daysPerMonth) {
			base := cfg.AvgTransactionsPerMonth
			variance := int(float64(base) * cfg.TransactionVariance)
			count := randInt(g.rng, base-variance, base+variance)
			if count < 1 {
				count = 1
			}

			for t := 0; t < count; t++ {
				date := anchor.AddDate(0, 0, randInt(g.rng, 0, 28))
				if date.After(endActive) {
					break
				}

				var txType string
				switch m.Persona {
				case persona.PrimaryBanker:
					txType = weightedPick(g.rng, primaryBankerTxTypes, primaryBankerTxWeights)
				case persona.DigitalFirst:
					txType = weightedPick(g.rng, digitalFirstTxTypes, digitalFirstTxWeights)
				default:
					txType = weightedPick(g.rng, defaultTxTypes, defaultTxWeights)
				}

				var amount float64
				switch {
				case txType == "Direct Deposit":
					amount = uniform(g.rng, 800, float64(m.Income)/24)
				case strings.Contains(txType, "Debit") || strings.Contains(txType, "Payment"):
					amount = -uniform(g.rng, 5, 500)
				case strings.Contains(txType, "Withdrawal"):
					amount = -pick(g.rng, atmAmounts)
				default:
					amount = uniform(g.rng, -200, 200)
				}

				category := "Income"
				if amount < 0 {
					category = pick(g.rng, merchantCategories)
				}

				transactions = append(transactions, model.Transaction{
					ID:               g.ids.NextTransactionID(),
					AccountID:        accountID,
					MemberID:         m.ID,
					Date:             date,
					Type:             txType,
					Amount:           round2(amount),
					MerchantCategory: category,
				})
			}
		}
	}
	return transactions, nil
}
