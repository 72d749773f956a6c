package gen

import (
	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/persona"
)

// Accounts opens deposit accounts in member order. Every member gets a
// checking account dated at join; savings follows the persona's product
// adoption rate; CDs go only to the deposit-heavy personas. A churned
// member's accounts are all Closed.
func (g *Generator) Accounts(members []model.Member) ([]model.Account, error) {
	accounts := make([]model.Account, 0, len(members)*2)

	for i := range members {
		m := &members[i]
		cfg, err := g.personas.Lookup(m.Persona)
		if err != nil {
			return nil, err
		}

		status := model.AccountActive
		if m.Churned {
			status = model.AccountClosed
		}

		accounts = append(accounts, model.Account{
			ID:       g.ids.NextAccountID(),
			MemberID: m.ID,
			Type:     model.AccountChecking,
			OpenDate: m.JoinDate,
			Balance:  round2(uniform(g.rng, cfg.BalanceMin, cfg.BalanceMax) * 0.3),
			Status:   status,
		})

		if g.rng.Float64() < cfg.ProductAdoptionRate {
			offset := randInt(g.rng, 0, 180)
			accounts = append(accounts, model.Account{
				ID:       g.ids.NextAccountID(),
				MemberID: m.ID,
				Type:     model.AccountSavings,
				OpenDate: m.JoinDate.AddDate(0, 0, offset),
				Balance:  round2(uniform(g.rng, cfg.BalanceMin, cfg.BalanceMax) * 0.5),
				Status:   status,
			})
		}

		// The CD eligibility check must stay ahead of the && so the 0.7 draw
		// is only consumed for eligible personas.
		if (m.Persona == persona.RateShopper || m.Persona == persona.PrimaryBanker) && g.rng.Float64() < 0.7 {
			offset := randInt(g.rng, 30, 365)
			accounts = append(accounts, model.Account{
				ID:       g.ids.NextAccountID(),
				MemberID: m.ID,
				Type:     model.AccountCD,
				OpenDate: m.JoinDate.AddDate(0, 0, offset),
				Balance:  round2(uniform(g.rng, cfg.BalanceMin, cfg.BalanceMax)),
				Status:   status,
			})
		}
	}
	return accounts, nil
}
