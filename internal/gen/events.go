package gen

import (
	"fmt"

	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/persona"
)

var (
	palAmounts = []int{200, 500, 1000}

	contactTypes = []model.EventType{
		model.EventCallCenter,
		model.EventBranchVisit,
		model.EventEmail,
		model.EventChat,
	}

	contactDetails = []string{"Account Question", "Fraud Alert", "Rate Inquiry", "Technical Issue", "Product Info"}
)

// Events layers service touchpoints over the roster: payday-advance requests
// for Emergency Users, 0-5 service contacts for everyone, and for each
// churned member two fixed warning signals dated 60 and 30 days ahead of the
// churn date.
func (g *Generator) Events(members []model.Member) []model.Event {
	var events []model.Event

	for i := range members {
		m := &members[i]

		if m.Persona == persona.EmergencyUser {
			requests := randInt(g.rng, 2, 8)
			for j := 0; j < requests; j++ {
				events = append(events, model.Event{
					ID:       g.ids.NextEventID(),
					MemberID: m.ID,
					Date:     m.JoinDate.AddDate(0, 0, randInt(g.rng, 30, 600)),
					Type:     model.EventPALRequest,
					Detail:   fmt.Sprintf("Amount: $%d", pick(g.rng, palAmounts)),
				})
			}
		}

		contacts := randInt(g.rng, 0, 5)
		for j := 0; j < contacts; j++ {
			events = append(events, model.Event{
				ID:       g.ids.NextEventID(),
				MemberID: m.ID,
				Date:     m.JoinDate.AddDate(0, 0, randInt(g.rng, 0, 600)),
				Type:     pick(g.rng, contactTypes),
				Detail:   pick(g.rng, contactDetails),
			})
		}

		if m.Churned && m.ChurnDate != nil {
			events = append(events,
				model.Event{
					ID:       g.ids.NextEventID(),
					MemberID: m.ID,
					Date:     m.ChurnDate.AddDate(0, 0, -60),
					Type:     model.EventBalanceDecline,
					Detail:   "Balance dropped >50% in 30 days",
				},
				model.Event{
					ID:       g.ids.NextEventID(),
					MemberID: m.ID,
					Date:     m.ChurnDate.AddDate(0, 0, -30),
					Type:     model.EventInactivity,
					Detail:   "No transactions in 30 days",
				},
			)
		}
	}
	return events
}
