package gen

import (
	"fmt"
	"time"

	"github.com/driftline-labs/churnforge/internal/model"
)

var joinChannels = []string{"Branch", "Online", "Mobile", "Referral"}

// Members builds the roster persona by persona, in table order. Each persona
// contributes floor(population × proportion) members, so the total can come
// in slightly under the requested population when the shares do not divide
// evenly.
func (g *Generator) Members() []model.Member {
	end := g.params.HorizonEnd()
	members := make([]model.Member, 0, g.params.Population)

	for _, cfg := range g.personas.All() {
		count := int(float64(g.params.Population) * cfg.Proportion)
		for i := 0; i < count; i++ {
			join := g.params.Start.AddDate(0, 0, randInt(g.rng, 0, joinWindowDays))

			churned := g.rng.Float64() < cfg.ChurnProbability
			var churnDate *time.Time
			if churned {
				d := join.AddDate(0, 0, randInt(g.rng, churnOffsetMin, churnOffsetMax))
				if d.After(end) {
					// The churn would land past the horizon, so it is never
					// observed: the member counts as retained.
					churned = false
				} else {
					churnDate = &d
				}
			}

			members = append(members, model.Member{
				ID:          g.ids.NextMemberID(),
				Persona:     cfg.Name,
				JoinDate:    join,
				Age:         randInt(g.rng, 22, 75),
				CreditScore: randInt(g.rng, 580, 850),
				Income:      int64(randInt(g.rng, 25000, 150000)),
				ZipCode:     fmt.Sprintf("%d", randInt(g.rng, 10000, 99999)),
				Channel:     pick(g.rng, joinChannels),
				Churned:     churned,
				ChurnDate:   churnDate,
			})
		}
	}
	return members
}
