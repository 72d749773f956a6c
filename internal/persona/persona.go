package persona

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Behavioral archetype names that generation special-cases. Custom tables may
// reuse these names to opt into the same behavior.
const (
	PrimaryBanker  = "Primary Banker"
	RateShopper    = "Rate Shopper"
	LoanOnly       = "Loan-Only"
	SlowAdopter    = "Slow Adopter"
	EmergencyUser  = "Emergency User"
	DigitalFirst   = "Digital-First"
	SeasonalWorker = "Seasonal Worker"
)

// Config is one immutable behavior profile row: how often members transact,
// how much they hold, how likely they are to churn and to adopt products.
type Config struct {
	Name                    string  `yaml:"name"`
	Proportion              float64 `yaml:"proportion"`
	AvgTransactionsPerMonth int     `yaml:"avg_transactions_per_month"`
	BalanceMin              float64 `yaml:"balance_min"`
	BalanceMax              float64 `yaml:"balance_max"`
	ChurnProbability        float64 `yaml:"churn_probability"`
	ProductAdoptionRate     float64 `yaml:"product_adoption_rate"`
	TransactionVariance     float64 `yaml:"transaction_variance"`
}

// Table is an ordered persona list with O(1) lookup by name. Order matters:
// members are generated persona by persona in table order, so reordering the
// table reorders the RNG draw sequence.
type Table struct {
	configs []Config
	byName  map[string]Config
}

// Builtin returns the seven-persona table the generator ships with.
func Builtin() *Table {
	t, err := New([]Config{
		{Name: PrimaryBanker, Proportion: 0.20, AvgTransactionsPerMonth: 45, BalanceMin: 5000, BalanceMax: 50000, ChurnProbability: 0.05, ProductAdoptionRate: 0.85, TransactionVariance: 0.3},
		{Name: RateShopper, Proportion: 0.15, AvgTransactionsPerMonth: 8, BalanceMin: 20000, BalanceMax: 100000, ChurnProbability: 0.35, ProductAdoptionRate: 0.30, TransactionVariance: 0.2},
		{Name: LoanOnly, Proportion: 0.15, AvgTransactionsPerMonth: 5, BalanceMin: 500, BalanceMax: 5000, ChurnProbability: 0.60, ProductAdoptionRate: 0.15, TransactionVariance: 0.5},
		{Name: SlowAdopter, Proportion: 0.12, AvgTransactionsPerMonth: 15, BalanceMin: 2000, BalanceMax: 15000, ChurnProbability: 0.25, ProductAdoptionRate: 0.50, TransactionVariance: 0.6},
		{Name: EmergencyUser, Proportion: 0.10, AvgTransactionsPerMonth: 25, BalanceMin: 100, BalanceMax: 3000, ChurnProbability: 0.40, ProductAdoptionRate: 0.40, TransactionVariance: 0.8},
		{Name: DigitalFirst, Proportion: 0.18, AvgTransactionsPerMonth: 35, BalanceMin: 3000, BalanceMax: 25000, ChurnProbability: 0.20, ProductAdoptionRate: 0.70, TransactionVariance: 0.4},
		{Name: SeasonalWorker, Proportion: 0.10, AvgTransactionsPerMonth: 20, BalanceMin: 500, BalanceMax: 8000, ChurnProbability: 0.45, ProductAdoptionRate: 0.35, TransactionVariance: 0.9},
	})
	if err != nil {
		// The built-in table is a compile-time constant; a validation failure
		// here is a programming error, not a runtime condition.
		panic(err)
	}
	return t
}

// New validates the given configs and builds the lookup table.
func New(configs []Config) (*Table, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("persona table is empty")
	}

	names := lo.Map(configs, func(c Config, _ int) string { return c.Name })
	if len(lo.Uniq(names)) != len(names) {
		return nil, fmt.Errorf("persona table contains duplicate names")
	}

	byName := make(map[string]Config, len(configs))
	for _, c := range configs {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("persona %q: %w", c.Name, err)
		}
		byName[c.Name] = c
	}

	return &Table{configs: configs, byName: byName}, nil
}

func (c Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is empty")
	}
	if c.Proportion < 0 || c.Proportion > 1 {
		return fmt.Errorf("proportion %v outside [0,1]", c.Proportion)
	}
	if c.AvgTransactionsPerMonth < 1 {
		return fmt.Errorf("avg_transactions_per_month %d below 1", c.AvgTransactionsPerMonth)
	}
	if c.BalanceMin < 0 || c.BalanceMax < c.BalanceMin {
		return fmt.Errorf("balance range (%v, %v) invalid", c.BalanceMin, c.BalanceMax)
	}
	if c.ChurnProbability < 0 || c.ChurnProbability > 1 {
		return fmt.Errorf("churn_probability %v outside [0,1]", c.ChurnProbability)
	}
	if c.ProductAdoptionRate < 0 || c.ProductAdoptionRate > 1 {
		return fmt.Errorf("product_adoption_rate %v outside [0,1]", c.ProductAdoptionRate)
	}
	if c.TransactionVariance < 0 {
		return fmt.Errorf("transaction_variance %v negative", c.TransactionVariance)
	}
	return nil
}

// Lookup resolves a persona by name. An unknown name is a configuration
// error: callers treat it as fatal.
func (t *Table) Lookup(name string) (Config, error) {
	c, ok := t.byName[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown persona %q", name)
	}
	return c, nil
}

// All returns the personas in table order.
func (t *Table) All() []Config {
	return t.configs
}

// Names returns the persona names in table order.
func (t *Table) Names() []string {
	return lo.Map(t.configs, func(c Config, _ int) string { return c.Name })
}

type yamlFile struct {
	Personas []Config `yaml:"personas"`
}

// Load reads a persona table from a YAML file. List order is preserved.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}

	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse persona file %s: %w", path, err)
	}
	if len(f.Personas) == 0 {
		return nil, fmt.Errorf("persona file %s defines no personas", path)
	}

	return New(f.Personas)
}

// Dump writes the table to a YAML file in the same shape Load reads.
func (t *Table) Dump(path string) error {
	data, err := yaml.Marshal(yamlFile{Personas: t.configs})
	if err != nil {
		return fmt.Errorf("failed to marshal persona table: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write persona file: %w", err)
	}
	return nil
}
