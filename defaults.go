package paramcache

import "time"

const (
	// DefaultTTL is the cache freshness window.
	DefaultTTL = 5 * time.Minute

	// DefaultAuditSize bounds the audit ring.
	DefaultAuditSize = 1000

	// DefaultSimGroup is the group whose members are always treated as
	// simulation-relevant, regardless of prefix.
	DefaultSimGroup = "monte_carlo"

	defaultInvalidateTimeout = 2 * time.Second
)

// DefaultSimPrefixes classify a written path as simulation-relevant.
var DefaultSimPrefixes = []string{"asset_returns.", "inflation.", "simulation."}

// DefaultNumericPaths is the coercion allow-list: string writes to these
// paths are parsed as numbers, best-effort.
var DefaultNumericPaths = []string{
	"asset_returns.equity.value",
	"asset_returns.equity.volatility",
	"asset_returns.bonds.value",
	"asset_returns.cash.value",
	"inflation.general",
	"inflation.medical",
	"retirement.withdrawal_rate",
	"retirement.target_age",
	"simulation.iterations",
	"simulation.horizon_years",
	"simulation.confidence_level",
	"tax.capital_gains_rate",
	"tax.state_rate",
}

// DefaultGroups returns the bootstrap group definitions a planning
// deployment starts from. Callers may extend the result before passing it
// to Options, and may register more groups at runtime.
func DefaultGroups() map[string][]string {
	return map[string][]string{
		"market_assumptions": {
			"asset_returns.equity.value",
			"asset_returns.bonds.value",
			"asset_returns.cash.value",
			"inflation.general",
			"inflation.medical",
		},
		"retirement": {
			"retirement.withdrawal_rate",
			"retirement.target_age",
			"retirement.social_security_age",
		},
		"education": {
			"education.cost_inflation",
			"education.savings_priority",
		},
		"housing": {
			"housing.mortgage_rate",
			"housing.appreciation_rate",
			"housing.property_tax_rate",
		},
		"tax": {
			"tax.federal_bracket",
			"tax.state_rate",
			"tax.capital_gains_rate",
		},
		"risk_profiles": {
			"risk_profiles.conservative.equity_weight",
			"risk_profiles.moderate.equity_weight",
			"risk_profiles.aggressive.equity_weight",
		},
		"monte_carlo": {
			"simulation.iterations",
			"simulation.horizon_years",
			"simulation.confidence_level",
			"asset_returns.equity.volatility",
		},
	}
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
