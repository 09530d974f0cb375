// Package configfile loads the bootstrap data the resolution layer is
// initialized with - group definitions, aliases, simulation prefixes, the
// numeric coercion allow-list and the tuning knobs - from a YAML/JSON/TOML
// file via viper.
//
// Example YAML:
//
//	ttl_seconds: 300
//	audit_size: 1000
//	simulation_group: monte_carlo
//	simulation_prefixes: [asset_returns., inflation., simulation.]
//	aliases:
//	  inflation.general: [inflation_rate]
//	groups:
//	  market_assumptions: [asset_returns.equity.value, inflation.general]
package configfile

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/planvault/paramcache"
	"github.com/planvault/paramcache/store"
)

type Config struct {
	TTLSeconds         int                 `mapstructure:"ttl_seconds"`
	AuditSize          int                 `mapstructure:"audit_size"`
	Groups             map[string][]string `mapstructure:"groups"`
	Aliases            map[string][]string `mapstructure:"aliases"`
	SimulationPrefixes []string            `mapstructure:"simulation_prefixes"`
	SimulationGroup    string              `mapstructure:"simulation_group"`
	NumericPaths       []string            `mapstructure:"numeric_paths"`
}

// Load reads the bootstrap file. Missing keys fall back to the package
// defaults (DefaultGroups, DefaultSimPrefixes, ...).
func Load(path string) (*Config, error) {
	// Dotted parameter paths appear as map keys here (aliases, group
	// members); viper's default "." delimiter would split them into
	// nested maps, so this instance uses one that never occurs in a path.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)

	v.SetDefault("ttl_seconds", int(paramcache.DefaultTTL/time.Second))
	v.SetDefault("audit_size", paramcache.DefaultAuditSize)
	v.SetDefault("simulation_group", paramcache.DefaultSimGroup)
	v.SetDefault("simulation_prefixes", paramcache.DefaultSimPrefixes)
	v.SetDefault("numeric_paths", paramcache.DefaultNumericPaths)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("configfile: read %s: %w", path, err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("configfile: unmarshal %s: %w", path, err)
	}
	if c.Groups == nil {
		c.Groups = paramcache.DefaultGroups()
	}
	return &c, nil
}

// Options maps the loaded bootstrap onto service options around the given
// store. SimCache, Logger and Hooks stay for the caller to fill in.
func (c *Config) Options(st store.Store) paramcache.Options {
	return paramcache.Options{
		Store:        st,
		TTL:          time.Duration(c.TTLSeconds) * time.Second,
		AuditSize:    c.AuditSize,
		Groups:       c.Groups,
		Aliases:      c.Aliases,
		SimPrefixes:  c.SimulationPrefixes,
		SimGroup:     c.SimulationGroup,
		NumericPaths: c.NumericPaths,
	}
}
