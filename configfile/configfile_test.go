package configfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planvault/paramcache"
	"github.com/planvault/paramcache/store"
)

const doc = `
ttl_seconds: 120
audit_size: 50
aliases:
  inflation.general: [inflation_rate]
groups:
  market_assumptions: [asset_returns.equity.value, inflation.general]
  monte_carlo: [simulation.iterations]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120, c.TTLSeconds)
	assert.Equal(t, 50, c.AuditSize)
	// dotted paths stay whole map keys and members, never nested maps
	assert.Equal(t, []string{"inflation_rate"}, c.Aliases["inflation.general"])
	assert.Len(t, c.Groups, 2)
	assert.Equal(t,
		[]string{"asset_returns.equity.value", "inflation.general"},
		c.Groups["market_assumptions"])

	// unspecified keys fall back to package defaults
	assert.Equal(t, paramcache.DefaultSimGroup, c.SimulationGroup)
	assert.Equal(t, paramcache.DefaultSimPrefixes, c.SimulationPrefixes)
	assert.NotEmpty(t, c.NumericPaths)
}

func TestLoadDefaultsGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ttl_seconds: 60\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, paramcache.DefaultGroups(), c.Groups)
}

func TestOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	st := store.NewMemory(nil)
	opts := c.Options(st)
	assert.Equal(t, 2*time.Minute, opts.TTL)
	assert.Equal(t, 50, opts.AuditSize)

	svc, err := paramcache.New(opts)
	require.NoError(t, err)

	svc.Set("inflation.general", 0.08, "bootstrap")
	assert.Equal(t, 0.08, svc.Get("inflation_rate", nil))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
