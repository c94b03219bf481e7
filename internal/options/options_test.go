package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	workers  int
	label    string
	reported bool
	calls    []string
}

var errNegativeWorkers = errors.New("workers cannot be negative")

func withWorkers(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegativeWorkers
		}
		c.workers = n
		c.calls = append(c.calls, "workers")

		return nil
	})
}

func withLabel(label string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.label = label
		c.calls = append(c.calls, "label")
	})
}

func withReporting() Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.reported = true
		c.calls = append(c.calls, "reporting")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWorkers(4), withLabel("decode"), withReporting())

		require.NoError(t, err)
		require.Equal(t, 4, cfg.workers)
		require.Equal(t, "decode", cfg.label)
		require.True(t, cfg.reported)
		require.Equal(t, []string{"workers", "label", "reporting"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withLabel("first"), withWorkers(-1), withReporting())

		require.ErrorIs(t, err, errNegativeWorkers)
		require.Equal(t, "first", cfg.label)
		require.False(t, cfg.reported)
		require.Equal(t, []string{"label"}, cfg.calls)
	})

	t.Run("empty and nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.NoError(t, Apply(cfg, nil, withLabel("x"), nil))
		require.Equal(t, "x", cfg.label)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, withWorkers(2), withWorkers(8)))
		require.Equal(t, 8, cfg.workers)
	})
}

func TestNoError_PrimitiveTarget(t *testing.T) {
	var n int
	require.NoError(t, Apply(&n, NoError(func(p *int) { *p = 42 })))
	require.Equal(t, 42, n)
}
