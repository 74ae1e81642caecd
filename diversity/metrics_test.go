package diversity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecodiv/diversity"
)

// TestAlphaMetrics_ClosedSet verifies membership checks against the
// exact enum.
func TestAlphaMetrics_ClosedSet(t *testing.T) {
	known := diversity.AlphaMetrics()
	require.Equal(t, []diversity.AlphaMetric{
		diversity.AlphaSimpson,
		diversity.AlphaObservedTaxa,
		diversity.AlphaShannon,
		diversity.AlphaChao1,
	}, known)

	for _, m := range known {
		assert.True(t, m.Valid(), "%s is a member", m)
	}
	assert.False(t, diversity.AlphaMetric("observed_otus").Valid(),
		"kernel vocabulary is not the public enum")
	assert.False(t, diversity.AlphaMetric("").Valid())
}

// TestBetaMetrics_ClosedSet verifies membership checks against the
// exact enum.
func TestBetaMetrics_ClosedSet(t *testing.T) {
	known := diversity.BetaMetrics()
	require.Equal(t, []diversity.BetaMetric{
		diversity.BetaJaccard,
		diversity.BetaBrayCurtis,
		diversity.BetaCityblock,
		diversity.BetaManhattan,
		diversity.BetaAitchison,
		diversity.BetaWeightedUniFrac,
		diversity.BetaUnweightedUniFrac,
	}, known)

	for _, m := range known {
		assert.True(t, m.Valid(), "%s is a member", m)
	}
	assert.False(t, diversity.BetaMetric("euclidean").Valid())
}
