package locations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConsistency_EmbeddedDatasetIsClean(t *testing.T) {
	resolver, err := NewResolver()
	require.NoError(t, err)

	assert.Empty(t, resolver.ValidateConsistency())
}

func TestValidateGraphCoverage_EmbeddedDatasetIsClean(t *testing.T) {
	resolver, err := NewResolver()
	require.NoError(t, err)
	graph, err := NewGraph()
	require.NoError(t, err)

	assert.Empty(t, ValidateGraphCoverage(resolver, graph))
}

func TestValidateConsistency_FlagsNonCanonicalTargets(t *testing.T) {
	raw := &rawDataset{}
	raw.Canonical.Communes = []string{"Carouge"}
	raw.Aliases = map[string]map[string][]string{
		"postal_code": {"1227": {"Carouge", "Googleplex"}},
	}
	raw.Exclusive = map[string][]string{"le rondeau": {"Shire"}}

	diagnostics := newResolver(raw).ValidateConsistency()
	assert.Len(t, diagnostics, 2)
}

func TestValidateGraphCoverage_FlagsMissingAndExtraNodes(t *testing.T) {
	raw := &rawDataset{}
	raw.Canonical.Neighborhoods = []string{"Plainpalais", "Jonction"}
	resolver := newResolver(raw)

	graph := newGraph(map[string][]string{
		"Plainpalais": {"Jonction", "Atlantis"},
		"Mordor":      {},
	})

	diagnostics := ValidateGraphCoverage(resolver, graph)
	// Jonction missing as a node, Mordor not canonical, Atlantis neighbor
	// not canonical.
	assert.Len(t, diagnostics, 3)
}
