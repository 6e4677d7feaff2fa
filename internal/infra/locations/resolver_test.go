package locations

import (
	"testing"

	"flatradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	resolver, err := NewResolver()
	require.NoError(t, err)

	return resolver
}

func TestResolver_Resolve_CanonicalInputResolvesToItself(t *testing.T) {
	resolver := newTestResolver(t)

	for _, zone := range []string{"Carouge", "Plainpalais", "Eaux-Vives", "Pâquis"} {
		resolved := resolver.Resolve(zone, false)
		assert.Contains(t, resolved, entity.CanonicalLocation(zone), "zone %s should resolve to itself", zone)
	}
}

func TestResolver_Resolve_CaseAndWhitespaceInsensitive(t *testing.T) {
	resolver := newTestResolver(t)

	assert.Equal(t, resolver.Resolve("carouge", false), resolver.Resolve(" CAROUGE ", false))
	assert.Equal(t, resolver.Resolve("plainpalais", true), resolver.Resolve("\tPlainpalais\n", true))
}

func TestResolver_Resolve_UnknownTokenYieldsEmpty(t *testing.T) {
	resolver := newTestResolver(t)

	assert.Empty(t, resolver.Resolve("atlantis", false))
	assert.Empty(t, resolver.Resolve("", false))
	assert.Empty(t, resolver.Resolve("   ", true))
}

func TestResolver_Resolve_PostalCodeSpansMultipleZones(t *testing.T) {
	resolver := newTestResolver(t)

	resolved := resolver.Resolve("1201", false)
	assert.Greater(t, len(resolved), 1, "1201 should cover several neighborhoods")
	for _, expected := range []entity.CanonicalLocation{"Pâquis", "Grottes", "Saint-Gervais"} {
		assert.Contains(t, resolved, expected)
	}

	resolved = resolver.Resolve("1227", false)
	assert.Contains(t, resolved, entity.CanonicalLocation("Carouge"))
	assert.Contains(t, resolved, entity.CanonicalLocation("Acacias"))

	assert.Contains(t, resolver.Resolve("1212", false), entity.CanonicalLocation("Lancy"))
}

func TestResolver_Resolve_ExclusiveLayerNeedsRegionContext(t *testing.T) {
	resolver := newTestResolver(t)

	// "gare" alone is meaningless outside the Geneva region context.
	assert.Empty(t, resolver.Resolve("gare", false))

	resolved := resolver.Resolve("gare", true)
	assert.Contains(t, resolved, entity.CanonicalLocation("Grottes"))
	assert.Contains(t, resolved, entity.CanonicalLocation("Saint-Gervais"))
}

func TestResolver_Resolve_SpellingVariants(t *testing.T) {
	resolver := newTestResolver(t)

	assert.Contains(t, resolver.Resolve("paquis", false), entity.CanonicalLocation("Pâquis"))
	assert.Contains(t, resolver.Resolve("eaux vives", false), entity.CanonicalLocation("Eaux-Vives"))
	assert.Contains(t, resolver.Resolve("st-jean", false), entity.CanonicalLocation("Saint-Jean"))
}

func TestResolver_Resolve_OutputIsSortedAndDeduplicated(t *testing.T) {
	resolver := newTestResolver(t)

	resolved := resolver.Resolve("rive gauche", false)
	require.NotEmpty(t, resolved)
	for i := 1; i < len(resolved); i++ {
		assert.Less(t, resolved[i-1], resolved[i], "output must be strictly sorted")
	}
}

func TestResolver_Resolve_MalformedTargetDegradesToNoMatch(t *testing.T) {
	raw := &rawDataset{}
	raw.Canonical.Neighborhoods = []string{"Plainpalais"}
	raw.Aliases = map[string]map[string][]string{
		"spelling_variant": {
			"plein palais": {"Plainpalais"},
			"ghost town":   {"Atlantis"},
		},
	}
	resolver := newResolver(raw)

	assert.Equal(t, []entity.CanonicalLocation{"Plainpalais"}, resolver.Resolve("plein palais", false))
	assert.Empty(t, resolver.Resolve("ghost town", false), "a non-canonical target must not be indexed")
	// The malformed row is still visible to the validator.
	assert.Len(t, resolver.ValidateConsistency(), 1)
}

func TestResolver_ResolveListing_PrefersMostSpecificField(t *testing.T) {
	resolver := newTestResolver(t)

	listing := &entity.Listing{
		Neighborhood: "Plainpalais",
		PostalCode:   "1207",
		City:         "Genève",
	}
	assert.Equal(t, []entity.CanonicalLocation{"Plainpalais"}, resolver.ResolveListing(listing, false))

	// Unresolvable neighborhood falls through to the postal code.
	listing.Neighborhood = "quartier inconnu"
	assert.Equal(t, []entity.CanonicalLocation{"Eaux-Vives"}, resolver.ResolveListing(listing, false))

	// Then to the city.
	listing.PostalCode = ""
	assert.Contains(t, resolver.ResolveListing(listing, false), entity.CanonicalLocation("Genève"))

	// Nothing usable resolves to nothing.
	listing.City = "nowhere"
	assert.Empty(t, resolver.ResolveListing(listing, false))
	assert.Empty(t, resolver.ResolveListing(nil, false))
}
