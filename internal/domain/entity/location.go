// Package entity contains the core business objects of the project.
package entity

// CanonicalLocation is the authoritative identifier for a zone: a commune, an
// intra-muros neighborhood, or a recognized out-of-region place. The full set
// is fixed when the location dataset is loaded and is the referential ground
// truth for every alias.
type CanonicalLocation string

// String returns the zone name as a plain string.
func (c CanonicalLocation) String() string { return string(c) }

// AliasContext tags a location alias with the kind of token it represents.
type AliasContext string

const (
	// AliasSpellingVariant covers misspellings and accent-free variants.
	AliasSpellingVariant AliasContext = "spelling_variant"
	// AliasVagueTerm covers loose geographic terms ("rive gauche", "centre").
	AliasVagueTerm AliasContext = "vague_geographic_term"
	// AliasLandmark covers major infrastructure and landmark names.
	AliasLandmark AliasContext = "landmark"
	// AliasHistoricalPlace covers historical place names still in local use.
	AliasHistoricalPlace AliasContext = "historical_place"
	// AliasAdministrativeSector covers official administrative sector names.
	AliasAdministrativeSector AliasContext = "administrative_sector"
	// AliasPostalCode covers postal codes, which may span several zones.
	AliasPostalCode AliasContext = "postal_code"
	// AliasOutOfRegionCity covers recognized cities outside the canton.
	AliasOutOfRegionCity AliasContext = "out_of_region_city"
	// AliasRegionExclusive covers short names that are only unambiguous when
	// the search is scoped to the Geneva region.
	AliasRegionExclusive AliasContext = "region_exclusive"
)
