package locations

import (
	"sort"
	"strings"

	"flatradar/internal/domain/entity"
)

// AliasTarget is one (token, target, context) row of the alias table, kept in
// load order for the consistency validator.
type AliasTarget struct {
	Source  string
	Target  entity.CanonicalLocation
	Context entity.AliasContext
}

// Resolver canonicalizes raw location tokens (neighborhood names, postal
// codes, city names) into canonical zones. The lookup indexes are built once
// and never mutated.
type Resolver struct {
	canonical map[entity.CanonicalLocation]struct{}
	index     map[string]map[entity.CanonicalLocation]struct{}
	exclusive map[string]map[entity.CanonicalLocation]struct{}
	targets   []AliasTarget
}

// NewResolver builds a resolver from the embedded dataset.
func NewResolver() (*Resolver, error) {
	raw, err := parseDataset(knownLocationsYAML)
	if err != nil {
		return nil, err
	}

	return newResolver(raw), nil
}

func newResolver(raw *rawDataset) *Resolver {
	r := &Resolver{
		canonical: make(map[entity.CanonicalLocation]struct{}),
		index:     make(map[string]map[entity.CanonicalLocation]struct{}),
		exclusive: make(map[string]map[entity.CanonicalLocation]struct{}),
	}

	for _, group := range [][]string{
		raw.Canonical.Communes,
		raw.Canonical.Neighborhoods,
		raw.Canonical.RecognizedPlaces,
	} {
		for _, name := range group {
			canonical := entity.CanonicalLocation(name)
			r.canonical[canonical] = struct{}{}
			// Canonical names resolve to themselves.
			insert(r.index, normalize(name), canonical)
		}
	}

	// Deterministic build order: sort the context names before indexing.
	contexts := make([]string, 0, len(raw.Aliases))
	for context := range raw.Aliases {
		contexts = append(contexts, context)
	}
	sort.Strings(contexts)

	for _, context := range contexts {
		for token, targets := range raw.Aliases[context] {
			for _, target := range targets {
				canonical := entity.CanonicalLocation(target)
				r.targets = append(r.targets, AliasTarget{
					Source:  token,
					Target:  canonical,
					Context: entity.AliasContext(context),
				})
				// Malformed data degrades to "no match" instead of
				// resolving to a zone that does not exist.
				if _, ok := r.canonical[canonical]; !ok {
					continue
				}
				insert(r.index, normalize(token), canonical)
			}
		}
	}

	for token, targets := range raw.Exclusive {
		for _, target := range targets {
			canonical := entity.CanonicalLocation(target)
			r.targets = append(r.targets, AliasTarget{
				Source:  token,
				Target:  canonical,
				Context: entity.AliasRegionExclusive,
			})
			if _, ok := r.canonical[canonical]; !ok {
				continue
			}
			insert(r.exclusive, normalize(token), canonical)
		}
	}

	return r
}

func insert(index map[string]map[entity.CanonicalLocation]struct{}, key string, target entity.CanonicalLocation) {
	if key == "" {
		return
	}
	if index[key] == nil {
		index[key] = make(map[entity.CanonicalLocation]struct{})
	}
	index[key][target] = struct{}{}
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// Resolve canonicalizes a raw token. The result is the union of the identity
// match, the general alias table and, when genevaContext is set, the
// region-exclusive alias layer. Unknown input yields an empty slice, never an
// error. The output is sorted and free of duplicates.
func (r *Resolver) Resolve(raw string, genevaContext bool) []entity.CanonicalLocation {
	key := normalize(raw)
	if key == "" {
		return nil
	}

	merged := make(map[entity.CanonicalLocation]struct{})
	for canonical := range r.index[key] {
		merged[canonical] = struct{}{}
	}
	if genevaContext {
		for canonical := range r.exclusive[key] {
			merged[canonical] = struct{}{}
		}
	}
	if len(merged) == 0 {
		return nil
	}

	resolved := make([]entity.CanonicalLocation, 0, len(merged))
	for canonical := range merged {
		resolved = append(resolved, canonical)
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i] < resolved[j] })

	return resolved
}

// ResolveListing canonicalizes a listing's location using its most specific
// usable field: the neighborhood first, then the postal code, then the city.
// The first field that resolves to anything wins.
func (r *Resolver) ResolveListing(listing *entity.Listing, genevaContext bool) []entity.CanonicalLocation {
	if listing == nil {
		return nil
	}

	for _, field := range []string{listing.Neighborhood, listing.PostalCode, listing.City} {
		if resolved := r.Resolve(field, genevaContext); len(resolved) > 0 {
			return resolved
		}
	}

	return nil
}

// IsCanonical reports whether the zone is a member of the canonical set.
func (r *Resolver) IsCanonical(zone entity.CanonicalLocation) bool {
	_, ok := r.canonical[zone]

	return ok
}

// CanonicalLocations returns the full canonical set, sorted.
func (r *Resolver) CanonicalLocations() []entity.CanonicalLocation {
	all := make([]entity.CanonicalLocation, 0, len(r.canonical))
	for canonical := range r.canonical {
		all = append(all, canonical)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	return all
}

// AliasTargets returns every alias row across all contexts, including rows
// whose target failed the canonical-membership check at build time.
func (r *Resolver) AliasTargets() []AliasTarget {
	return r.targets
}
