package locations

import "fmt"

// ValidateConsistency checks that every alias target, across every context,
// is a member of the canonical set. It returns one diagnostic per violation.
// This is a release-gate check run by the locations CLI; the running service
// never calls it.
func (r *Resolver) ValidateConsistency() []string {
	var diagnostics []string
	for _, alias := range r.targets {
		if _, ok := r.canonical[alias.Target]; !ok {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"invalid target location %q referenced in context %q for key %q",
				alias.Target, alias.Context, alias.Source,
			))
		}
	}

	return diagnostics
}

// ValidateGraphCoverage cross-checks the resolver against the proximity
// graph: every canonical zone must have a graph node, and every graph node
// should be canonical. Returns one diagnostic per violation.
func ValidateGraphCoverage(resolver *Resolver, graph *Graph) []string {
	var diagnostics []string
	for _, canonical := range resolver.CanonicalLocations() {
		if !graph.HasNode(canonical) {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"canonical location %q is missing from the proximity graph", canonical,
			))
		}
	}
	for _, node := range graph.AllNodes() {
		if !resolver.IsCanonical(node) {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"proximity graph node %q is not a canonical location", node,
			))
		}
		for _, neighbor := range graph.Neighbors(node) {
			if !resolver.IsCanonical(neighbor) {
				diagnostics = append(diagnostics, fmt.Sprintf(
					"proximity neighbor %q of %q is not a canonical location", neighbor, node,
				))
			}
		}
	}

	return diagnostics
}
