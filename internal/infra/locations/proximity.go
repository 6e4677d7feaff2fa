package locations

import (
	"sort"

	"flatradar/internal/domain/entity"
)

// Graph is the static proximity relation over canonical zones. Edges are
// directed: A listing B as a neighbor does not imply the reverse. The
// adjacency table is built once and shared read-only.
type Graph struct {
	adjacency map[entity.CanonicalLocation][]entity.CanonicalLocation
}

// NewGraph builds the proximity graph from the embedded dataset.
func NewGraph() (*Graph, error) {
	raw, err := parseProximity(proximityYAML)
	if err != nil {
		return nil, err
	}

	return newGraph(raw), nil
}

func newGraph(raw map[string][]string) *Graph {
	adjacency := make(map[entity.CanonicalLocation][]entity.CanonicalLocation, len(raw))
	for node, neighbors := range raw {
		edges := make([]entity.CanonicalLocation, 0, len(neighbors))
		for _, neighbor := range neighbors {
			edges = append(edges, entity.CanonicalLocation(neighbor))
		}
		adjacency[entity.CanonicalLocation(node)] = edges
	}

	return &Graph{adjacency: adjacency}
}

// Neighbors returns the configured adjacency list for a zone, in dataset
// order, or an empty slice when the zone is not a graph node.
func (g *Graph) Neighbors(zone entity.CanonicalLocation) []entity.CanonicalLocation {
	return g.adjacency[zone]
}

// HasNode reports whether the zone appears as a graph node.
func (g *Graph) HasNode(zone entity.CanonicalLocation) bool {
	_, ok := g.adjacency[zone]

	return ok
}

// AllNodes returns every graph node, sorted.
func (g *Graph) AllNodes() []entity.CanonicalLocation {
	nodes := make([]entity.CanonicalLocation, 0, len(g.adjacency))
	for node := range g.adjacency {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return nodes
}
