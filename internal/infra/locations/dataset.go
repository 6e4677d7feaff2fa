// Package locations holds the static location dataset of the alerting
// engine: the canonical zone set, the alias table feeding the resolver, and
// the proximity graph. Everything here is loaded once at construction and is
// read-only afterwards, so instances can be shared across goroutines without
// locking.
package locations

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/known_locations.yaml
var knownLocationsYAML []byte

//go:embed data/proximity.yaml
var proximityYAML []byte

// rawDataset mirrors the structure of known_locations.yaml.
type rawDataset struct {
	Metadata struct {
		Description string `yaml:"description"`
		Version     string `yaml:"version"`
	} `yaml:"metadata"`
	Canonical struct {
		Communes         []string `yaml:"communes"`
		Neighborhoods    []string `yaml:"neighborhoods"`
		RecognizedPlaces []string `yaml:"recognized_places"`
	} `yaml:"canonical"`
	// Aliases maps a context name to a token -> targets table.
	Aliases map[string]map[string][]string `yaml:"aliases"`
	// Exclusive is the region-scoped alias layer, consulted only when the
	// caller signals the Geneva region context.
	Exclusive map[string][]string `yaml:"exclusive"`
}

func parseDataset(data []byte) (*rawDataset, error) {
	raw := new(rawDataset)
	if err := yaml.Unmarshal(data, raw); err != nil {
		return nil, errors.Wrap(err, "parse known locations dataset")
	}

	return raw, nil
}

func parseProximity(data []byte) (map[string][]string, error) {
	adjacency := make(map[string][]string)
	if err := yaml.Unmarshal(data, &adjacency); err != nil {
		return nil, errors.Wrap(err, "parse proximity dataset")
	}

	return adjacency, nil
}
