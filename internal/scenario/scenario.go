// Package scenario loads reconciliation scenarios for the lumen CLI.
// A scenario names a host element tag, the properties to mount, an
// optional update pass, and an optional list of properties to remove,
// in JSON or YAML.
package scenario

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/lumen-ui/lumen/internal/errors"
)

// Scenario describes one reconciliation run against a single element.
type Scenario struct {
	// Tag is the host element tag the properties apply to.
	Tag string `json:"tag" yaml:"tag"`

	// Namespaced marks an SVG/foreign-namespace element.
	Namespaced bool `json:"namespaced" yaml:"namespaced"`

	// Mount holds the properties applied on the initial mount.
	Mount map[string]any `json:"mount" yaml:"mount"`

	// Update, when present, holds the next property set for a second
	// reconciliation pass against the mounted element.
	Update map[string]any `json:"update" yaml:"update"`

	// Remove lists property names removed after the update pass.
	Remove []string `json:"remove" yaml:"remove"`
}

// Load reads and parses a scenario file. The format is chosen by
// extension: .json, .yaml, or .yml.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E101").WithFile(path).Wrap(err)
	}

	var sc Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, errors.New("E103").WithFile(path).Wrap(err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, errors.New("E103").WithFile(path).Wrap(err)
		}
	default:
		return nil, errors.New("E102").WithFile(path).
			WithSuggestion("Use a .json, .yaml, or .yml scenario file")
	}

	if sc.Tag == "" {
		return nil, errors.New("E104").WithFile(path).
			WithExample("tag: input\nmount:\n  value: hello")
	}

	return &sc, nil
}
