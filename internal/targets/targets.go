// Package targets loads the demo target registry: satellite/observer
// combinations the demonstration command queries. The registry is a YAML (or
// JSON) file; when none is configured a built-in default is used.
package targets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ManzarAli25/Orbitarium/internal/domain"
)

// Target names one satellite and the observer location to query it from,
// plus per-operation tuning. Zero tuning values take the client defaults.
type Target struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	SatID int     `json:"satid" yaml:"satid"`
	Lat   float64 `json:"lat" yaml:"lat"`
	Lng   float64 `json:"lng" yaml:"lng"`
	Alt   float64 `json:"alt" yaml:"alt"`

	Days          int `json:"days" yaml:"days"`
	MinVisibility int `json:"min_visibility" yaml:"min_visibility"`
	MinElevation  int `json:"min_elevation" yaml:"min_elevation"`
	Seconds       int `json:"seconds" yaml:"seconds"`
	SearchRadius  int `json:"search_radius" yaml:"search_radius"`
}

type registry struct {
	Targets []Target `json:"targets" yaml:"targets"`
}

// Observer returns the target's ground location.
func (t Target) Observer() domain.Observer {
	return domain.Observer{Lat: t.Lat, Lng: t.Lng, Alt: t.Alt}
}

// Default is the built-in target used when no registry file is configured:
// the ISS observed from New York City.
func Default() Target {
	return Target{
		ID:      "iss-nyc",
		Name:    "ISS over New York City",
		SatID:   25544,
		Lat:     40.7,
		Lng:     -74.0,
		Alt:     10,
		Seconds: 60,
	}
}

// Load reads the target registry from file.
func Load(path string) ([]Target, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("targets file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	reg, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	if len(reg.Targets) == 0 {
		return nil, errors.New("targets file contains no targets entries")
	}

	seen := make(map[string]struct{}, len(reg.Targets))
	for i := range reg.Targets {
		t := sanitizeTarget(reg.Targets[i])
		if err := validateTarget(t); err != nil {
			return nil, fmt.Errorf("target[%d]: %w", i, err)
		}
		if _, exists := seen[t.ID]; exists {
			return nil, fmt.Errorf("duplicate target id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		reg.Targets[i] = t
	}

	return reg.Targets, nil
}

func parseRegistry(data []byte, ext string) (registry, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg registry
		err := d.fn(data, &reg)
		if err == nil {
			return reg, nil
		}
		if ext != "" {
			// Known extension: surface the decoder error so a malformed
			// registry file is diagnosable.
			return registry{}, fmt.Errorf("decode %s targets: %w", d.name, err)
		}
	}

	return registry{}, errors.New("targets file format not recognized (expected YAML or JSON)")
}

func sanitizeTarget(t Target) Target {
	t.ID = strings.TrimSpace(t.ID)
	t.Name = strings.TrimSpace(t.Name)
	return t
}

func validateTarget(t Target) error {
	if t.ID == "" {
		return errors.New("id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("name is required for target %q", t.ID)
	}
	if t.SatID <= 0 {
		return fmt.Errorf("satid must be positive for target %q", t.ID)
	}
	if t.Lat < -90 || t.Lat > 90 {
		return fmt.Errorf("lat out of range for target %q", t.ID)
	}
	if t.Lng < -180 || t.Lng > 180 {
		return fmt.Errorf("lng out of range for target %q", t.ID)
	}
	return nil
}
