package geoio

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlFeature is the YAML document format:
//
//	kind: linestring
//	points: [[0, 0], [3, 4]]
//	properties:
//	  length: 5
type yamlFeature struct {
	Kind       string         `yaml:"kind"`
	Points     [][]float64    `yaml:"points,flow"`
	Properties map[string]any `yaml:"properties,omitempty"`
}

func decodeYAML(data []byte) (Geometry, error) {
	var doc yamlFeature
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Geometry{}, err
	}
	kind, err := ParseKind(doc.Kind)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Kind: kind, Coords: doc.Points}, nil
}

func encodeYAML(w io.Writer, features []Feature) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, f := range features {
		doc := yamlFeature{
			Kind:       string(f.Geometry.Kind),
			Points:     f.Geometry.Coords,
			Properties: f.Properties,
		}
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
	}
	return enc.Close()
}
