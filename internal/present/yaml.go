package present

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes g as a YAML document.
func WriteYAML(w io.Writer, g *Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML decodes a graph written by WriteYAML.
func ReadYAML(r io.Reader) (*Graph, error) {
	var g Graph
	if err := yaml.NewDecoder(r).Decode(&g); err != nil {
		return nil, err
	}
	return &g, nil
}
