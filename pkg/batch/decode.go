package batch

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type document struct {
	Cases []Case `yaml:"cases"`
}

// Decode reads cases from a YAML document. The document is either a list
// of cases or a mapping with a "cases" key. JSON input is accepted as well.
func Decode(r io.Reader) ([]Case, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrDecode, ErrEmptyDocument)
		}
		return nil, errors.Join(ErrDecode, err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	var cases []Case
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&cases); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
		cases = doc.Cases
	default:
		return nil, errors.Join(ErrDecode, fmt.Errorf("line %d: expected a list of cases or a cases mapping", node.Line))
	}

	for i, c := range cases {
		if c.Validator == "" {
			return nil, errors.Join(ErrDecode, fmt.Errorf("case %d: %w", i, ErrMissingValidator))
		}
	}
	return cases, nil
}
