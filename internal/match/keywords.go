package match

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Keywords is a keyword list that may be written in YAML either as a
// single string or as a sequence of strings.
type Keywords []string

// UnmarshalYAML implements custom YAML unmarshaling for Keywords.
func (k *Keywords) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*k = Keywords{str}
		} else {
			*k = Keywords{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*k = arr

		return nil

	default:
		return fmt.Errorf("expected string or array of keywords, got %v", node.Kind)
	}
}

// MarshalYAML writes a single keyword as a plain string.
func (k Keywords) MarshalYAML() (any, error) {
	if len(k) == 1 {
		return k[0], nil
	}

	return []string(k), nil
}
