package frontmatter

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Serialize renders the frontmatter as a delimited block without a trailing newline:
//
//	---
//	key: value
//	list:
//	  - item
//	---
//
// Keys are written in sorted order. Scalars are encoded with yaml.v3, so values
// that would change meaning as plain YAML are quoted and everything else stays plain.
func Serialize(fm *Frontmatter) (string, error) {
	lines := []string{Delimiter}

	for _, key := range fm.keys {
		keyText, err := renderScalar(key)
		if err != nil {
			return "", fmt.Errorf("failed to encode key %q: %w", key, err)
		}

		val := fm.fields[key]
		if items, ok := sequenceItems(val); ok {
			lines = append(lines, keyText+":")
			for _, item := range items {
				itemText, err := renderScalar(item)
				if err != nil {
					return "", fmt.Errorf("failed to encode %s item: %w", key, err)
				}
				lines = append(lines, "  - "+itemText)
			}
			continue
		}

		valueText, err := renderScalar(val)
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", key, err)
		}
		if valueText == "" {
			lines = append(lines, keyText+":")
			continue
		}
		lines = append(lines, keyText+": "+valueText)
	}

	lines = append(lines, Delimiter)
	return strings.Join(lines, "\n"), nil
}

// sequenceItems returns the elements of list-like values.
func sequenceItems(val any) ([]any, bool) {
	switch v := val.(type) {
	case []any:
		return v, true
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, true
	}
	return nil, false
}

// renderScalar encodes a single value on one line.
func renderScalar(val any) (string, error) {
	var node *yaml.Node

	switch v := val.(type) {
	case nil:
		return "", nil
	case Quoted:
		node = &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Style: yaml.DoubleQuotedStyle,
			Value: string(v),
		}
	default:
		node = &yaml.Node{}
		if err := node.Encode(val); err != nil {
			return "", err
		}
		inline(node)
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// inline forces a node and its children onto a single line.
func inline(node *yaml.Node) {
	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		node.Style = yaml.FlowStyle
		for _, child := range node.Content {
			inline(child)
		}
	case yaml.ScalarNode:
		switch {
		case node.Value == "" && node.Tag == "!!str":
			node.Style = yaml.DoubleQuotedStyle
		case strings.Contains(node.Value, "\n"):
			node.Style = yaml.DoubleQuotedStyle
		case node.Tag == "!!str" && isDate(node.Value):
			// yaml.v3 reads plain dates back as strings, keep them unquoted.
			node.Style = 0
			node.Tag = ""
		}
	}
}

func isDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
