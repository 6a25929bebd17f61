// Package yaml_adapter is the YAML implementation of config.Loader. Nested
// mappings are child items; scalar values are attributes. The reserved
// top-level key `_expand` lists expansion rules.
package yaml_adapter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// RulesKey is the reserved top-level key holding expansion rules.
const RulesKey = "_expand"

// ListSeparator joins the elements of list-valued attributes.
const ListSeparator = " | "

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

type ruleYAML struct {
	Attribute string `yaml:"attribute"`
	Mode      string `yaml:"mode"`
	Prefix    string `yaml:"prefix"`
	Stop      string `yaml:"stop"`
	Delimiter string `yaml:"delimiter"`
}

// Load parses every given YAML file and merges the items and expansion
// rules it declares into one model, in file order.
func (l *Loader) Load(ctx context.Context, files ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file_count", len(files))

	model := config.NewModel()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		fileModel, err := l.parse(data, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("YAML file translated.", "file", file, "items", fileModel.Count(), "rules", len(fileModel.Rules))
		model.Merge(fileModel)
	}

	logger.Debug("YAML loading complete.", "items", model.Count(), "rules", len(model.Rules))
	return model, nil
}

func (l *Loader) parse(data []byte, file string) (*config.Model, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", file, err)
	}

	model := config.NewModel()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return model, nil // empty file
	}

	root := deref(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return model, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML file %s: top level must be a mapping of items", file)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, deref(root.Content[i+1])

		if key == RulesKey {
			var rules []ruleYAML
			if err := value.Decode(&rules); err != nil {
				return nil, fmt.Errorf("YAML file %s: invalid %s section: %w", file, RulesKey, err)
			}
			for _, r := range rules {
				rule, err := config.NewRule(r.Attribute, r.Mode, r.Prefix, r.Stop, r.Delimiter)
				if err != nil {
					return nil, fmt.Errorf("in YAML file %s: %w", file, err)
				}
				model.Rules = append(model.Rules, rule)
			}
			continue
		}

		if isNull(value) {
			model.Items = append(model.Items, &config.Item{Name: key, Attributes: map[string]string{}, Source: file})
			continue
		}
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("YAML file %s line %d: top-level key %q must be an item mapping", file, root.Content[i].Line, key)
		}
		item, err := translateItem(key, value, file)
		if err != nil {
			return nil, err
		}
		model.Items = append(model.Items, item)
	}
	return model, nil
}

// translateItem converts a YAML mapping into an item. Mapping values become
// children, everything else an attribute.
func translateItem(name string, n *yaml.Node, file string) (*config.Item, error) {
	item := &config.Item{
		Name:       name,
		Attributes: make(map[string]string),
		Source:     file,
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, value := n.Content[i], deref(n.Content[i+1])
		key := keyNode.Value

		switch value.Kind {
		case yaml.MappingNode:
			child, err := translateItem(key, value, file)
			if err != nil {
				return nil, err
			}
			item.Children = append(item.Children, child)

		case yaml.ScalarNode:
			if isNull(value) {
				item.Attributes[key] = ""
			} else {
				item.Attributes[key] = value.Value
			}

		case yaml.SequenceNode:
			parts := make([]string, 0, len(value.Content))
			for _, elem := range value.Content {
				elem = deref(elem)
				if elem.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("YAML file %s line %d: attribute %q of item %q may only list scalar values", file, elem.Line, key, name)
				}
				parts = append(parts, elem.Value)
			}
			item.Attributes[key] = strings.Join(parts, ListSeparator)

		default:
			return nil, fmt.Errorf("YAML file %s line %d: unsupported value for %q in item %q", file, keyNode.Line, key, name)
		}
	}
	return item, nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
