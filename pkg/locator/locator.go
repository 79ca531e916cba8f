// Package locator models the declarative DOM-locator catalog as an explicit
// immutable tree of named components with path-based lookup.
package locator

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is the selector language a locator is written in.
type Kind string

const (
	CSS   Kind = "css"
	XPath Kind = "xpath"
)

// Locator is a single resolvable selector. Values may contain ${name}
// placeholders filled in through Resolve.
type Locator struct {
	Kind  Kind
	Value string
}

// Resolve substitutes ${name} placeholders with the given arguments and
// returns the resulting locator. Unknown placeholders are left untouched.
func (l Locator) Resolve(args map[string]string) Locator {
	value := l.Value
	for name, arg := range args {
		value = strings.ReplaceAll(value, "${"+name+"}", arg)
	}
	return Locator{Kind: l.Kind, Value: value}
}

// String describes the locator for error messages.
func (l Locator) String() string {
	return fmt.Sprintf("%s [%s]", l.Kind, l.Value)
}

// Component is a named node in the catalog tree. Components hold selectors
// and child components; the tree is immutable after parsing.
type Component struct {
	name      string
	selectors map[string]Locator
	children  map[string]*Component
}

// Name returns the component's name within its parent.
func (c *Component) Name() string {
	return c.name
}

// Child walks the named path below this component.
func (c *Component) Child(path ...string) (*Component, error) {
	node := c
	for _, name := range path {
		child, ok := node.children[name]
		if !ok {
			return nil, fmt.Errorf("component %q has no child %q", node.name, name)
		}
		node = child
	}
	return node, nil
}

// Selector returns the named selector of this component.
func (c *Component) Selector(name string) (Locator, error) {
	loc, ok := c.selectors[name]
	if !ok {
		return Locator{}, fmt.Errorf("component %q has no selector %q", c.name, name)
	}
	return loc, nil
}

// Lookup resolves a dotted path whose last element is a selector name, e.g.
// "history_panel.search" or "masthead.user.logout".
func (c *Component) Lookup(path string) (Locator, error) {
	parts := strings.Split(path, ".")
	if len(parts) < 2 {
		return Locator{}, fmt.Errorf("locator path %q needs at least component.selector", path)
	}

	node, err := c.Child(parts[:len(parts)-1]...)
	if err != nil {
		return Locator{}, err
	}
	return node.Selector(parts[len(parts)-1])
}

// Parse builds a catalog tree from a YAML document. Each mapping node may
// carry a "selectors" mapping; every other key becomes a child component.
// Selector entries are either a plain CSS string or a {type, selector} pair.
func Parse(data []byte) (*Component, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse locator catalog: %w", err)
	}

	root := &Component{
		name:      "root",
		selectors: map[string]Locator{},
		children:  map[string]*Component{},
	}
	for name, node := range doc {
		child, err := parseComponent(name, &node)
		if err != nil {
			return nil, err
		}
		root.children[name] = child
	}
	return root, nil
}

func parseComponent(name string, node *yaml.Node) (*Component, error) {
	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("component %q: %w", name, err)
	}

	c := &Component{
		name:      name,
		selectors: map[string]Locator{},
		children:  map[string]*Component{},
	}

	for key, value := range raw {
		if key == "selectors" {
			var entries map[string]yaml.Node
			if err := value.Decode(&entries); err != nil {
				return nil, fmt.Errorf("component %q selectors: %w", name, err)
			}
			for selName, entry := range entries {
				loc, err := parseSelector(entry)
				if err != nil {
					return nil, fmt.Errorf("component %q selector %q: %w", name, selName, err)
				}
				c.selectors[selName] = loc
			}
			continue
		}

		child, err := parseComponent(key, &value)
		if err != nil {
			return nil, err
		}
		c.children[key] = child
	}

	return c, nil
}

func parseSelector(node yaml.Node) (Locator, error) {
	if node.Kind == yaml.ScalarNode {
		var value string
		if err := node.Decode(&value); err != nil {
			return Locator{}, err
		}
		return Locator{Kind: CSS, Value: value}, nil
	}

	var entry struct {
		Type     string `yaml:"type"`
		Selector string `yaml:"selector"`
	}
	if err := node.Decode(&entry); err != nil {
		return Locator{}, err
	}

	kind := Kind(entry.Type)
	switch kind {
	case CSS, XPath:
	case "":
		kind = CSS
	default:
		return Locator{}, fmt.Errorf("unknown selector type %q", entry.Type)
	}
	return Locator{Kind: kind, Value: entry.Selector}, nil
}
