package tree

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/corn12138/lowcode/internal/layout"
)

// Node is one placed component instance. Type references a registration by
// its type key; the tree itself carries no behavior.
type Node struct {
	ID       string       `json:"id,omitempty" yaml:"id,omitempty"`
	Type     string       `json:"type" yaml:"type"`
	Props    Props        `json:"props,omitempty" yaml:"props,omitempty"`
	Style    layout.Style `json:"style,omitempty" yaml:"style,omitempty"`
	Children []*Node      `json:"children,omitempty" yaml:"children,omitempty"`
}

// rawNode mirrors Node with a loosely typed style so numeric values can be
// normalized on decode.
type rawNode struct {
	ID       string         `json:"id" yaml:"id"`
	Type     string         `json:"type" yaml:"type"`
	Props    map[string]any `json:"props" yaml:"props"`
	Style    map[string]any `json:"style" yaml:"style"`
	Children []*Node        `json:"children" yaml:"children"`
}

func (n *Node) fromRaw(raw rawNode) {
	n.ID = raw.ID
	n.Type = raw.Type
	n.Props = Props(raw.Props)
	n.Style = nil
	if raw.Style != nil {
		n.Style = layout.FromMap(raw.Style)
	}
	n.Children = raw.Children
}

// UnmarshalYAML decodes a node, converting numeric style values to CSS lengths.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var raw rawNode
	if err := value.Decode(&raw); err != nil {
		return err
	}
	n.fromRaw(raw)
	return nil
}

// UnmarshalJSON decodes a node, converting numeric style values to CSS lengths.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.fromRaw(raw)
	return nil
}

// New creates a node of the given type with empty props and style.
func New(componentType string, children ...*Node) *Node {
	return &Node{Type: componentType, Props: Props{}, Style: layout.Style{}, Children: children}
}

// WithProps sets props and returns the node.
func (n *Node) WithProps(props Props) *Node {
	n.Props = props
	return n
}

// WithStyle sets the inline style and returns the node.
func (n *Node) WithStyle(style layout.Style) *Node {
	n.Style = style
	return n
}

// Label returns a short human identifier for diagnostics.
func (n *Node) Label() string {
	if n == nil {
		return "<nil>"
	}
	if n.ID != "" {
		return fmt.Sprintf("%s#%s", n.Type, n.ID)
	}
	return n.Type
}

// ShallowClone copies the node struct and its style map. Props and children
// are shared with the original.
func (n *Node) ShallowClone() *Node {
	if n == nil {
		return nil
	}
	clone := *n
	clone.Style = n.Style.Clone()
	return &clone
}

// Clone deep-copies the node and its whole subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		ID:    n.ID,
		Type:  n.Type,
		Props: n.Props.Clone(),
		Style: n.Style.Clone(),
	}
	if len(n.Children) > 0 {
		clone.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}

// ApplyGutter returns the children with gutter/2 horizontal padding merged on
// top of each child's inline style. The input nodes are not modified; nil
// children are preserved in place.
func ApplyGutter(children []*Node, gutter float64) []*Node {
	if children == nil {
		return nil
	}
	out := make([]*Node, len(children))
	for i, child := range children {
		if child == nil {
			continue
		}
		clone := child.ShallowClone()
		clone.Style = layout.WithGutter(child.Style, gutter)
		out[i] = clone
	}
	return out
}

// Walk visits n and its descendants depth-first. path names each node
// relative to the root, e.g. "root.children[1].children[0]".
func Walk(n *Node, fn func(path string, node *Node) error) error {
	return walk("root", n, fn)
}

func walk(path string, n *Node, fn func(path string, node *Node) error) error {
	if n == nil {
		return nil
	}
	if err := fn(path, n); err != nil {
		return err
	}
	for i, child := range n.Children {
		if err := walk(fmt.Sprintf("%s.children[%d]", path, i), child, fn); err != nil {
			return err
		}
	}
	return nil
}
