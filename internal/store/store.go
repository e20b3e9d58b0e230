// Package store aggregates catalog registrations into a read-only registry
// with type and category lookups, instance creation and tree validation.
package store

import (
	"fmt"

	"github.com/corn12138/lowcode/internal/catalog"
	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/layout"
	"github.com/corn12138/lowcode/internal/logger"
	"github.com/corn12138/lowcode/internal/tree"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

// Store is the aggregated component registry. It is immutable once built and
// safe for concurrent readers.
type Store struct {
	components []catalog.Registration
	categories []catalog.Category
	byType     map[string]int
}

// New builds a store from category arrays, concatenated in the given order.
func New(log *logger.Logger, categories ...[]catalog.Registration) (*Store, error) {
	b := NewBuilder(log)
	for _, regs := range categories {
		if err := b.Add(regs...); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Default builds a store from the built-in layout, basic and form catalogs.
func Default(log *logger.Logger) (*Store, error) {
	return New(log, catalog.Builtin()...)
}

// Components returns every registration in category-then-declaration order.
func (s *Store) Components() []catalog.Registration {
	out := make([]catalog.Registration, len(s.components))
	for i, reg := range s.components {
		out[i] = reg.Clone()
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []catalog.Category {
	return append([]catalog.Category{}, s.categories...)
}

// ComponentByType returns the registration for componentType. A miss, including
// the empty string, reports false.
func (s *Store) ComponentByType(componentType string) (catalog.Registration, bool) {
	idx, ok := s.lookup(componentType)
	if !ok {
		return catalog.Registration{}, false
	}
	return s.components[idx].Clone(), true
}

// ComponentsByCategory returns the registrations of category in catalog order.
// An unknown category yields an empty, non-nil slice.
func (s *Store) ComponentsByCategory(category catalog.Category) []catalog.Registration {
	out := []catalog.Registration{}
	if s == nil {
		return out
	}
	for _, reg := range s.components {
		if reg.Category == category {
			out = append(out, reg.Clone())
		}
	}
	return out
}

// Component returns the renderable bound to componentType without copying the
// descriptor.
func (s *Store) Component(componentType string) (components.Component, bool) {
	idx, ok := s.lookup(componentType)
	if !ok {
		return nil, false
	}
	return s.components[idx].Component, true
}

// Len reports the number of registrations.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.components)
}

// Instantiate creates a node of componentType seeded with copies of the
// registration defaults.
func (s *Store) Instantiate(componentType, id string) (*tree.Node, error) {
	idx, ok := s.lookup(componentType)
	if !ok {
		return nil, lcerrors.NewUnknownTypeError(componentType, "")
	}
	reg := s.components[idx]
	return &tree.Node{
		ID:    id,
		Type:  reg.Type,
		Props: tree.Props(reg.DefaultProps).Clone(),
		Style: layout.FromMap(reg.DefaultStyle),
	}, nil
}

// Resolve returns the node's props and style with the registration defaults
// layered underneath.
func (s *Store) Resolve(n *tree.Node) (tree.Props, layout.Style, error) {
	if n == nil {
		return nil, nil, fmt.Errorf("nil node")
	}
	idx, ok := s.lookup(n.Type)
	if !ok {
		return nil, nil, lcerrors.NewUnknownTypeError(n.Type, "")
	}
	reg := s.components[idx]
	return reg.Props(n.Props), reg.Style(n.Style), nil
}

// ValidateTree checks an instance tree against the registry: every type is
// registered, children appear only under container types, props conform to
// the prop schema and enumerated style values to the style schema.
func (s *Store) ValidateTree(root *tree.Node) error {
	if root == nil {
		return lcerrors.NewValidationError("root", "tree is empty", nil)
	}

	return tree.Walk(root, func(path string, n *tree.Node) error {
		idx, ok := s.lookup(n.Type)
		if !ok {
			return lcerrors.NewUnknownTypeError(n.Type, path)
		}
		reg := s.components[idx]

		if len(n.Children) > 0 && !reg.AllowChildren {
			return lcerrors.NewValidationError(path+".children", fmt.Sprintf("%s does not accept children", reg.Type), nil)
		}
		if err := reg.PropSchema.CheckValues(path+".props", n.Props); err != nil {
			return err
		}
		if !reg.StyleSchema.IsZero() {
			if err := reg.StyleSchema.CheckStyle(path+".style", n.Style); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) lookup(componentType string) (int, bool) {
	if s == nil {
		return 0, false
	}
	idx, ok := s.byType[componentType]
	return idx, ok
}
