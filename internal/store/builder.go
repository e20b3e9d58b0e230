package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/corn12138/lowcode/internal/catalog"
	"github.com/corn12138/lowcode/internal/logger"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

var errSealed = errors.New("store already built; registrations are closed")

// Builder collects registrations during the registration phase. Build closes
// the phase: every later Add fails, so reads on the built Store never race
// with writes.
type Builder struct {
	mu     sync.Mutex
	regs   []catalog.Registration
	sealed bool
	log    *logger.Logger
}

// NewBuilder returns an empty builder. log may be nil.
func NewBuilder(log *logger.Logger) *Builder {
	return &Builder{log: log}
}

// Add appends registrations in declaration order.
func (b *Builder) Add(regs ...catalog.Registration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		componentType := ""
		if len(regs) > 0 {
			componentType = regs[0].Type
		}
		return lcerrors.NewRegistrationError(componentType, errSealed)
	}

	for _, reg := range regs {
		b.regs = append(b.regs, reg.Clone())
	}
	return nil
}

// AddFile loads a YAML catalog file and appends its registrations.
func (b *Builder) AddFile(path string) error {
	regs, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	return b.Add(regs...)
}

// Build validates every registration and aggregates them into a Store. It
// fails fast on the first invalid registration or duplicate type.
func (b *Builder) Build() (*Store, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return nil, lcerrors.NewRegistrationError("", errSealed)
	}
	b.sealed = true

	s := &Store{
		components: make([]catalog.Registration, 0, len(b.regs)),
		byType:     make(map[string]int, len(b.regs)),
	}
	seenCategory := make(map[catalog.Category]bool)

	for _, reg := range b.regs {
		if err := reg.Validate(); err != nil {
			return nil, lcerrors.NewRegistrationError(reg.Type, err)
		}
		if first, exists := s.byType[reg.Type]; exists {
			return nil, lcerrors.NewRegistrationError(reg.Type, fmt.Errorf(
				"duplicate type: already registered in category %q at position %d",
				s.components[first].Category, first,
			))
		}

		s.byType[reg.Type] = len(s.components)
		s.components = append(s.components, reg)
		if !seenCategory[reg.Category] {
			seenCategory[reg.Category] = true
			s.categories = append(s.categories, reg.Category)
		}

		b.log.WithFields(map[string]any{
			"type":     reg.Type,
			"category": string(reg.Category),
		}).Debug("component registered")
	}

	b.log.WithFields(map[string]any{
		"components": len(s.components),
		"categories": len(s.categories),
	}).Info("component store built")

	return s, nil
}
