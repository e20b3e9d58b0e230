package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corn12138/lowcode/internal/catalog"
	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/logger"
	"github.com/corn12138/lowcode/internal/schema"
	"github.com/corn12138/lowcode/internal/tree"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

func newDefaultStore(t *testing.T) *Store {
	t.Helper()
	s, err := Default(nil)
	require.NoError(t, err)
	return s
}

func types(regs []catalog.Registration) []string {
	out := make([]string, len(regs))
	for i, r := range regs {
		out[i] = r.Type
	}
	return out
}

func TestComponentByTypeGrid(t *testing.T) {
	t.Parallel()

	s, err := New(nil, catalog.Layout())
	require.NoError(t, err)

	grid, ok := s.ComponentByType("Grid")
	require.True(t, ok)
	require.Equal(t, catalog.CategoryLayout, grid.Category)
	require.True(t, grid.AllowChildren)
}

func TestComponentsByCategoryLayoutOrder(t *testing.T) {
	t.Parallel()

	s, err := New(nil, catalog.Layout())
	require.NoError(t, err)

	require.Equal(t, []string{"Grid", "Row", "Column"}, types(s.ComponentsByCategory(catalog.CategoryLayout)))
}

func TestComponentsByCategoryUnknownIsEmpty(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)
	got := s.ComponentsByCategory("media")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestComponentByTypeNeverPanics(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)
	for _, input := range []string{"", "grid", "Unknown", " Grid", "\x00"} {
		require.NotPanics(t, func() {
			_, ok := s.ComponentByType(input)
			require.False(t, ok, input)
		})
	}

	var nilStore *Store
	_, ok := nilStore.ComponentByType("Grid")
	require.False(t, ok)
	require.Empty(t, nilStore.ComponentsByCategory(catalog.CategoryLayout))
}

func TestComponentsKeepCategoryThenDeclarationOrder(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)

	var want []string
	for _, cat := range catalog.Builtin() {
		want = append(want, types(cat)...)
	}
	require.Equal(t, want, types(s.Components()))
	require.Equal(t, len(want), s.Len())
}

func TestCategoriesAreDistinctAndComplete(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)
	categories := s.Categories()
	require.Equal(t, []catalog.Category{catalog.CategoryLayout, catalog.CategoryBasic, catalog.CategoryForm}, categories)

	seen := map[catalog.Category]bool{}
	for _, reg := range s.Components() {
		seen[reg.Category] = true
	}
	require.Len(t, seen, len(categories))
	for _, c := range categories {
		require.True(t, seen[c])
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	badge := catalog.Registration{
		Type:       "Badge",
		Name:       "Badge",
		Category:   catalog.CategoryLayout,
		PropSchema: schema.Object(nil),
		Component:  components.NewHTMLElement("span", false),
	}

	s, err := New(nil, catalog.Form(), catalog.Layout(), []catalog.Registration{badge})
	require.NoError(t, err)
	require.Equal(t, []catalog.Category{catalog.CategoryForm, catalog.CategoryLayout}, s.Categories())
	require.Equal(t, []string{"Grid", "Row", "Column", "Badge"}, types(s.ComponentsByCategory(catalog.CategoryLayout)))
}

func TestBuildRejectsDuplicateType(t *testing.T) {
	t.Parallel()

	_, err := New(nil, catalog.Layout(), catalog.Layout()[:1])

	var regErr *lcerrors.RegistrationError
	require.True(t, errors.As(err, &regErr), "got %v", err)
	require.Equal(t, "Grid", regErr.Type)
	require.Contains(t, regErr.Error(), "duplicate type")
}

func TestBuildRejectsMalformedSchema(t *testing.T) {
	t.Parallel()

	row := catalog.Layout()[1]
	justify := row.PropSchema.Properties["justify"]
	justify.EnumNames = justify.EnumNames[:2]
	row.PropSchema.Properties["justify"] = justify

	_, err := New(nil, []catalog.Registration{row})

	var regErr *lcerrors.RegistrationError
	require.True(t, errors.As(err, &regErr))
	require.Equal(t, "Row", regErr.Type)

	var ve *lcerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "Row.propSchema.properties.justify.enumNames", ve.Field)
}

func TestBuilderRejectsAddAfterBuild(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)
	require.NoError(t, b.Add(catalog.Layout()...))
	_, err := b.Build()
	require.NoError(t, err)

	err = b.Add(catalog.Basic()...)
	var regErr *lcerrors.RegistrationError
	require.True(t, errors.As(err, &regErr))
	require.Equal(t, "Text", regErr.Type)

	_, err = b.Build()
	require.Error(t, err)
}

func TestBuilderCopiesRegistrations(t *testing.T) {
	t.Parallel()

	regs := catalog.Layout()
	b := NewBuilder(nil)
	require.NoError(t, b.Add(regs...))
	regs[0].DefaultProps["gutter"] = 99

	s, err := b.Build()
	require.NoError(t, err)
	grid, _ := s.ComponentByType("Grid")
	require.Equal(t, 16, grid.DefaultProps["gutter"])
}

func TestLookupsReturnCopies(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)
	first, _ := s.ComponentByType("Column")
	first.DefaultProps["span"] = 1

	second, _ := s.ComponentByType("Column")
	require.Equal(t, 12, second.DefaultProps["span"])
}

func TestRepeatedLookupsAreDeterministic(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg, ok := s.ComponentByType("Row")
			if !ok || reg.Name != "Row" {
				t.Errorf("unexpected lookup result %v %v", reg.Type, ok)
			}
		}()
	}
	wg.Wait()
}

func TestBuildLogsSummary(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	_, err = New(log, catalog.Layout())
	require.NoError(t, err)

	out := buf.String()
	require.Equal(t, 4, strings.Count(out, "\n"))
	require.Contains(t, out, `"message":"component store built"`)
	require.Contains(t, out, `"components":3`)
}

func TestAddFileLoadsCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
components:
  - type: Card
    name: Card
    category: basic
    allowChildren: true
    element:
      tag: section
`), 0o600))

	b := NewBuilder(nil)
	require.NoError(t, b.Add(catalog.Basic()...))
	require.NoError(t, b.AddFile(path))
	s, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, []string{"Text", "Button", "Image", "Link", "Divider", "Card"}, types(s.ComponentsByCategory(catalog.CategoryBasic)))
}

func TestInstantiateSeedsDefaults(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)
	node, err := s.Instantiate("Column", "c1")
	require.NoError(t, err)
	require.Equal(t, "c1", node.ID)
	require.Equal(t, 12, node.Props.Int("span", 0))
	require.Equal(t, "40px", node.Style["minHeight"])

	node.Props["span"] = 6
	again, err := s.Instantiate("Column", "c2")
	require.NoError(t, err)
	require.Equal(t, 12, again.Props.Int("span", 0))

	_, err = s.Instantiate("Nope", "x")
	var unknown *lcerrors.UnknownTypeError
	require.True(t, errors.As(err, &unknown))
}

func TestResolveLayersDefaults(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)
	props, style, err := s.Resolve(tree.New("Row").WithProps(tree.Props{"gutter": 20}))
	require.NoError(t, err)
	require.Equal(t, 20.0, props.Float("gutter", 0))
	require.Equal(t, "start", props.String("justify", ""))
	require.Empty(t, style)
}

func TestValidateTree(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)

	tests := []struct {
		name  string
		root  *tree.Node
		field string
	}{
		{
			name: "valid",
			root: tree.New("Grid",
				tree.New("Row",
					tree.New("Column", tree.New("Text").WithProps(tree.Props{"content": "hi"})).
						WithProps(tree.Props{"span": 8, "offset": 4, "md": nil}),
				),
			),
		},
		{
			name:  "children under leaf",
			root:  tree.New("Row", tree.New("Column", tree.New("Button", tree.New("Text")))),
			field: "root.children[0].children[0].children",
		},
		{
			name:  "span out of range",
			root:  tree.New("Row", tree.New("Column").WithProps(tree.Props{"span": 30})),
			field: "root.children[0].props.span",
		},
		{
			name:  "non integer span",
			root:  tree.New("Column").WithProps(tree.Props{"span": 2.5}),
			field: "root.props.span",
		},
		{
			name:  "unknown justify",
			root:  tree.New("Row").WithProps(tree.Props{"justify": "wide"}),
			field: "root.props.justify",
		},
		{
			name:  "undeclared prop",
			root:  tree.New("Text").WithProps(tree.Props{"colour": "red"}),
			field: "root.props.colour",
		},
		{
			name:  "enumerated style",
			root:  tree.New("Text").WithStyle(map[string]string{"textAlign": "justify"}),
			field: "root.style.textAlign",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := s.ValidateTree(tt.root)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			var ve *lcerrors.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			require.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateTreeUnknownType(t *testing.T) {
	t.Parallel()

	s := newDefaultStore(t)
	err := s.ValidateTree(tree.New("Grid", tree.New("Carousel")))

	var unknown *lcerrors.UnknownTypeError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "Carousel", unknown.Type)
	require.Equal(t, "root.children[0]", unknown.Path)

	require.Error(t, s.ValidateTree(nil))
}
