package components

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corn12138/lowcode/internal/layout"
	"github.com/corn12138/lowcode/internal/logger"
	"github.com/corn12138/lowcode/internal/tree"
)

func TestColumnRenderHalfWidthWithoutMargin(t *testing.T) {
	t.Parallel()

	out := Column{}.Render(RenderContext{}, Element{Type: "Column", Props: tree.Props{"span": 12}})
	require.Equal(t, `<div class="lc-column" style="flex:0 0 50%;max-width:50%"></div>`, out)
	require.NotContains(t, out, "margin-left")
}

func TestColumnRenderWithOffset(t *testing.T) {
	t.Parallel()

	out := Column{}.Render(RenderContext{}, Element{
		Type:     "Column",
		Props:    tree.Props{"span": 8, "offset": 4},
		Children: []string{"<p>x</p>"},
	})
	require.Equal(t, `<div class="lc-column" style="flex:0 0 33.33%;margin-left:16.67%;max-width:33.33%"><p>x</p></div>`, out)
}

func TestColumnKeepsGutterPaddingFromParent(t *testing.T) {
	t.Parallel()

	out := Column{}.Render(RenderContext{}, Element{
		Type:  "Column",
		Props: tree.Props{"span": 24},
		Style: layout.Style{"paddingLeft": "10px", "paddingRight": "10px"},
	})
	require.Contains(t, out, "padding-left:10px")
	require.Contains(t, out, "padding-right:10px")
	require.Contains(t, out, "max-width:100%")
}

func TestColumnPassesBreakpointsThrough(t *testing.T) {
	t.Parallel()

	props := tree.Props{"span": 12, "xs": 24, "md": 8, "lg": nil}
	out := Column{}.Render(RenderContext{}, Element{Type: "Column", Props: props})
	require.Contains(t, out, `data-xs="24"`)
	require.Contains(t, out, `data-md="8"`)
	require.NotContains(t, out, "data-lg")
	require.Contains(t, out, "max-width:50%", "breakpoints do not change the base span")
}

func TestColumnPropsFromDefaults(t *testing.T) {
	t.Parallel()

	props := ColumnPropsFrom(tree.Props{})
	require.Equal(t, layout.DefaultColumnProps(), props)
}

func TestRowRenderResolvesAlignment(t *testing.T) {
	t.Parallel()

	out := Row{}.Render(RenderContext{}, Element{
		Type:     "Row",
		Props:    tree.Props{"gutter": 20, "justify": "space-between", "align": "middle"},
		Children: []string{"<i>a</i>", "<i>b</i>"},
	})
	require.Equal(t,
		`<div class="lc-row" style="align-items:center;display:flex;flex-wrap:wrap;justify-content:space-between;margin-left:-10px;margin-right:-10px"><i>a</i><i>b</i></div>`,
		out)
}

func TestRowTransformChildrenAppliesGutter(t *testing.T) {
	t.Parallel()

	childA := tree.New("Column").WithStyle(layout.Style{"background": "red"})
	childB := tree.New("Column")

	out := Row{}.TransformChildren(RenderContext{}, tree.Props{"gutter": 20}, []*tree.Node{childA, childB})
	require.Equal(t, layout.Style{"background": "red", "paddingLeft": "10px", "paddingRight": "10px"}, out[0].Style)
	require.Equal(t, layout.Style{"paddingLeft": "10px", "paddingRight": "10px"}, out[1].Style)

	out = Row{}.TransformChildren(RenderContext{}, tree.Props{}, []*tree.Node{childB})
	require.Equal(t, "8px", out[0].Style["paddingLeft"], "default gutter is 16")
}

func TestRowWarnsOnUnknownAlignmentInDevelopment(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	el := Element{Type: "Grid", Props: tree.Props{"justify": "left", "align": "baseline"}}

	prod := Row{}.Render(RenderContext{Logger: log}, el)
	require.Empty(t, buf.String())

	dev := Row{}.Render(RenderContext{Logger: log, Development: true}, el)
	require.Equal(t, prod, dev, "output is the same in both modes")
	require.Contains(t, buf.String(), `"prop":"justify"`)
	require.Contains(t, buf.String(), `"prop":"align"`)
	require.Contains(t, buf.String(), `"component":"Grid"`)
	require.Contains(t, dev, "justify-content:flex-start")
}

func TestClassPrefix(t *testing.T) {
	t.Parallel()

	require.Equal(t, "lc-grid", RenderContext{}.ClassFor("Grid"))
	require.Equal(t, "page-grid", RenderContext{ClassPrefix: "page"}.ClassFor("Grid"))
}
