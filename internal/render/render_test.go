package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corn12138/lowcode/internal/logger"
	"github.com/corn12138/lowcode/internal/store"
	"github.com/corn12138/lowcode/internal/tree"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	s, err := store.Default(nil)
	require.NoError(t, err)
	return New(s, opts)
}

func TestRenderColumnHalfWidth(t *testing.T) {
	t.Parallel()

	out, err := newRenderer(t, Options{}).Render(tree.New("Column").WithProps(tree.Props{"span": 12}))
	require.NoError(t, err)
	require.Equal(t, `<div class="lc-column" style="flex:0 0 50%;max-width:50%;min-height:40px"></div>`, out)
	require.NotContains(t, out, "margin-left")
}

func TestRenderColumnWithOffset(t *testing.T) {
	t.Parallel()

	out, err := newRenderer(t, Options{}).Render(tree.New("Column").WithProps(tree.Props{"span": 8, "offset": 4}))
	require.NoError(t, err)
	require.Contains(t, out, "flex:0 0 33.33%")
	require.Contains(t, out, "max-width:33.33%")
	require.Contains(t, out, "margin-left:16.67%")
}

func TestRenderRowDistributesGutter(t *testing.T) {
	t.Parallel()

	childA := tree.New("Column").WithStyle(map[string]string{"backgroundColor": "#eee"})
	childB := tree.New("Column").WithStyle(map[string]string{"paddingLeft": "99px"})
	root := tree.New("Row", childA, childB).WithProps(tree.Props{"gutter": 20})

	out, err := newRenderer(t, Options{}).Render(root)
	require.NoError(t, err)

	rowOpen := out[:strings.Index(out, ">")]
	require.Contains(t, rowOpen, "margin-left:-10px")
	require.Contains(t, rowOpen, "margin-right:-10px")
	require.Contains(t, rowOpen, "display:flex")
	require.Contains(t, rowOpen, "flex-wrap:wrap")

	require.Equal(t, 2, strings.Count(out, "padding-left:10px;padding-right:10px"))
	require.Contains(t, out, "background-color:#eee")
	require.NotContains(t, out, "99px")

	require.Empty(t, childA.Style["paddingLeft"], "input tree is not modified")
	require.Equal(t, "99px", childB.Style["paddingLeft"])
}

func TestRenderRowAlignment(t *testing.T) {
	t.Parallel()

	out, err := newRenderer(t, Options{}).Render(tree.New("Row").WithProps(tree.Props{"justify": "space-between", "align": "middle"}))
	require.NoError(t, err)
	require.Contains(t, out, "justify-content:space-between")
	require.Contains(t, out, "align-items:center")
}

func TestRenderGutterOnlyReachesImmediateChildren(t *testing.T) {
	t.Parallel()

	root := tree.New("Row",
		tree.New("Column", tree.New("Text").WithProps(tree.Props{"content": "deep"})),
	).WithProps(tree.Props{"gutter": 8})

	out, err := newRenderer(t, Options{}).Render(root)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "padding-left:4px"))
	require.Contains(t, out, `<p class="lc-text" style="color:#333333;font-size:14px">deep</p>`)
}

func TestRenderDevelopmentWarnsOnAlignmentFallback(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	root := tree.New("Grid").WithProps(tree.Props{"justify": "sideways"})

	prod, err := newRenderer(t, Options{Logger: log}).Render(root)
	require.NoError(t, err)
	require.Empty(t, buf.String())

	dev, err := newRenderer(t, Options{Logger: log, Development: true}).Render(root)
	require.NoError(t, err)
	require.Equal(t, prod, dev)
	require.Contains(t, dev, "justify-content:flex-start")
	require.Contains(t, buf.String(), `"component":"Grid"`)
	require.Contains(t, buf.String(), `"value":"sideways"`)
}

func TestRenderEscapesContent(t *testing.T) {
	t.Parallel()

	out, err := newRenderer(t, Options{}).Render(tree.New("Text").WithProps(tree.Props{"content": "<script>x</script>"}))
	require.NoError(t, err)
	require.Contains(t, out, "&lt;script&gt;")
	require.NotContains(t, out, "<script>")
}

func TestRenderUnknownType(t *testing.T) {
	t.Parallel()

	_, err := newRenderer(t, Options{}).Render(tree.New("Grid", tree.New("Row"), tree.New("Marquee")))

	var unknown *lcerrors.UnknownTypeError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "root.children[1]", unknown.Path)
}

func TestRenderClassPrefix(t *testing.T) {
	t.Parallel()

	out, err := newRenderer(t, Options{ClassPrefix: "app"}).Render(tree.New("Divider"))
	require.NoError(t, err)
	require.Equal(t, `<hr class="app-divider app-divider-horizontal">`, out)
}

func TestRenderDocumentStandalone(t *testing.T) {
	t.Parallel()

	doc := &tree.Document{Title: "Home & Away", Root: tree.New("Divider")}

	fragment, err := newRenderer(t, Options{}).RenderDocument(doc)
	require.NoError(t, err)
	require.False(t, strings.HasPrefix(fragment, "<!DOCTYPE"))

	full, err := newRenderer(t, Options{Standalone: true}).RenderDocument(doc)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(full, "<!DOCTYPE html>"))
	require.Contains(t, full, "<title>Home &amp; Away</title>")
	require.Contains(t, full, fragment)
}

func TestRenderNilRoot(t *testing.T) {
	t.Parallel()

	_, err := newRenderer(t, Options{}).Render(nil)
	require.Error(t, err)
}
