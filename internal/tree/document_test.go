package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corn12138/lowcode/internal/layout"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

const yamlDoc = `
version: "1.0"
title: Landing
root:
  type: Grid
  props:
    gutter: 20
  children:
    - type: Column
      id: left
      props:
        span: 8
        offset: 4
      style:
        minHeight: 40
        color: red
`

const jsonDoc = `{
  "title": "Landing",
  "root": {
    "type": "Row",
    "props": {"justify": "space-between", "align": "middle"},
    "children": [{"type": "Column", "props": {"span": 12}, "style": {"opacity": 0.5}}]
  }
}`

func TestDecodeYAMLDocument(t *testing.T) {
	t.Parallel()

	doc, err := DecodeDocument("page.yaml", []byte(yamlDoc), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "Landing", doc.Title)
	require.Equal(t, "Grid", doc.Root.Type)
	require.Equal(t, 20, doc.Root.Props.Int("gutter", 0))

	col := doc.Root.Children[0]
	require.Equal(t, "left", col.ID)
	require.Equal(t, 8, col.Props.Int("span", 0))
	require.Equal(t, layout.Style{"minHeight": "40px", "color": "red"}, col.Style)
}

func TestDecodeJSONDocument(t *testing.T) {
	t.Parallel()

	doc, err := DecodeDocument("page.json", []byte(jsonDoc), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "Row", doc.Root.Type)
	require.Equal(t, "space-between", doc.Root.Props.String("justify", ""))
	require.Equal(t, 12, doc.Root.Children[0].Props.Int("span", 0))
	require.Equal(t, layout.Style{"opacity": "0.5"}, doc.Root.Children[0].Style)
}

func TestDecodeDocumentErrors(t *testing.T) {
	t.Parallel()

	_, err := DecodeDocument("bad.yaml", []byte("root:\n  type: [unclosed\n"), FormatYAML)
	var parseErr *lcerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "bad.yaml", parseErr.Path)

	_, err = DecodeDocument("bad.json", []byte("{\n  \"root\": ,\n}"), FormatJSON)
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)

	_, err = DecodeDocument("empty.yaml", []byte("title: nothing\n"), FormatYAML)
	var validationErr *lcerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "root", validationErr.Field)
}

func TestLoadDocumentInfersFormat(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "page.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o644))

	doc, err := LoadDocument(jsonPath)
	require.NoError(t, err)
	require.Equal(t, "Row", doc.Root.Type)

	_, err = LoadDocument(filepath.Join(dir, "missing.yaml"))
	var parseErr *lcerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, FormatJSON, FormatForPath("a/b/page.JSON"))
	require.Equal(t, FormatYAML, FormatForPath("page.yml"))
	require.Equal(t, FormatYAML, FormatForPath("page"))
}

func TestEncodeRoundTripsYAML(t *testing.T) {
	t.Parallel()

	doc, err := DecodeDocument("page.yaml", []byte(yamlDoc), FormatYAML)
	require.NoError(t, err)

	data, err := doc.Encode(FormatYAML)
	require.NoError(t, err)

	again, err := DecodeDocument("again.yaml", data, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, doc.Root.Children[0].Style, again.Root.Children[0].Style)

	_, err = doc.Encode("xml")
	require.Error(t, err)
}
