package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowStyleDefaults(t *testing.T) {
	t.Parallel()

	style := RowStyle(DefaultRowProps())
	require.Equal(t, Style{
		"display":        "flex",
		"flexWrap":       "wrap",
		"marginLeft":     "-8px",
		"marginRight":    "-8px",
		"justifyContent": "flex-start",
		"alignItems":     "flex-start",
	}, style)
}

func TestRowGutterRoundTrip(t *testing.T) {
	t.Parallel()

	for _, gutter := range []float64{0, 8, 15, 20, 32} {
		row := RowStyle(RowProps{Gutter: gutter})
		pad := GutterPadding(gutter)

		require.Equal(t, Px(-gutter/2), row["marginLeft"])
		require.Equal(t, Px(-gutter/2), row["marginRight"])
		require.Equal(t, Px(gutter/2), pad["paddingLeft"])
		require.Equal(t, Px(gutter/2), pad["paddingRight"])
	}

	require.Equal(t, "-10px", RowStyle(RowProps{Gutter: 20})["marginLeft"])
	require.Equal(t, "10px", GutterPadding(20)["paddingRight"])
	require.Equal(t, "7.5px", GutterPadding(15)["paddingLeft"])
	require.Equal(t, "0px", RowStyle(RowProps{Gutter: 0})["marginLeft"])
	require.Equal(t, "0px", RowStyle(RowProps{Gutter: -4})["marginRight"])
}

func TestWithGutterMergesExistingStyle(t *testing.T) {
	t.Parallel()

	child := Style{"color": "red", "paddingLeft": "2px"}
	merged := WithGutter(child, 20)

	require.Equal(t, Style{"color": "red", "paddingLeft": "10px", "paddingRight": "10px"}, merged)
	require.Equal(t, "2px", child["paddingLeft"], "input style must not be modified")
}

func TestJustifyContentMapping(t *testing.T) {
	t.Parallel()

	expected := map[Justify]string{
		JustifyStart:        "flex-start",
		JustifyEnd:          "flex-end",
		JustifyCenter:       "center",
		JustifySpaceBetween: "space-between",
		JustifySpaceAround:  "space-around",
	}

	seen := map[string]bool{}
	for _, j := range Justifies {
		value, ok := JustifyContent(j)
		require.True(t, ok)
		require.NotEmpty(t, value)
		require.Equal(t, expected[j], value)
		require.False(t, seen[value], "justify values must be distinct")
		seen[value] = true
	}

	for _, bad := range []Justify{"", "left", "SPACE-BETWEEN"} {
		value, ok := JustifyContent(bad)
		require.False(t, ok)
		require.Equal(t, FallbackAlignment, value)
	}
}

func TestAlignItemsMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		align    Align
		expected string
		ok       bool
	}{
		{AlignTop, "flex-start", true},
		{AlignMiddle, "center", true},
		{AlignBottom, "flex-end", true},
		{"baseline", "flex-start", false},
		{"", "flex-start", false},
	}

	for _, tt := range tests {
		value, ok := AlignItems(tt.align)
		require.Equal(t, tt.expected, value, "align %q", tt.align)
		require.Equal(t, tt.ok, ok, "align %q", tt.align)
	}
}

func TestRowStyleResolvesAlignment(t *testing.T) {
	t.Parallel()

	style := RowStyle(RowProps{Gutter: 16, Justify: JustifySpaceBetween, Align: AlignMiddle})
	require.Equal(t, "space-between", style["justifyContent"])
	require.Equal(t, "center", style["alignItems"])

	style = RowStyle(RowProps{Gutter: 16, Justify: "sideways", Align: "upside"})
	require.Equal(t, "flex-start", style["justifyContent"])
	require.Equal(t, "flex-start", style["alignItems"])
}
