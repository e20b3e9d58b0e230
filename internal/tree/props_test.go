package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropsAccessorsNormalizeNumbers(t *testing.T) {
	t.Parallel()

	props := Props{
		"span":    8,
		"offset":  4.0,
		"gutter":  20.5,
		"partial": 2.5,
		"xs":      nil,
		"label":   "Save",
		"block":   true,
		"options": []any{"a", "b"},
	}

	require.Equal(t, 8, props.Int("span", 12))
	require.Equal(t, 4, props.Int("offset", 0))
	require.Equal(t, 20.5, props.Float("gutter", 16))
	require.Equal(t, 7, props.Int("partial", 7), "fractional values fall back to default")
	require.Equal(t, 12, props.Int("missing", 12))
	require.Equal(t, "Save", props.String("label", ""))
	require.Equal(t, "fallback", props.String("span", "fallback"))
	require.True(t, props.Bool("block", false))
	require.Len(t, props.List("options"), 2)
	require.Nil(t, props.List("label"))

	_, ok := props.OptionalInt("xs")
	require.False(t, ok)
	require.True(t, props.Has("xs"))
	require.False(t, props.Has("sm"))
}

func TestPropsCloneIsDeep(t *testing.T) {
	t.Parallel()

	original := Props{
		"nested":  map[string]any{"k": "v"},
		"options": []any{map[string]any{"label": "A"}},
	}
	clone := original.Clone()

	clone["nested"].(map[string]any)["k"] = "changed"
	clone["options"].([]any)[0].(map[string]any)["label"] = "B"

	require.Equal(t, "v", original["nested"].(map[string]any)["k"])
	require.Equal(t, "A", original["options"].([]any)[0].(map[string]any)["label"])
	require.Equal(t, Props{}, Props(nil).Clone())
}

func TestMergeOverlayWins(t *testing.T) {
	t.Parallel()

	base := Props{"span": 12, "offset": 0}
	merged := Merge(base, Props{"span": 6})

	require.Equal(t, Props{"span": 6, "offset": 0}, merged)
	require.Equal(t, 12, base["span"])
}

func TestNumber(t *testing.T) {
	t.Parallel()

	for _, v := range []any{int(1), int8(1), int16(1), int32(1), int64(1), uint(1), uint8(1), uint16(1), uint32(1), uint64(1), float32(1), float64(1)} {
		n, ok := Number(v)
		require.True(t, ok, "%T", v)
		require.Equal(t, 1.0, n)
	}
	_, ok := Number("1")
	require.False(t, ok)
}
