package layout

// Justify is the symbolic horizontal distribution of a row.
type Justify string

const (
	JustifyStart        Justify = "start"
	JustifyEnd          Justify = "end"
	JustifyCenter       Justify = "center"
	JustifySpaceBetween Justify = "space-between"
	JustifySpaceAround  Justify = "space-around"
)

// Align is the symbolic vertical alignment of a row.
type Align string

const (
	AlignTop    Align = "top"
	AlignMiddle Align = "middle"
	AlignBottom Align = "bottom"
)

// FallbackAlignment is used for any unrecognized justify or align keyword.
const FallbackAlignment = "flex-start"

// DefaultGutter is the row gutter in pixels.
const DefaultGutter = 16.0

var justifyContent = map[Justify]string{
	JustifyStart:        "flex-start",
	JustifyEnd:          "flex-end",
	JustifyCenter:       "center",
	JustifySpaceBetween: "space-between",
	JustifySpaceAround:  "space-around",
}

var alignItems = map[Align]string{
	AlignTop:    "flex-start",
	AlignMiddle: "center",
	AlignBottom: "flex-end",
}

// Justifies lists accepted justify keywords in declaration order.
var Justifies = []Justify{JustifyStart, JustifyEnd, JustifyCenter, JustifySpaceBetween, JustifySpaceAround}

// Aligns lists accepted align keywords in declaration order.
var Aligns = []Align{AlignTop, AlignMiddle, AlignBottom}

// JustifyContent resolves a justify keyword. Unknown keywords resolve to
// FallbackAlignment with ok=false.
func JustifyContent(j Justify) (value string, ok bool) {
	value, ok = justifyContent[j]
	if !ok {
		return FallbackAlignment, false
	}
	return value, true
}

// AlignItems resolves an align keyword. Unknown keywords resolve to
// FallbackAlignment with ok=false.
func AlignItems(a Align) (value string, ok bool) {
	value, ok = alignItems[a]
	if !ok {
		return FallbackAlignment, false
	}
	return value, true
}

// RowProps are the render parameters of a Row or Grid.
type RowProps struct {
	Gutter  float64
	Justify Justify
	Align   Align
}

// DefaultRowProps returns a start-aligned row with the default gutter.
func DefaultRowProps() RowProps {
	return RowProps{Gutter: DefaultGutter, Justify: JustifyStart, Align: AlignTop}
}

// RowStyle computes the flex container style. The horizontal margins are the
// negated half gutter on each side.
func RowStyle(p RowProps) Style {
	half := halfGutter(p.Gutter)
	justify, _ := JustifyContent(p.Justify)
	align, _ := AlignItems(p.Align)
	return Style{
		"display":        "flex",
		"flexWrap":       "wrap",
		"marginLeft":     Px(-half),
		"marginRight":    Px(-half),
		"justifyContent": justify,
		"alignItems":     align,
	}
}

// GutterPadding is the horizontal padding a row pushes onto each immediate child.
func GutterPadding(gutter float64) Style {
	half := halfGutter(gutter)
	return Style{
		"paddingLeft":  Px(half),
		"paddingRight": Px(half),
	}
}

// WithGutter merges the gutter padding on top of a child's existing inline style.
func WithGutter(child Style, gutter float64) Style {
	return Merge(child, GutterPadding(gutter))
}

func halfGutter(gutter float64) float64 {
	if gutter < 0 {
		return 0
	}
	return gutter / 2
}
