package layout

// GridUnits is the number of units a row is divided into.
const GridUnits = 24

// Column defaults.
const (
	DefaultSpan   = 12
	DefaultOffset = 0
)

// Breakpoint names a responsive override slot.
type Breakpoint string

const (
	BreakpointXS Breakpoint = "xs"
	BreakpointSM Breakpoint = "sm"
	BreakpointMD Breakpoint = "md"
	BreakpointLG Breakpoint = "lg"
	BreakpointXL Breakpoint = "xl"
)

// Breakpoints lists every breakpoint from narrowest to widest.
var Breakpoints = []Breakpoint{BreakpointXS, BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL}

// ColumnProps are the render parameters of a Column.
//
// Overrides holds per-breakpoint spans. They are carried through unchanged;
// selecting the active breakpoint is left to an external responsive layer.
type ColumnProps struct {
	Span      int
	Offset    int
	Overrides map[Breakpoint]int
}

// DefaultColumnProps returns a half-width column with no offset.
func DefaultColumnProps() ColumnProps {
	return ColumnProps{Span: DefaultSpan, Offset: DefaultOffset}
}

// ColumnWidth returns the width percentage for a span, clamped to [0, 24] units.
func ColumnWidth(span int) float64 {
	return percentage(clampUnits(span), GridUnits)
}

// ColumnStyle computes the box of a column. A zero span collapses the box to
// zero width but keeps it in flow. The left margin is omitted entirely when
// the offset is zero.
func ColumnStyle(p ColumnProps) Style {
	width := Percent(clampUnits(p.Span), GridUnits)
	style := Style{
		"flex":     "0 0 " + width,
		"maxWidth": width,
	}
	if offset := clampUnits(p.Offset); offset > 0 {
		style["marginLeft"] = Percent(offset, GridUnits)
	}
	return style
}

// ActiveOverrides returns the breakpoint overrides in breakpoint order,
// clamped to the grid.
func (p ColumnProps) ActiveOverrides() []BreakpointSpan {
	if len(p.Overrides) == 0 {
		return nil
	}
	out := make([]BreakpointSpan, 0, len(p.Overrides))
	for _, bp := range Breakpoints {
		if span, ok := p.Overrides[bp]; ok {
			out = append(out, BreakpointSpan{Breakpoint: bp, Span: clampUnits(span)})
		}
	}
	return out
}

// BreakpointSpan pairs a breakpoint with its span override.
type BreakpointSpan struct {
	Breakpoint Breakpoint
	Span       int
}

func clampUnits(units int) int {
	if units < 0 {
		return 0
	}
	if units > GridUnits {
		return GridUnits
	}
	return units
}
