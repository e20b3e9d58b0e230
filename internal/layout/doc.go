// Package layout computes the inline styles of the grid primitives.
//
// Column maps a 24-unit span and offset onto percentage widths and margins.
// Row (and Grid, which shares its semantics) produces a wrapping flex
// container whose negative horizontal margins cancel the gutter padding that
// the container pushes onto each immediate child.
//
// Everything here is a pure function of its inputs. Styles are plain maps keyed
// by camelCase property names, serialized to CSS with Style.CSS.
package layout
