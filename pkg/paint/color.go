// Package paint describes what a frame draws: colors, text and frame
// styles, and the DrawList of backend-agnostic draw commands produced
// during the paint pass. The list culls commands against a viewport and
// an explicit clip stack so offscreen content never reaches a backend.
package paint

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB builds an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA builds a color with an explicit alpha.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// IsTransparent reports whether the color would paint nothing.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// Common colors.
var (
	White       = RGB(1, 1, 1)
	Black       = RGB(0, 0, 0)
	Transparent = Color{}
)
