// Package text provides the text measurement oracle consumed by layout.
//
// Shaping and rasterization belong to a rendering backend; layout only
// needs the size a run of text will occupy. FaceMeasurer answers that
// from a font.Face, scaling the face's natural metrics to the requested
// style size.
package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/paint"
)

// Measurer reports the size a text run occupies at a given style.
type Measurer interface {
	Measure(text string, style paint.TextStyle) geometry.Size
}

// FaceMeasurer measures text with a font.Face. The face is measured at
// its natural size and the result scaled linearly to the style size;
// an exact match needs a face per size, which is a backend concern.
type FaceMeasurer struct {
	face       font.Face
	lineHeight float32
}

// NewFaceMeasurer wraps a font face.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	metrics := face.Metrics()
	return &FaceMeasurer{
		face:       face,
		lineHeight: fixedToFloat(metrics.Height),
	}
}

// Default returns a measurer over the fixed 7x13 basic font. Useful as
// a deterministic oracle in tests and headless runs.
func Default() *FaceMeasurer {
	return NewFaceMeasurer(basicfont.Face7x13)
}

// Measure returns the bounding size of text at the style's size.
// Multi-line text measures as the widest line by the line count.
func (m *FaceMeasurer) Measure(text string, style paint.TextStyle) geometry.Size {
	if text == "" {
		return geometry.Size{}
	}

	scale := float32(1)
	if m.lineHeight > 0 && style.Size > 0 {
		scale = style.Size / m.lineHeight
	}

	var widest float32
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w := fixedToFloat(font.MeasureString(m.face, line))
		if w > widest {
			widest = w
		}
	}

	return geometry.Size{
		Width:  widest * scale,
		Height: m.lineHeight * scale * float32(len(lines)),
	}
}

// LineHeight returns the scaled height of a single line.
func (m *FaceMeasurer) LineHeight(style paint.TextStyle) float32 {
	if m.lineHeight > 0 && style.Size > 0 {
		return style.Size
	}
	return m.lineHeight
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
