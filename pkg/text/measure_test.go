package text

import (
	"testing"

	"github.com/go-helio/helio/pkg/paint"
)

// Face7x13 advances 7px per glyph and is 13px tall, which makes the
// default measurer a deterministic oracle.

func TestFaceMeasurer_SingleLine(t *testing.T) {
	m := Default()
	style := paint.TextStyle{Size: 13, Color: paint.White}

	got := m.Measure("hello", style)
	if got.Width != 35 {
		t.Errorf("width = %v, want 35 (5 glyphs x 7px)", got.Width)
	}
	if got.Height != 13 {
		t.Errorf("height = %v, want 13", got.Height)
	}
}

func TestFaceMeasurer_Empty(t *testing.T) {
	m := Default()
	got := m.Measure("", paint.DefaultTextStyle())
	if !got.IsEmpty() {
		t.Errorf("empty text measured %v, want empty", got)
	}
}

func TestFaceMeasurer_MultiLine(t *testing.T) {
	m := Default()
	style := paint.TextStyle{Size: 13, Color: paint.White}

	got := m.Measure("ab\nabcd\nc", style)
	if got.Width != 28 {
		t.Errorf("width = %v, want 28 (widest line)", got.Width)
	}
	if got.Height != 39 {
		t.Errorf("height = %v, want 39 (3 lines)", got.Height)
	}
}

func TestFaceMeasurer_ScalesToStyleSize(t *testing.T) {
	m := Default()

	at13 := m.Measure("scale", paint.TextStyle{Size: 13})
	at26 := m.Measure("scale", paint.TextStyle{Size: 26})

	if at26.Width != at13.Width*2 {
		t.Errorf("width did not scale linearly: %v vs %v", at13.Width, at26.Width)
	}
	if at26.Height != 26 {
		t.Errorf("height = %v, want 26", at26.Height)
	}
	if m.LineHeight(paint.TextStyle{Size: 26}) != 26 {
		t.Errorf("LineHeight should follow the style size")
	}
}
