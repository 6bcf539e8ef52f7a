package interaction

import (
	"testing"

	"github.com/go-helio/helio/pkg/geometry"
)

func rect(x, y, w, h float32) geometry.Rect {
	return geometry.RectFromLTWH(x, y, w, h)
}

func TestResolveHighestZWins(t *testing.T) {
	b := NewHitTestBuilder(0, 0)
	overlapping := rect(0, 0, 100, 100)
	b.Add(NewElementID(1), overlapping, 5)
	b.Add(NewElementID(2), overlapping, 10)
	b.Add(NewElementID(3), overlapping, 2)

	hit, ok := Resolve(b.Build(), geometry.Offset{X: 50, Y: 50})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Element != NewElementID(2) {
		t.Fatalf("element = %v, want 2", hit.Element)
	}
	if hit.Z != 10 {
		t.Fatalf("z = %d, want 10", hit.Z)
	}
}

func TestResolveHigherLayerBeatsEqualZ(t *testing.T) {
	overlapping := rect(0, 0, 100, 100)

	base := NewHitTestBuilder(0, 0)
	base.Add(NewElementID(1), overlapping, 7)

	overlay := NewHitTestBuilder(1, 0)
	overlay.Add(NewElementID(2), overlapping, 7)

	entries := append(base.Build(), overlay.Entries()...)
	b := HitTestBuilder{entries: entries}

	hit, ok := Resolve(b.Build(), geometry.Offset{X: 10, Y: 10})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Element != NewElementID(2) {
		t.Fatalf("element = %v, want overlay element 2", hit.Element)
	}
}

func TestResolveFullTieLastRegisteredWins(t *testing.T) {
	b := NewHitTestBuilder(0, 0)
	overlapping := rect(0, 0, 100, 100)
	b.Add(NewElementID(1), overlapping, 3)
	b.Add(NewElementID(2), overlapping, 3)
	b.Add(NewElementID(3), overlapping, 3)

	hit, ok := Resolve(b.Build(), geometry.Offset{X: 50, Y: 50})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Element != NewElementID(3) {
		t.Fatalf("element = %v, want last registered 3", hit.Element)
	}
}

func TestResolveMiss(t *testing.T) {
	b := NewHitTestBuilder(0, 0)
	b.Add(NewElementID(1), rect(0, 0, 10, 10), 0)

	if _, ok := Resolve(b.Build(), geometry.Offset{X: 50, Y: 50}); ok {
		t.Fatal("expected a miss")
	}
}

func TestResolveLocalPosition(t *testing.T) {
	b := NewHitTestBuilder(0, 0)
	b.Add(NewElementID(1), rect(20, 30, 100, 100), 0)

	hit, ok := Resolve(b.Build(), geometry.Offset{X: 25, Y: 40})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.LocalPosition.X != 5 || hit.LocalPosition.Y != 10 {
		t.Fatalf("local = %+v, want (5, 10)", hit.LocalPosition)
	}
}

func TestResolveEdgeExclusive(t *testing.T) {
	b := NewHitTestBuilder(0, 0)
	b.Add(NewElementID(1), rect(0, 0, 10, 10), 0)
	sorted := b.Build()

	if _, ok := Resolve(sorted, geometry.Offset{X: 0, Y: 0}); !ok {
		t.Fatal("top-left corner should hit")
	}
	if _, ok := Resolve(sorted, geometry.Offset{X: 10, Y: 10}); ok {
		t.Fatal("bottom-right corner should miss")
	}
}

func TestPushZNests(t *testing.T) {
	b := NewHitTestBuilder(0, 0)
	overlapping := rect(0, 0, 100, 100)
	b.Add(NewElementID(1), overlapping, 1)
	b.PushZ(100)
	b.Add(NewElementID(2), overlapping, 1)
	b.PushZ(100)
	b.Add(NewElementID(3), overlapping, 1)
	b.PopZ(100)
	b.PopZ(100)
	b.Add(NewElementID(4), overlapping, 2)

	hit, _ := Resolve(b.Build(), geometry.Offset{X: 1, Y: 1})
	if hit.Element != NewElementID(3) {
		t.Fatalf("element = %v, want deepest z context 3", hit.Element)
	}
	if hit.Z != 201 {
		t.Fatalf("z = %d, want 201", hit.Z)
	}
}

func TestBuilderClearKeepsZBase(t *testing.T) {
	b := NewHitTestBuilder(0, 50)
	b.Add(NewElementID(1), rect(0, 0, 10, 10), 0)
	b.Clear()
	if len(b.Entries()) != 0 {
		t.Fatal("entries should be empty after Clear")
	}

	b.Add(NewElementID(2), rect(0, 0, 10, 10), 0)
	if got := b.Entries()[0].Z; got != 50 {
		t.Fatalf("z = %d, want base 50 preserved", got)
	}
}

func TestAddFocusableMarksEntry(t *testing.T) {
	b := NewHitTestBuilder(0, 0)
	b.Add(NewElementID(1), rect(0, 0, 10, 10), 0)
	b.AddFocusable(NewElementID(2), rect(20, 0, 10, 10), 0)

	entries := b.Entries()
	if entries[0].Focusable || !entries[1].Focusable {
		t.Fatalf("focusable flags wrong: %v %v", entries[0].Focusable, entries[1].Focusable)
	}
}
