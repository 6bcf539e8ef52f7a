package element

import (
	"testing"

	"github.com/go-helio/helio/pkg/dragdrop"
	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/interaction"
	"github.com/go-helio/helio/pkg/layouts"
	"github.com/go-helio/helio/pkg/paint"
	"github.com/go-helio/helio/pkg/text"
)

// harness bundles everything one layout-and-paint pass needs.
type harness struct {
	solver   *layouts.StackSolver
	draw     *paint.DrawList
	hitTest  *interaction.HitTestBuilder
	registry *interaction.Registry
	zones    *dragdrop.ZoneRegistry
}

func newHarness() *harness {
	return &harness{
		solver:   layouts.NewStackSolver(),
		draw:     paint.NewDrawList(),
		hitTest:  interaction.NewHitTestBuilder(0, 0),
		registry: interaction.NewRegistry(),
		zones:    dragdrop.NewZoneRegistry(),
	}
}

// run lays out and paints root within the available space.
func (h *harness) run(t *testing.T, root Element, available geometry.Size) {
	t.Helper()

	lctx := NewLayoutContext(h.solver, text.Default())
	node := root.Layout(lctx)
	if err := h.solver.Compute(node, available); err != nil {
		t.Fatalf("compute: %v", err)
	}

	pctx := NewPaintContext(h.draw, h.hitTest, h.registry, h.zones, h.solver)
	root.Paint(h.solver.Bounds(node), pctx)
}

func TestColumnStacksChildren(t *testing.T) {
	h := newHarness()
	root := NewColumn(
		NewBox(geometry.Size{Width: 100, Height: 30}, paint.RGB(1, 0, 0)),
		NewBox(geometry.Size{Width: 80, Height: 20}, paint.RGB(0, 1, 0)),
	)
	h.run(t, root, geometry.Size{Width: 200, Height: 200})

	cmds := h.draw.Commands()
	if len(cmds) != 2 {
		t.Fatalf("commands = %d, want 2", len(cmds))
	}
	if cmds[0].Rect.Top != 0 || cmds[1].Rect.Top != 30 {
		t.Fatalf("tops = %v, %v; want stacked at 0 and 30", cmds[0].Rect.Top, cmds[1].Rect.Top)
	}
}

func TestNestedOriginsAccumulate(t *testing.T) {
	h := newHarness()
	inner := NewColumn(NewBox(geometry.Size{Width: 10, Height: 10}, paint.RGB(0, 0, 1)))
	outer := NewColumn(
		NewBox(geometry.Size{Width: 50, Height: 40}, paint.RGB(1, 0, 0)),
		inner.WithStyle(layouts.Style{Direction: layouts.Column, Padding: 5}),
	)
	h.run(t, outer, geometry.Size{Width: 200, Height: 200})

	cmds := h.draw.Commands()
	last := cmds[len(cmds)-1]
	// Box sits under the first child (y=40) plus the inner padding.
	if last.Rect.Left != 5 || last.Rect.Top != 45 {
		t.Fatalf("inner box at (%v, %v), want (5, 45)", last.Rect.Left, last.Rect.Top)
	}
}

func TestViewportCulling(t *testing.T) {
	h := newHarness()
	h.draw.SetViewport(geometry.RectFromLTWH(0, 0, 100, 50))

	root := NewColumn(
		NewBox(geometry.Size{Width: 100, Height: 30}, paint.RGB(1, 0, 0)),
		NewBox(geometry.Size{Width: 100, Height: 30}, paint.RGB(0, 1, 0)),
		NewBox(geometry.Size{Width: 100, Height: 30}, paint.RGB(0, 0, 1)),
	)
	h.run(t, root, geometry.Size{Width: 100, Height: 200})

	// The third box starts at y=60, fully below the viewport.
	if h.draw.Len() != 2 {
		t.Fatalf("commands = %d, want third box culled", h.draw.Len())
	}
}

func TestLabelMeasuresThroughOracle(t *testing.T) {
	h := newHarness()
	style := paint.TextStyle{Size: 13}
	label := NewLabel("hello", style)

	lctx := NewLayoutContext(h.solver, text.Default())
	node := label.Layout(lctx)
	if err := h.solver.Compute(node, geometry.Size{Width: 500, Height: 500}); err != nil {
		t.Fatal(err)
	}

	bounds := h.solver.Bounds(node)
	want := text.Default().Measure("hello", style)
	if bounds.Width() != want.Width || bounds.Height() != want.Height {
		t.Fatalf("bounds %vx%v, want %vx%v", bounds.Width(), bounds.Height(), want.Width, want.Height)
	}
}

func TestInteractiveRegistersOnPaint(t *testing.T) {
	h := newHarness()
	id := interaction.StableID("button")

	clicked := false
	button := NewInteractive(id, NewBox(geometry.Size{Width: 60, Height: 20}, paint.RGB(0.2, 0.2, 0.2))).
		Focusable().
		OnClick(func(interaction.MouseButton, geometry.Offset, geometry.Offset) { clicked = true })

	h.run(t, NewColumn(button), geometry.Size{Width: 200, Height: 200})

	entries := h.hitTest.Entries()
	if len(entries) != 1 || entries[0].Element != id || !entries[0].Focusable {
		t.Fatalf("entries = %+v", entries)
	}
	if h.registry.Len() != 1 {
		t.Fatalf("registry len = %d", h.registry.Len())
	}

	h.registry.Dispatch(interaction.Event{Kind: interaction.EventClick, Element: id, Button: interaction.MouseLeft})
	if !clicked {
		t.Fatal("click handler not invoked")
	}
}

func TestInteractiveDisabledRegistersNothing(t *testing.T) {
	h := newHarness()
	button := NewInteractive(interaction.StableID("button"), NewBox(geometry.Size{Width: 60, Height: 20}, paint.RGB(1, 1, 1))).
		Enabled(false)

	h.run(t, NewColumn(button), geometry.Size{Width: 200, Height: 200})

	if len(h.hitTest.Entries()) != 0 || h.registry.Len() != 0 {
		t.Fatal("disabled element must not register")
	}
	if h.draw.Len() != 1 {
		t.Fatal("disabled element still paints its child")
	}
}

func TestInteractiveOverlayPriority(t *testing.T) {
	hover := paint.RGBA(1, 0, 0, 0.1)
	press := paint.RGBA(0, 1, 0, 0.1)
	focus := paint.RGBA(0, 0, 1, 0.1)

	e := NewInteractive(interaction.StableID("x"), NewBox(geometry.Size{Width: 10, Height: 10}, paint.White)).
		HoverColor(hover).
		PressColor(press).
		FocusColor(focus)

	cases := []struct {
		state interaction.State
		want  paint.Color
		any   bool
	}{
		{interaction.State{}, paint.Color{}, false},
		{interaction.State{Hovered: true}, hover, true},
		{interaction.State{Hovered: true, Focused: true}, focus, true},
		{interaction.State{Hovered: true, Focused: true, Pressed: true}, press, true},
	}
	for _, c := range cases {
		got, ok := e.overlayColor(c.state)
		if ok != c.any || got != c.want {
			t.Errorf("state %+v: overlay = %v %v, want %v %v", c.state, got, ok, c.want, c.any)
		}
	}
}

func TestInteractiveStateOverlayPaints(t *testing.T) {
	h := newHarness()
	id := interaction.StableID("hoverable")
	e := NewInteractive(id, NewBox(geometry.Size{Width: 10, Height: 10}, paint.White)).
		HoverColor(paint.RGBA(1, 1, 1, 0.2))

	// Hover arrives through dispatch before the next paint.
	h.registry.Dispatch(interaction.Event{Kind: interaction.EventMouseEnter, Element: id})

	h.run(t, NewColumn(e), geometry.Size{Width: 100, Height: 100})

	// Child rect plus overlay rect.
	if h.draw.Len() != 2 {
		t.Fatalf("commands = %d, want child and overlay", h.draw.Len())
	}
}

func TestRegisterDropZoneTranslatesBounds(t *testing.T) {
	h := newHarness()
	pctx := NewPaintContext(h.draw, h.hitTest, h.registry, h.zones, h.solver)
	child := pctx.Child(geometry.Offset{X: 100, Y: 50})

	child.RegisterDropZone(dragdrop.Zone{
		Element: interaction.StableID("zone"),
		Bounds:  geometry.RectFromLTWH(10, 10, 20, 20),
	})

	zones := h.zones.Zones()
	if len(zones) != 1 {
		t.Fatalf("zones = %d", len(zones))
	}
	if zones[0].Bounds.Left != 110 || zones[0].Bounds.Top != 60 {
		t.Fatalf("bounds = %+v, want translated to (110, 60)", zones[0].Bounds)
	}
}

func TestPushZNestsThroughContext(t *testing.T) {
	h := newHarness()
	pctx := NewPaintContext(h.draw, h.hitTest, h.registry, h.zones, h.solver)

	pctx.RegisterHitTest(interaction.NewElementID(1), geometry.RectFromLTWH(0, 0, 10, 10), 0)
	pctx.PushZ(100)
	pctx.RegisterHitTest(interaction.NewElementID(2), geometry.RectFromLTWH(0, 0, 10, 10), 0)
	pctx.PopZ(100)

	entries := h.hitTest.Entries()
	if entries[0].Z != 0 || entries[1].Z != 100 {
		t.Fatalf("z = %d, %d", entries[0].Z, entries[1].Z)
	}
}
