// Package engine ties the stores, registries and input systems into a
// frame loop.
//
// A frame runs Begin, build (layout and paint through the element
// protocol), BuildHitTest, any number of HandleInput calls, then End.
// Begin installs the process-wide contexts so element code can reach
// the entity store, the handler registry and the task runner without
// threading them through every call; End tears them down and reports
// whether a rebuild is owed.
package engine

import (
	"github.com/go-helio/helio/pkg/dragdrop"
	"github.com/go-helio/helio/pkg/element"
	"github.com/go-helio/helio/pkg/entity"
	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/interaction"
	"github.com/go-helio/helio/pkg/layouts"
	"github.com/go-helio/helio/pkg/paint"
	"github.com/go-helio/helio/pkg/task"
	"github.com/go-helio/helio/pkg/text"
	"github.com/go-helio/helio/pkg/theme"
)

// Frame owns the state that lives across frames and rebuilds the rest
// every frame.
type Frame struct {
	store    *entity.Store
	system   *interaction.System
	registry *interaction.Registry
	zones    *dragdrop.ZoneRegistry
	drag     *dragdrop.Controller
	runner   *task.Runner
	solver   layouts.Solver
	measurer text.Measurer

	draw    *paint.DrawList
	hitTest *interaction.HitTestBuilder
	theme   theme.Theme

	viewport geometry.Size
	inFrame  bool
}

// Option configures a Frame.
type Option func(*Frame)

// WithSolver replaces the default stacking solver.
func WithSolver(solver layouts.Solver) Option {
	return func(f *Frame) { f.solver = solver }
}

// WithMeasurer replaces the default text measurer.
func WithMeasurer(m text.Measurer) Option {
	return func(f *Frame) { f.measurer = m }
}

// WithTheme sets the initial theme.
func WithTheme(t theme.Theme) Option {
	return func(f *Frame) { f.theme = t }
}

// New returns a frame loop with fresh state.
func New(opts ...Option) *Frame {
	zones := dragdrop.NewZoneRegistry()
	f := &Frame{
		store:    entity.NewStore(),
		system:   interaction.NewSystem(),
		registry: interaction.NewRegistry(),
		zones:    zones,
		drag:     dragdrop.NewController(zones),
		runner:   task.NewRunner(),
		solver:   layouts.NewStackSolver(),
		measurer: text.Default(),
		draw:     paint.NewDrawList(),
		hitTest:  interaction.NewHitTestBuilder(0, 0),
		theme:    theme.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Store returns the entity store.
func (f *Frame) Store() *entity.Store { return f.store }

// System returns the interaction system.
func (f *Frame) System() *interaction.System { return f.system }

// Registry returns the per-frame handler registry.
func (f *Frame) Registry() *interaction.Registry { return f.registry }

// Zones returns the per-frame drop zone registry.
func (f *Frame) Zones() *dragdrop.ZoneRegistry { return f.zones }

// Drag returns the drag controller.
func (f *Frame) Drag() *dragdrop.Controller { return f.drag }

// Runner returns the background task runner.
func (f *Frame) Runner() *task.Runner { return f.runner }

// Draw returns the frame's draw list.
func (f *Frame) Draw() *paint.DrawList { return f.draw }

// Theme returns the active theme.
func (f *Frame) Theme() theme.Theme { return f.theme }

// SetTheme swaps the active theme. Call between frames.
func (f *Frame) SetTheme(t theme.Theme) { f.theme = t }

// SetViewport sets the window size for layout and culling.
func (f *Frame) SetViewport(size geometry.Size) {
	f.viewport = size
}

// Begin opens a frame: contexts installed, per-frame registries
// cleared, pending task completions delivered. Panics when a frame is
// already open.
func (f *Frame) Begin() {
	if f.inFrame {
		panic("engine: Begin called inside an open frame")
	}
	f.inFrame = true

	entity.SetCurrent(f.store)
	interaction.SetCurrentRegistry(f.registry)
	task.SetCurrent(f.runner)

	f.registry.ClearHandlers()
	f.zones.Clear()
	f.hitTest.Clear()
	f.solver.Clear()
	f.draw.Clear()
	f.draw.SetViewport(geometry.RectFromLTWH(0, 0, f.viewport.Width, f.viewport.Height))

	// Completions may mutate observed entities; the tracker catches
	// that and End reports the owed rebuild.
	f.runner.Poll()
}

// Build lays out and paints root within the viewport, filling the draw
// list, hit-test builder and registries. Panics outside a frame.
func (f *Frame) Build(root element.Element) error {
	if !f.inFrame {
		panic("engine: Build called outside a frame")
	}

	lctx := element.NewLayoutContext(f.solver, f.measurer)
	node := root.Layout(lctx)
	if err := f.solver.Compute(node, f.viewport); err != nil {
		return err
	}

	pctx := element.NewPaintContext(f.draw, f.hitTest, f.registry, f.zones, f.solver)
	root.Paint(f.solver.Bounds(node), pctx)
	return nil
}

// BuildHitTest freezes the frame's hit-test entries into the
// interaction system and returns the hover events the swap produced.
func (f *Frame) BuildHitTest() []interaction.Event {
	events := f.system.UpdateHitTest(f.hitTest.Build())
	f.registry.DispatchAll(events)
	return events
}

// HandleInput routes one raw input event through the interaction
// system, the drag controller and the handler registry.
func (f *Frame) HandleInput(ev interaction.InputEvent) []interaction.Event {
	switch ev.Kind {
	case interaction.InputMouseMove:
		f.drag.Move(ev.Position)
	case interaction.InputMouseUp:
		if ev.Button == interaction.MouseLeft {
			f.drag.Drop(ev.Position)
		}
	case interaction.InputMouseLeave:
		f.drag.Cancel()
	case interaction.InputKeyDown:
		if ev.Key == interaction.KeyEscape && f.drag.Dragging() {
			f.drag.Cancel()
			return nil
		}
	}

	events := f.system.HandleInput(ev)
	f.registry.DispatchAll(events)
	return events
}

// End closes the frame: notifications flush, zero-ref entities free,
// contexts tear down. Returns true when observed state changed and
// another frame should be scheduled.
func (f *Frame) End() bool {
	if !f.inFrame {
		panic("engine: End called outside a frame")
	}
	f.inFrame = false

	// Read the invalidation flag before Cleanup flushes and clears it.
	invalidated := f.store.InvalidationRequested()
	needsRender := f.store.Cleanup()

	task.ClearCurrent()
	interaction.ClearCurrentRegistry()
	entity.ClearCurrent()

	return needsRender || invalidated
}
