package paint

import "github.com/go-helio/helio/pkg/geometry"

// TextStyle holds the paint-level text attributes.
type TextStyle struct {
	Size  float32
	Color Color
}

// DefaultTextStyle returns a 16px white text style.
func DefaultTextStyle() TextStyle {
	return TextStyle{Size: 16, Color: White}
}

// CornerRadii holds per-corner rounding for a frame.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// UniformRadii returns the same radius for every corner.
func UniformRadii(r float32) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// FrameStyle describes a filled, optionally bordered, rounded rectangle.
type FrameStyle struct {
	Fill        Color
	BorderColor Color
	BorderWidth float32
	Radii       CornerRadii
}

// CommandKind discriminates DrawList commands.
type CommandKind int

const (
	CommandRect CommandKind = iota
	CommandFrame
	CommandText
	CommandPushClip
	CommandPopClip
)

// Command is one backend-agnostic draw operation. Only the fields
// relevant to its Kind are meaningful.
type Command struct {
	Kind CommandKind

	Rect  geometry.Rect
	Color Color

	Frame FrameStyle

	Position geometry.Offset
	Text     string
	Style    TextStyle
}

// CullingStats counts how many commands survived viewport culling.
type CullingStats struct {
	Rendered int
	Culled   int
}

// DrawList accumulates draw commands for one frame.
//
// Commands whose bounds fall entirely outside the viewport or the
// current clip rect are dropped at record time.
type DrawList struct {
	commands    []Command
	clipStack   []geometry.Rect
	viewport    geometry.Rect
	hasViewport bool
	stats       CullingStats
}

// NewDrawList returns an empty list with no viewport set.
func NewDrawList() *DrawList {
	return &DrawList{}
}

// SetViewport sets the culling viewport. A zero rect disables culling.
func (d *DrawList) SetViewport(viewport geometry.Rect) {
	d.viewport = viewport
	d.hasViewport = !viewport.IsEmpty()
}

// Viewport returns the culling viewport and whether one is set.
func (d *DrawList) Viewport() (geometry.Rect, bool) {
	return d.viewport, d.hasViewport
}

// Clear drops all commands and resets clip state and stats.
func (d *DrawList) Clear() {
	d.commands = d.commands[:0]
	d.clipStack = d.clipStack[:0]
	d.stats = CullingStats{}
}

// Commands returns the recorded commands in draw order.
func (d *DrawList) Commands() []Command {
	return d.commands
}

// Len returns the number of recorded commands.
func (d *DrawList) Len() int {
	return len(d.commands)
}

// Stats returns the culling counters for the frame so far.
func (d *DrawList) Stats() CullingStats {
	return d.stats
}

// IsVisible reports whether a rect survives the viewport and the
// current clip rect.
func (d *DrawList) IsVisible(r geometry.Rect) bool {
	if d.hasViewport && !d.viewport.Intersects(r) {
		return false
	}
	if n := len(d.clipStack); n > 0 && !d.clipStack[n-1].Intersects(r) {
		return false
	}
	return true
}

// AddRect records a filled rectangle. Fully transparent or fully
// culled rects are dropped.
func (d *DrawList) AddRect(r geometry.Rect, color Color) {
	if color.IsTransparent() {
		return
	}
	if !d.IsVisible(r) {
		d.stats.Culled++
		return
	}
	d.stats.Rendered++
	d.commands = append(d.commands, Command{Kind: CommandRect, Rect: r, Color: color})
}

// AddFrame records a styled frame.
func (d *DrawList) AddFrame(r geometry.Rect, style FrameStyle) {
	if !d.IsVisible(r) {
		d.stats.Culled++
		return
	}
	d.stats.Rendered++
	d.commands = append(d.commands, Command{Kind: CommandFrame, Rect: r, Frame: style})
}

// AddText records a text run anchored at position. The culling bounds
// are an estimate; precise measurement belongs to the text package.
func (d *DrawList) AddText(position geometry.Offset, text string, style TextStyle) {
	if text == "" {
		return
	}
	approx := geometry.RectFromLTWH(
		position.X, position.Y,
		float32(len(text))*style.Size*0.6, style.Size*1.2,
	)
	if !d.IsVisible(approx) {
		d.stats.Culled++
		return
	}
	d.stats.Rendered++
	d.commands = append(d.commands, Command{
		Kind: CommandText, Position: position, Text: text, Style: style,
	})
}

// PushClip pushes a clip rect, intersected with the current one.
func (d *DrawList) PushClip(r geometry.Rect) {
	clip := r
	if n := len(d.clipStack); n > 0 {
		clip = d.clipStack[n-1].Intersect(r)
	}
	d.clipStack = append(d.clipStack, clip)
	d.commands = append(d.commands, Command{Kind: CommandPushClip, Rect: clip})
}

// PopClip pops the current clip rect. No-op when the stack is empty.
func (d *DrawList) PopClip() {
	if len(d.clipStack) == 0 {
		return
	}
	d.clipStack = d.clipStack[:len(d.clipStack)-1]
	d.commands = append(d.commands, Command{Kind: CommandPopClip})
}

// CurrentClip returns the active clip rect, if any.
func (d *DrawList) CurrentClip() (geometry.Rect, bool) {
	if n := len(d.clipStack); n > 0 {
		return d.clipStack[n-1], true
	}
	return geometry.Rect{}, false
}

// InsertPos marks a position in the command stream for later insertion.
// Containers use it to paint a background behind content whose extent
// is only known after the content has been recorded.
func (d *DrawList) InsertPos() int {
	return len(d.commands)
}

// InsertRectAt inserts a filled rectangle at a previously recorded
// position, shifting later commands.
func (d *DrawList) InsertRectAt(pos int, r geometry.Rect, color Color) {
	if color.IsTransparent() || !d.IsVisible(r) {
		return
	}
	if pos < 0 || pos > len(d.commands) {
		return
	}
	cmd := Command{Kind: CommandRect, Rect: r, Color: color}
	d.commands = append(d.commands, Command{})
	copy(d.commands[pos+1:], d.commands[pos:])
	d.commands[pos] = cmd
	d.stats.Rendered++
}
