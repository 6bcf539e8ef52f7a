// Command heliodemo runs a headless frame loop over a small UI and
// prints what each frame produced. It exists to exercise the module
// end to end without a rendering backend: entity state, layout,
// painting, hit-testing, focus and background tasks all run exactly
// as they would under a real window.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-helio/helio/pkg/element"
	"github.com/go-helio/helio/pkg/engine"
	"github.com/go-helio/helio/pkg/entity"
	"github.com/go-helio/helio/pkg/geometry"
	"github.com/go-helio/helio/pkg/interaction"
	"github.com/go-helio/helio/pkg/paint"
	"github.com/go-helio/helio/pkg/task"
	"github.com/go-helio/helio/pkg/theme"
)

type counter struct {
	clicks int
	status string
}

func main() {
	themePath := flag.String("theme", "", "path to a YAML theme file")
	frames := flag.Int("frames", 8, "number of frames to run")
	flag.Parse()

	f := engine.New()
	f.SetViewport(geometry.Size{Width: 640, Height: 480})

	if *themePath != "" {
		t, err := theme.LoadFile(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "heliodemo: %v\n", err)
			os.Exit(1)
		}
		f.SetTheme(t)

		stop, err := theme.Watch(*themePath, f.Runner(), func(t theme.Theme, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "heliodemo: theme reload: %v\n", err)
				return
			}
			f.SetTheme(t)
			fmt.Println("theme reloaded")
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "heliodemo: %v\n", err)
			os.Exit(1)
		}
		defer stop()
	}

	var state entity.Handle[counter]
	buttonID := interaction.StableID("demo-button")

	// Scripted pointer input, one event per frame.
	script := []interaction.InputEvent{
		interaction.MouseMoveEvent(geometry.Offset{X: 60, Y: 30}),
		interaction.MouseDownEvent(geometry.Offset{X: 60, Y: 30}, interaction.MouseLeft),
		interaction.MouseUpEvent(geometry.Offset{X: 60, Y: 30}, interaction.MouseLeft),
		interaction.KeyDownEvent(interaction.KeyTab, interaction.Modifiers{}),
	}

	for i := 0; i < *frames; i++ {
		f.Begin()

		if i == 0 {
			state = entity.New(counter{status: "idle"})
			task.Spawn(func() string {
				time.Sleep(10 * time.Millisecond)
				return "ready"
			}, func(s string) {
				entity.Update(state, func(c *counter) int {
					c.status = s
					return 0
				})
			})
		}

		root := buildUI(f, state, buttonID)
		if err := f.Build(root); err != nil {
			fmt.Fprintf(os.Stderr, "heliodemo: layout: %v\n", err)
			os.Exit(1)
		}
		f.BuildHitTest()

		if i < len(script) {
			f.HandleInput(script[i])
		}

		again := f.End()
		stats := f.Draw().Stats()
		fmt.Printf("frame %d: commands=%d culled=%d rebuild=%v\n",
			i, f.Draw().Len(), stats.Culled, again)

		if !again && i >= len(script) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func buildUI(f *engine.Frame, state entity.Handle[counter], buttonID interaction.ElementID) element.Element {
	clicks, _ := entity.Observe(state, func(c *counter) int { return c.clicks })
	status, _ := entity.Observe(state, func(c *counter) string { return c.status })

	t := f.Theme()
	button := element.NewInteractive(buttonID,
		element.NewBox(geometry.Size{Width: 120, Height: 40}, paint.RGB(0.25, 0.25, 0.3))).
		Focusable().
		HoverColor(t.Hover).
		PressColor(t.Press).
		FocusColor(t.Focus).
		OnClick(func(interaction.MouseButton, geometry.Offset, geometry.Offset) {
			entity.Update(state, func(c *counter) int {
				c.clicks++
				return c.clicks
			})
		})

	label := element.NewLabel(
		fmt.Sprintf("clicks: %d  status: %s", clicks, status),
		paint.TextStyle{Size: 13, Color: paint.White},
	)

	return element.NewColumn(button, label)
}
