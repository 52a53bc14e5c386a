// Example demonstrates two surfaces: a toolbar pinned at its designed
// geometry and a resizable main panel that rescales with the window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, builds two surfaces against a 3840x2160
// reference resolution, and renders them each frame. Resize the window to see
// the main panel rescale while the toolbar stays put.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spatialsurgical/aureon"
	"github.com/spatialsurgical/aureon/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "aureon example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	style := aureon.DefaultStyle()
	if path := os.Getenv("AUREON_STYLE"); path != "" {
		loaded, err := aureon.LoadStyle(path)
		if err != nil {
			return fmt.Errorf("load style: %w", err)
		}
		style = loaded
	}

	host, err := opengl.NewHost(windowTitle, windowWidth, windowHeight,
		opengl.WithClearColor(style.BackgroundColor))
	if err != nil {
		return fmt.Errorf("open host: %w", err)
	}
	defer host.Close()

	font := host.Font()

	// Toolbar pinned along the left edge at designed size.
	toolbar := aureon.NewSurface("toolbar",
		aureon.Vec2{X: style.ToolbarWidth, Y: float32(windowHeight)},
		aureon.Vec2{},
		aureon.WithBackground(style.HighlightColor),
		aureon.WithContent(aureon.ContentDrawerFunc(func(dl *aureon.DrawList, s *aureon.Surface) error {
			at := aureon.InnerTopLeft(s.Position(), style.GraphicsGap)
			aureon.DrawText(dl, font, 16, at, style.FontColor, 1, "tools")
			return nil
		})),
	)

	// Main panel scales with the viewport.
	panel := aureon.NewSurface("main",
		aureon.Vec2{X: 3000, Y: 1800},
		aureon.Vec2{X: 600, Y: 180},
		aureon.WithResizable(),
		aureon.WithRounding(style.WindowRounding),
		aureon.WithContent(aureon.ContentDrawerFunc(func(dl *aureon.DrawList, s *aureon.Surface) error {
			title := "main panel"
			object := font.MeasureText(title, 24*s.ScaleAvg())
			at := aureon.AlignCenter(s.Position(), s.Width(), 32*s.Scale().Y, 1, object)
			pulse := aureon.Pulse(s.Elapsed(), style.ActiveColor, style.HighlightColor, 2)
			aureon.DrawTextWithRoundedHighlight(dl, font, 24*s.ScaleAvg(), at,
				style.HighlightWidth*s.ScaleAvg(), style.FontColor, pulse, 1, 0.8,
				style.WindowRounding*s.ScaleAvg()/4, title)

			// An empty 3x3 grid under the title.
			gridOrigin := s.Position().Add(aureon.Vec2{
				X: style.GraphicsGap * s.Scale().X,
				Y: 100 * s.Scale().Y,
			})
			aureon.DrawGrid(dl, gridOrigin, 3, 3,
				160*s.Scale().X, 160*s.Scale().Y,
				style.StrokeWidth*s.ScaleAvg(), style.StrokeColor)
			return nil
		})),
	)

	for !host.ShouldClose() {
		frame := host.BeginFrame()

		if err := toolbar.Render(host.Regions(), frame); err != nil {
			return fmt.Errorf("toolbar: %w", err)
		}
		if err := panel.Render(host.Regions(), frame); err != nil {
			return fmt.Errorf("main: %w", err)
		}

		if err := host.EndFrame(); err != nil {
			return err
		}
	}

	return nil
}
