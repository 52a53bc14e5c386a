package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spatialsurgical/aureon"
)

// Host owns a GLFW window, an OpenGL renderer, and the per-frame draw list
// surfaces render into. It is the viewport authority: surfaces read the
// framebuffer size from the Frame the host hands out each pass.
//
// GLFW requires the main thread; callers must runtime.LockOSThread before
// NewHost and drive the frame loop from that same goroutine.
type Host struct {
	window   *glfw.Window
	renderer *Renderer
	list     *aureon.DrawList
	regions  *aureon.ListHost

	clearColor [4]float32
}

// HostOption configures a Host at construction.
type HostOption func(*Host)

// WithClearColor sets the color the framebuffer is cleared to each frame.
func WithClearColor(color uint32) HostOption {
	return func(h *Host) {
		r, g, b, a := aureon.UnpackRGBA(color)
		h.clearColor = [4]float32{
			float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255,
		}
	}
}

// NewHost initializes GLFW and OpenGL and opens a window.
func NewHost(title string, width, height int, opts ...HostOption) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	renderer, err := NewRenderer(width, height)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	list := aureon.AcquireDrawList()

	h := &Host{
		window:     window,
		renderer:   renderer,
		list:       list,
		regions:    aureon.NewListHost(list),
		clearColor: [4]float32{0.12, 0.12, 0.14, 1.0},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// Renderer returns the host's renderer, for texture loading.
func (h *Host) Renderer() *Renderer {
	return h.renderer
}

// Font returns the metrics of the built-in font atlas.
func (h *Host) Font() aureon.Font {
	return h.renderer.Font()
}

// Regions returns the RegionHost surfaces render through.
func (h *Host) Regions() *aureon.ListHost {
	return h.regions
}

// ViewportSize returns the current framebuffer dimensions in pixels.
func (h *Host) ViewportSize() aureon.Vec2 {
	w, fh := h.window.GetFramebufferSize()
	return aureon.Vec2{X: float32(w), Y: float32(fh)}
}

// ShouldClose reports whether the window has been asked to close.
func (h *Host) ShouldClose() bool {
	return h.window.ShouldClose()
}

// BeginFrame polls events, clears the framebuffer, and resets the draw list.
// It returns the Frame surfaces render against this pass.
func (h *Host) BeginFrame() aureon.Frame {
	glfw.PollEvents()

	vp := h.ViewportSize()
	h.renderer.Resize(int(vp.X), int(vp.Y))

	gl.Viewport(0, 0, int32(vp.X), int32(vp.Y))
	gl.ClearColor(h.clearColor[0], h.clearColor[1], h.clearColor[2], h.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	h.list.Clear()
	h.list.PushClipRect(0, 0, vp.X, vp.Y)

	return aureon.Frame{
		Viewport: vp,
		Elapsed:  float32(glfw.GetTime()),
	}
}

// EndFrame renders the accumulated draw list and swaps buffers.
func (h *Host) EndFrame() error {
	h.list.PopClipRect()

	if err := h.renderer.Render(h.list); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	h.window.SwapBuffers()
	return nil
}

// Close releases the renderer and terminates GLFW.
func (h *Host) Close() {
	aureon.ReleaseDrawList(h.list)
	h.renderer.Delete()
	glfw.Terminate()
}
