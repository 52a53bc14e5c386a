package aureon

import (
	"log/slog"
	"os"
)

// logLevel gates package diagnostics; raise to slog.LevelDebug to trace
// surface rescaling.
var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogLevel adjusts the package log level.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// Frame carries the per-pass inputs a surface needs: the host viewport's
// current pixel dimensions (polled once per render pass) and the elapsed
// time in seconds, passed explicitly so time-based effects stay testable.
type Frame struct {
	Viewport Vec2
	Elapsed  float32
}

// ContentDrawer is the capability a concrete surface implements: it draws
// the surface's content into the open region's canvas. It is invoked after
// the region is opened and before it closes.
type ContentDrawer interface {
	DrawContent(dl *DrawList, s *Surface) error
}

// ContentDrawerFunc adapts a function to the ContentDrawer interface.
type ContentDrawerFunc func(dl *DrawList, s *Surface) error

// DrawContent calls f.
func (f ContentDrawerFunc) DrawContent(dl *DrawList, s *Surface) error {
	return f(dl, s)
}

// Surface is one rendering panel with scale-aware geometry. Designed size
// and position are authored against a fixed reference resolution and never
// change; the instantaneous size and position consumed by drawing are the
// designed values multiplied by the current per-axis scale.
//
// A surface is not safe for concurrent use; each instance is owned by the
// render loop that created it.
type Surface struct {
	title string

	// Authoring-time constants.
	designedSize Vec2
	designedPos  Vec2

	// Reference resolution the designed geometry targets.
	referenceSize Vec2

	// Cached viewport from the most recent scale recomputation. Scale is
	// recomputed only when the observed viewport differs on an axis, so
	// callers may rely on Scale being stable across unchanged frames.
	lastViewport Vec2

	scale    Vec2
	scaleAvg float32

	// Derived instantaneous geometry.
	size Vec2
	pos  Vec2

	hasBackground bool
	background    uint32
	rounding      float32

	// When false the surface is pinned at designed size and the scale
	// transition never fires.
	resizable bool

	content ContentDrawer
	elapsed float32

	scaleUpdates int // instrumentation for the memoization contract
}

// SurfaceOption configures a Surface at construction.
type SurfaceOption func(*Surface)

// WithBackground sets the background fill color.
func WithBackground(color uint32) SurfaceOption {
	return func(s *Surface) { s.background = color }
}

// WithoutBackground disables the background fill.
func WithoutBackground() SurfaceOption {
	return func(s *Surface) { s.hasBackground = false }
}

// WithRounding sets the corner radius of the background fill.
func WithRounding(radius float32) SurfaceOption {
	return func(s *Surface) { s.rounding = radius }
}

// WithResizable lets the surface rescale with the viewport. Without it the
// surface stays pinned at its designed geometry.
func WithResizable() SurfaceOption {
	return func(s *Surface) { s.resizable = true }
}

// WithReferenceSize overrides the reference resolution.
func WithReferenceSize(size Vec2) SurfaceOption {
	return func(s *Surface) {
		s.referenceSize = size
		s.lastViewport = size
	}
}

// WithContent sets the surface's content drawer.
func WithContent(d ContentDrawer) SurfaceOption {
	return func(s *Surface) { s.content = d }
}

// NewSurface creates a surface with fixed designed geometry. The surface
// starts unscaled: scale 1 on both axes, instantaneous geometry equal to the
// designed geometry.
func NewSurface(title string, designedSize, designedPos Vec2, opts ...SurfaceOption) *Surface {
	style := DefaultStyle()
	s := &Surface{
		title:         title,
		designedSize:  designedSize,
		designedPos:   designedPos,
		referenceSize: style.ReferenceSize,
		lastViewport:  style.ReferenceSize,
		scale:         Vec2{X: 1, Y: 1},
		scaleAvg:      1,
		size:          designedSize,
		pos:           designedPos,
		hasBackground: true, // Visible by default for contrast
		background:    style.BackgroundColor,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Title returns the surface title.
func (s *Surface) Title() string { return s.title }

// Size returns the instantaneous dimensions as they appear on the viewport.
func (s *Surface) Size() Vec2 { return s.size }

// Position returns the instantaneous position.
func (s *Surface) Position() Vec2 { return s.pos }

// Width returns the instantaneous width.
func (s *Surface) Width() float32 { return s.size.X }

// Height returns the instantaneous height.
func (s *Surface) Height() float32 { return s.size.Y }

// Scale returns the per-axis scale factors.
func (s *Surface) Scale() Vec2 { return s.scale }

// ScaleAvg returns the arithmetic mean of the X and Y scales. Used for
// quantities without a natural axis, like font sizes and stroke widths.
func (s *Surface) ScaleAvg() float32 { return s.scaleAvg }

// BackgroundColor returns the current background fill color.
func (s *Surface) BackgroundColor() uint32 { return s.background }

// SetBackgroundColor sets the background fill color.
func (s *Surface) SetBackgroundColor(color uint32) { s.background = color }

// SetBackgroundVisible toggles the background fill.
func (s *Surface) SetBackgroundVisible(visible bool) { s.hasBackground = visible }

// SetContent replaces the surface's content drawer.
func (s *Surface) SetContent(d ContentDrawer) { s.content = d }

// Elapsed returns the elapsed time of the current render pass, for
// time-based effects like Pulse.
func (s *Surface) Elapsed() float32 { return s.elapsed }

// observeViewport recomputes scale and derived geometry when the viewport
// changed since the last observation. The axes update independently, so
// width and height can pick up changes on different frames.
func (s *Surface) observeViewport(viewport Vec2) {
	altered := false

	if viewport.X != s.lastViewport.X {
		s.scale.X = viewport.X / s.referenceSize.X
		s.lastViewport.X = viewport.X
		altered = true
	}

	if viewport.Y != s.lastViewport.Y {
		s.scale.Y = viewport.Y / s.referenceSize.Y
		s.lastViewport.Y = viewport.Y
		altered = true
	}

	if altered {
		s.scaleAvg = (s.scale.X + s.scale.Y) * 0.5
		s.size = Vec2{X: s.designedSize.X * s.scale.X, Y: s.designedSize.Y * s.scale.Y}
		s.pos = Vec2{X: s.designedPos.X * s.scale.X, Y: s.designedPos.Y * s.scale.Y}
		s.scaleUpdates++

		logger.Debug("surface rescaled",
			"title", s.title,
			"scaleX", s.scale.X,
			"scaleY", s.scale.Y,
		)
	}
}

// Render performs one render pass: update scale from the frame's viewport
// (resizable surfaces only), open a region at the instantaneous geometry,
// draw content, close the region. The region close is deferred so it pairs
// with the open even when the content drawer fails or panics — an unclosed
// region corrupts the host's rendering stack for every surface after it.
func (s *Surface) Render(host RegionHost, frame Frame) error {
	s.elapsed = frame.Elapsed

	if s.resizable {
		s.observeViewport(frame.Viewport)
	}

	region := host.BeginRegion(s.title, s.pos, s.size, RegionOptions{
		Background:     s.background,
		DrawBackground: s.hasBackground,
		Rounding:       s.rounding,
	})
	defer region.End()

	if s.content == nil {
		return nil
	}
	return s.content.DrawContent(region.Canvas(), s)
}
