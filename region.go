package aureon

// Region is an open rendering scope for a single surface. Every Region must
// be closed exactly once; Surface.Render defers End so the bracket holds on
// all exit paths, including a panicking content drawer.
type Region interface {
	// Canvas returns the draw list primitives are emitted into while the
	// region is open.
	Canvas() *DrawList

	// End closes the region. Calling End more than once is undefined.
	End()
}

// RegionOptions carries the presentation state a region is opened with.
type RegionOptions struct {
	Background     uint32  // Background fill color
	DrawBackground bool    // Whether to fill the background at all
	Rounding       float32 // Corner radius of the background fill
}

// RegionHost opens rendering regions. Implementations must tolerate
// interleaved surfaces: regions are opened and closed in strict LIFO order
// within a frame.
type RegionHost interface {
	BeginRegion(title string, position, size Vec2, opts RegionOptions) Region
}

// ListHost is the standard RegionHost: regions map onto a DrawList as a
// background fill plus a clip-rectangle push, and closing the region pops
// the clip rectangle. It needs no GPU, which keeps surfaces testable.
type ListHost struct {
	list *DrawList
}

// NewListHost creates a host writing into the given draw list.
func NewListHost(dl *DrawList) *ListHost {
	return &ListHost{list: dl}
}

// List returns the underlying draw list.
func (h *ListHost) List() *DrawList {
	return h.list
}

// BeginRegion opens a region at the given position and size.
func (h *ListHost) BeginRegion(title string, position, size Vec2, opts RegionOptions) Region {
	if opts.DrawBackground {
		if opts.Rounding > 0 {
			h.list.AddRectRounded(position.X, position.Y, size.X, size.Y, opts.Background, opts.Rounding)
		} else {
			h.list.AddRect(position.X, position.Y, size.X, size.Y, opts.Background)
		}
	}
	h.list.PushClipRect(position.X, position.Y, position.X+size.X, position.Y+size.Y)
	return &listRegion{list: h.list}
}

type listRegion struct {
	list *DrawList
}

func (r *listRegion) Canvas() *DrawList {
	return r.list
}

func (r *listRegion) End() {
	r.list.PopClipRect()
}
