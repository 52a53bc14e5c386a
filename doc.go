// Package aureon provides stateless helpers for building 2D overlays on top
// of an immediate-mode renderer: a small vector algebra, a library of pure
// alignment functions that compute anchor positions for objects on a canvas,
// color interpolation utilities, draw helpers that emit batched primitives
// into a DrawList, and a scale-aware Surface that keeps authoring-time
// geometry consistent as the rendering viewport resizes.
//
// The coordinate system is screen-space: origin at the top-left, Y grows
// downward. All alignment functions return the upper-left corner of the
// object being placed.
//
// Surfaces are designed against a fixed reference resolution (4K by default)
// and derive their on-screen geometry by scaling designed geometry with the
// ratio of the current viewport to that reference. Rendering goes through a
// RegionHost so the begin/end bracket around a surface's drawing is paired on
// every exit path.
package aureon
