package aureon

// Alignment helpers for placing objects on a canvas. Every function is pure:
// it takes fully resolved geometry (already scaled, same coordinate frame)
// and returns the upper-left anchor at which to place the object.
//
// "Target" is the rectangle being aligned against, given by its upper-left
// origin and its dimensions. "Object" is the rectangle being placed.

// AlignRight right-aligns an object on a numbered line of a document, flush
// with the document's right edge.
func AlignRight(origin Vec2, documentWidth, lineHeight float32, line int, object Vec2) Vec2 {
	return origin.Add(Vec2{X: documentWidth, Y: float32(line) * lineHeight}).Sub(object)
}

// AlignLeft left-aligns an object on a numbered line of a document.
//
// Unlike AlignCenter and AlignRight, the vertical offset is subtracted from
// the origin: lines grow upward from a bottom anchor, so callers pass an
// origin at the bottom of the document. The asymmetry is part of the
// contract; see the tests pinning it.
func AlignLeft(origin Vec2, lineHeight float32, line int, object Vec2) Vec2 {
	return origin.Sub(Vec2{Y: lineHeight * float32(line)}).Sub(Vec2{Y: object.Y})
}

// AlignCenter horizontally centers an object on a numbered line of a document.
func AlignCenter(origin Vec2, documentWidth, lineHeight float32, line int, object Vec2) Vec2 {
	return Vec2{
		X: origin.X + (documentWidth-object.X)/2,
		Y: origin.Y + float32(line)*lineHeight,
	}
}

// Center2D centers an object two-dimensionally over a target.
// The centered object's center coincides with the target's center.
func Center2D(origin, target, object Vec2) Vec2 {
	return origin.Add(Vec2{
		X: (target.X - object.X) / 2,
		Y: (target.Y - object.Y) / 2,
	})
}

// TopAlignRight places an object outside the target's right edge, flush with
// the target's top edge, separated horizontally by distance.
func TopAlignRight(origin, target Vec2, distance float32) Vec2 {
	return Vec2{X: origin.X + target.X + distance, Y: origin.Y}
}

// BottomAlignRight places an object outside the target's right edge, flush
// with the target's bottom edge, separated horizontally by distance.
func BottomAlignRight(origin, target, object Vec2, distance float32) Vec2 {
	return Vec2{
		X: origin.X + target.X + distance,
		Y: origin.Y + target.Y - object.Y,
	}
}

// CenterRight places an object outside the target's right edge, centered on
// the target's vertical extent, separated horizontally by distance.
func CenterRight(origin, target, object Vec2, distance float32) Vec2 {
	return Vec2{
		X: origin.X + target.X + distance,
		Y: origin.Y + (target.Y-object.Y)/2,
	}
}

// CenterLeft places an object outside the target's left edge, centered on
// the target's vertical extent, separated horizontally by distance.
func CenterLeft(origin, target, object Vec2, distance float32) Vec2 {
	return Vec2{
		X: origin.X - distance - object.X,
		Y: origin.Y + (target.Y-object.Y)/2,
	}
}

// CenterAbove places an object above the target, centered on the target's
// horizontal extent, separated vertically by distance.
func CenterAbove(origin, target, object Vec2, distance float32) Vec2 {
	center := Center2D(origin, target, object)
	return center.Sub(Vec2{Y: distance + target.Y/2})
}

// InnerCenterLeft places an object inside the target against its left side,
// centered vertically. The left margin equals the vertical centering
// displacement, keeping the object equidistant from the three nearest edges.
func InnerCenterLeft(origin, target, object Vec2) Vec2 {
	displacement := (target.Y - object.Y) / 2
	return Vec2{X: origin.X + displacement, Y: origin.Y + displacement}
}

// InnerCenterRight places an object inside the target against its right
// side, centered vertically, with the same equidistant margin rule as
// InnerCenterLeft.
func InnerCenterRight(origin, target, object Vec2) Vec2 {
	displacement := (target.Y - object.Y) / 2
	return Vec2{
		X: origin.X + target.X - object.X - displacement,
		Y: origin.Y + displacement,
	}
}

// InnerTopLeft places an object inside the target's top-left corner, offset
// from both edges by gap.
func InnerTopLeft(origin Vec2, gap float32) Vec2 {
	return Vec2{X: origin.X + gap, Y: origin.Y + gap}
}

// InnerBottomLeft places an object inside the target's bottom-left corner,
// offset from both edges by gap.
func InnerBottomLeft(origin, target, object Vec2, gap float32) Vec2 {
	return Vec2{
		X: origin.X + gap,
		Y: origin.Y + target.Y - gap - object.Y,
	}
}

// InnerBottomRight places an object inside the target's bottom-right corner,
// offset from both edges by gap.
func InnerBottomRight(origin, target, object Vec2, gap float32) Vec2 {
	return Vec2{
		X: origin.X + target.X - object.X - gap,
		Y: origin.Y + target.Y - gap - object.Y,
	}
}

// InnerBottomCenter places an object inside the target along its bottom
// edge, centered horizontally, offset from the bottom by gap.
func InnerBottomCenter(origin, target, object Vec2, gap float32) Vec2 {
	return Vec2{
		X: origin.X + (target.X-object.X)/2,
		Y: origin.Y + target.Y - object.Y - gap,
	}
}

// GridCellOrigin returns the upper-left corner of a grid cell, just inside
// the gridline borders. Cells are numbered from zero.
//
// The row is derived by dividing the cell number by the row count and the
// column by taking the remainder against the column count. Existing overlays
// are laid out against this rule, so it is kept as is even though it only
// matches row-major order on square grids.
//
// No bounds checking is performed: cell numbers at or beyond the grid's
// capacity produce positions outside the grid. Callers guard indices (see
// PopulateGrid).
func GridCellOrigin(origin Vec2, cellWidth, cellHeight, gridlineWidth float32, columns, rows, cell int) Vec2 {
	origin = origin.Add(Vec2{X: gridlineWidth, Y: gridlineWidth})

	horizontalDisplacement := cellWidth + gridlineWidth
	verticalDisplacement := cellHeight + gridlineWidth

	row := cell / rows
	col := cell % columns

	return Vec2{
		X: origin.X + float32(col)*horizontalDisplacement,
		Y: origin.Y + float32(row)*verticalDisplacement,
	}
}

// FrameWithin returns the largest dimensions with the inner frame's aspect
// ratio that fit inside the outer frame once padding is reserved on every
// side. Classic letterbox/pillarbox fitting.
//
// If padding meets or exceeds half the outer frame on the fitted axis the
// result is zero or negative; the caller validates padding against the frame
// and decides what to do with a degenerate size.
func FrameWithin(outer, inner Vec2, padding float32) Vec2 {
	innerAspect := inner.X / inner.Y
	outerAspect := outer.X / outer.Y

	var x, y float32
	if innerAspect > outerAspect {
		// Fit width, adjust height to preserve aspect ratio
		x = outer.X - 2*padding
		y = x / innerAspect
	} else {
		// Fit height, adjust width to preserve aspect ratio
		y = outer.Y - 2*padding
		x = y * innerAspect
	}

	return Vec2{X: x, Y: y}
}
