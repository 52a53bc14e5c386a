package aureon

import (
	"math"
	"sync"
)

// drawListPool provides efficient reuse of DrawList buffers.
// This avoids allocations on every frame, which is critical for
// immediate-mode rendering where the entire draw list is rebuilt each frame.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9} // Very large default clip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives will be clipped to this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw() // Force new command with new clip rect
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw() // Force new command with restored clip rect
	}
}

// ClipDepth returns the number of clip rectangles currently pushed.
// Zero means every region opened on this list has been closed.
func (dl *DrawList) ClipDepth() int {
	return len(dl.clipStack)
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		// Finalize any pending primitives with the old texture first
		if len(dl.CmdBuffer) > 0 {
			lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
			lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		}
		dl.textureID = textureID
		dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
			ClipRect:     dl.currentClip,
			TextureID:    dl.textureID,
			VertexOffset: uint32(len(dl.VtxBuffer)),
			IndexOffset:  uint32(len(dl.IdxBuffer)),
		})
		dl.cmdOffset = uint32(len(dl.VtxBuffer))
		dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	// Finalize current command if it has any indices
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Start new command
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// ensureCommand ensures there's an active draw command.
func (dl *DrawList) ensureCommand() {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
}

// addVertices adds vertices and returns the starting index.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	dl.ensureCommand()
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	// Top edge
	dl.AddRect(x, y, w, thickness, color)
	// Bottom edge
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	// Left edge
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	// Right edge
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddRectRounded draws a filled rectangle with rounded corners.
// A rounding of 0 falls back to AddRect.
func (dl *DrawList) AddRectRounded(x, y, w, h float32, color uint32, rounding float32) {
	if color&0xFF000000 == 0 {
		return
	}
	rounding = minf(rounding, minf(w, h)/2)
	if rounding <= 0 {
		dl.AddRect(x, y, w, h, color)
		return
	}

	points := roundedRectPath(x, y, w, h, rounding)
	dl.addConvexPoly(points, nil, color)
}

// AddLine draws a line between two points.
// Uses a quad to create thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	// Calculate perpendicular direction for thickness
	dx := x2 - x1
	dy := y2 - y1
	length := float32(1.0)
	if dx != 0 || dy != 0 {
		length = 1.0 / sqrtf(dx*dx+dy*dy)
	}

	// Normal perpendicular to line
	nx := -dy * length * thickness * 0.5
	ny := dx * length * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2)
}

// AddImage draws a textured quad between topLeft and bottomRight with the
// full texture mapped onto it. Tint is multiplied with the texture color;
// use ColorWhite for an unmodified image.
func (dl *DrawList) AddImage(textureID uint32, topLeft, bottomRight Vec2, tint uint32) {
	dl.AddImageUV(textureID, topLeft, bottomRight, Vec2{}, Vec2{X: 1, Y: 1}, tint)
}

// AddImageUV draws a textured quad with an explicit UV subrange, selecting a
// fraction of the texture.
func (dl *DrawList) AddImageUV(textureID uint32, topLeft, bottomRight, uvStart, uvEnd Vec2, tint uint32) {
	if tint&0xFF000000 == 0 || textureID == 0 {
		return
	}

	prev := dl.textureID
	dl.SetTexture(textureID)

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{topLeft.X, topLeft.Y}, TexCoord: [2]float32{uvStart.X, uvStart.Y}, Color: tint},
		Vertex{Pos: [2]float32{bottomRight.X, topLeft.Y}, TexCoord: [2]float32{uvEnd.X, uvStart.Y}, Color: tint},
		Vertex{Pos: [2]float32{bottomRight.X, bottomRight.Y}, TexCoord: [2]float32{uvEnd.X, uvEnd.Y}, Color: tint},
		Vertex{Pos: [2]float32{topLeft.X, bottomRight.Y}, TexCoord: [2]float32{uvStart.X, uvEnd.Y}, Color: tint},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)

	dl.SetTexture(prev)
}

// AddImageRounded draws a textured quad with rounded corners. UVs are
// interpolated linearly across the quad, so the texture is cropped at the
// corners rather than distorted.
func (dl *DrawList) AddImageRounded(textureID uint32, topLeft, bottomRight, uvStart, uvEnd Vec2, tint uint32, rounding float32) {
	if tint&0xFF000000 == 0 || textureID == 0 {
		return
	}

	w := bottomRight.X - topLeft.X
	h := bottomRight.Y - topLeft.Y
	rounding = minf(rounding, minf(w, h)/2)
	if rounding <= 0 {
		dl.AddImageUV(textureID, topLeft, bottomRight, uvStart, uvEnd, tint)
		return
	}

	points := roundedRectPath(topLeft.X, topLeft.Y, w, h, rounding)
	uvs := make([]Vec2, len(points))
	for i, p := range points {
		uvs[i] = Vec2{
			X: uvStart.X + (p.X-topLeft.X)/w*(uvEnd.X-uvStart.X),
			Y: uvStart.Y + (p.Y-topLeft.Y)/h*(uvEnd.Y-uvStart.Y),
		}
	}

	prev := dl.textureID
	dl.SetTexture(textureID)
	dl.addConvexPoly(points, uvs, tint)
	dl.SetTexture(prev)
}

// addConvexPoly fan-triangulates a convex point path. uvs may be nil for
// untextured fills; otherwise it must be the same length as points.
func (dl *DrawList) addConvexPoly(points, uvs []Vec2, color uint32) {
	if len(points) < 3 {
		return
	}

	verts := make([]Vertex, len(points))
	for i, p := range points {
		v := Vertex{Pos: [2]float32{p.X, p.Y}, Color: color}
		if uvs != nil {
			v.TexCoord = [2]float32{uvs[i].X, uvs[i].Y}
		}
		verts[i] = v
	}

	idx := dl.addVertices(verts...)
	for i := 1; i < len(points)-1; i++ {
		dl.addIndices(idx, idx+uint16(i), idx+uint16(i)+1)
	}
}

// roundedRectSegments is the arc resolution per corner.
const roundedRectSegments = 8

// roundedRectPath returns the clockwise outline of a rounded rectangle.
func roundedRectPath(x, y, w, h, r float32) []Vec2 {
	points := make([]Vec2, 0, 4*(roundedRectSegments+1))

	// Corner centers, ordered clockwise from top-left; each arc sweeps a
	// quarter turn starting at the given angle (radians, Y-down space).
	corners := []struct {
		cx, cy, start float32
	}{
		{x + r, y + r, math.Pi},              // top-left
		{x + w - r, y + r, 1.5 * math.Pi},    // top-right
		{x + w - r, y + h - r, 2 * math.Pi},  // bottom-right
		{x + r, y + h - r, 2.5 * math.Pi},    // bottom-left
	}

	for _, c := range corners {
		for i := 0; i <= roundedRectSegments; i++ {
			angle := float64(c.start) + float64(i)/roundedRectSegments*(math.Pi/2)
			points = append(points, Vec2{
				X: c.cx + r*float32(math.Cos(angle)),
				Y: c.cy + r*float32(math.Sin(angle)),
			})
		}
	}

	return points
}

// AddText draws text at the specified position using the built-in bitmap
// font grid. fontScale is typically 1.0 for normal size. charWidth and
// charHeight define the size of each character cell.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	cw := charWidth * fontScale
	cellH := charHeight * fontScale

	for i, r := range text {
		// Map character to texture coordinates
		// Assumes a 16x6 grid of 8x8 characters for ASCII 32-127
		char := unicodeFallback(r)
		if char < 32 || char > 127 {
			char = '?'
		}

		idx := int(char - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)

		// Texture coordinates (16x6 grid in 128x48 texture)
		u0 := col * 8 / 128
		v0 := row * 8 / 48
		u1 := (col + 1) * 8 / 128
		v1 := (row + 1) * 8 / 48

		px := x + float32(i)*cw

		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + cellH}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + cellH}, TexCoord: [2]float32{u0, v1}, Color: color},
		)

		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
	}
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font (ASCII 32-127 only).
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	// Finalize the last command
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// sqrtf is a simple square root approximation.
// For UI purposes, precision isn't critical.
func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	// Newton-Raphson iteration (2 iterations is enough for UI)
	guess := x / 2
	guess = (guess + x/guess) / 2
	guess = (guess + x/guess) / 2
	return guess
}
