package aureon

import "math"

// Font describes a fixed-cell bitmap font atlas. The renderer owns the
// texture; the draw helpers only need the handle and cell metrics to place
// and measure glyph quads. Proportional text shaping is out of scope.
type Font struct {
	TextureID  uint32
	CharWidth  float32
	CharHeight float32
}

// DefaultFont returns the metrics of the built-in 8x8 atlas produced by the
// renderer backends.
func DefaultFont(textureID uint32) Font {
	return Font{TextureID: textureID, CharWidth: 8, CharHeight: 8}
}

// scaleFor converts a requested pixel size into a cell scale factor.
// A size of 0 means the font's native cell size.
func (f Font) scaleFor(size float32) float32 {
	if size <= 0 || f.CharHeight <= 0 {
		return 1
	}
	return size / f.CharHeight
}

// MeasureText returns the bounding box of a string at the given pixel size.
func (f Font) MeasureText(text string, size float32) Vec2 {
	scale := f.scaleFor(size)
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * f.CharWidth * scale, Y: f.CharHeight * scale}
}

// DrawText draws colored text of a set transparency.
func DrawText(dl *DrawList, f Font, size float32, position Vec2, color uint32, transparency float32, text string) {
	dl.SetTexture(f.TextureID)
	dl.AddText(position.X, position.Y, text, WithAlpha(color, transparency), f.scaleFor(size), f.CharWidth, f.CharHeight)
	dl.SetTexture(0)
}

// textStrokeSegments is the number of radial copies drawn for a stroke.
const textStrokeSegments = 32

// DrawTextStroke radially redraws text to generate a stroke/outline effect.
func DrawTextStroke(dl *DrawList, f Font, size float32, position Vec2, strokeColor uint32, transparency, strokeWidth float32, text string) {
	step := 2 * math.Pi / textStrokeSegments
	for i := 0; i < textStrokeSegments; i++ {
		angle := step * float64(i)
		offset := Vec2{
			X: float32(math.Cos(angle)),
			Y: float32(math.Sin(angle)),
		}.Mul(strokeWidth)
		DrawText(dl, f, size, position.Add(offset), strokeColor, transparency, text)
	}
}

// DrawTextWithStroke draws text over its stroke for an outlined-text effect.
func DrawTextWithStroke(dl *DrawList, f Font, size float32, position Vec2, strokeColor, textColor uint32, transparency, strokeWidth float32, text string) {
	DrawTextStroke(dl, f, size, position, strokeColor, transparency, strokeWidth, text)
	DrawText(dl, f, size, position, textColor, transparency, text)
}

// DrawFilledRect draws a filled rectangle of a set transparency.
func DrawFilledRect(dl *DrawList, position, size Vec2, color uint32, transparency float32) {
	dl.AddRect(position.X, position.Y, size.X, size.Y, WithAlpha(color, transparency))
}

// DrawFilledRoundedRect draws a filled rectangle with rounded corners.
func DrawFilledRoundedRect(dl *DrawList, position, size Vec2, color uint32, transparency, rounding float32) {
	dl.AddRectRounded(position.X, position.Y, size.X, size.Y, WithAlpha(color, transparency), rounding)
}

// DrawFilledRectWithStroke draws a filled rectangle with an outline around it.
func DrawFilledRectWithStroke(dl *DrawList, position, size Vec2, color, strokeColor uint32, transparency, strokeWidth float32) {
	DrawFilledRect(dl, position, size, color, transparency)
	dl.AddRectOutline(position.X-strokeWidth, position.Y-strokeWidth,
		size.X+2*strokeWidth, size.Y+2*strokeWidth,
		WithAlpha(strokeColor, transparency), strokeWidth)
}

// DrawHighlight draws a filled rectangle sized to sit behind a run of text,
// extending width pixels beyond the text box on every side.
func DrawHighlight(dl *DrawList, f Font, size float32, position Vec2, width float32, color uint32, transparency float32, text string) {
	textSize := f.MeasureText(text, size)
	offset := position.Sub(Vec2{X: width, Y: width})
	rectSize := textSize.Add(Vec2{X: 2 * width, Y: 2 * width})
	DrawFilledRect(dl, offset, rectSize, color, transparency)
}

// DrawHighlightRounded is DrawHighlight with rounded corners.
func DrawHighlightRounded(dl *DrawList, f Font, size float32, position Vec2, width float32, color uint32, transparency, rounding float32, text string) {
	textSize := f.MeasureText(text, size)
	offset := position.Sub(Vec2{X: width, Y: width})
	rectSize := textSize.Add(Vec2{X: 2 * width, Y: 2 * width})
	DrawFilledRoundedRect(dl, offset, rectSize, color, transparency, rounding)
}

// DrawTextWithHighlight draws text with a highlight box behind it.
func DrawTextWithHighlight(dl *DrawList, f Font, size float32, position Vec2, highlightWidth float32, textColor, highlightColor uint32, textTransparency, highlightTransparency float32, text string) {
	DrawHighlight(dl, f, size, position, highlightWidth, highlightColor, highlightTransparency, text)
	DrawText(dl, f, size, position, textColor, textTransparency, text)
}

// DrawTextWithRoundedHighlight draws text with a rounded highlight box
// behind it.
func DrawTextWithRoundedHighlight(dl *DrawList, f Font, size float32, position Vec2, highlightWidth float32, textColor, highlightColor uint32, textTransparency, highlightTransparency, rounding float32, text string) {
	DrawHighlightRounded(dl, f, size, position, highlightWidth, highlightColor, highlightTransparency, rounding, text)
	DrawText(dl, f, size, position, textColor, textTransparency, text)
}

// DrawStrokedTextWithHighlight draws stroked text over a highlight box.
func DrawStrokedTextWithHighlight(dl *DrawList, f Font, size float32, position Vec2, highlightWidth, strokeWidth float32, textColor, highlightColor, strokeColor uint32, textTransparency, highlightTransparency float32, text string) {
	DrawHighlight(dl, f, size, position, highlightWidth, highlightColor, highlightTransparency, text)
	DrawTextWithStroke(dl, f, size, position, strokeColor, textColor, textTransparency, strokeWidth, text)
}

// DrawBoxAround outlines an object of the given size, offset outward by
// width on every side.
func DrawBoxAround(dl *DrawList, objectSize, position Vec2, width float32, color uint32, transparency float32) {
	dl.AddRectOutline(position.X-width, position.Y-width,
		objectSize.X+2*width, objectSize.Y+2*width,
		WithAlpha(color, transparency), width)
}

// DrawSprite draws a texture 1:1 at a position.
func DrawSprite(dl *DrawList, sprite Texture, position Vec2, transparency float32) {
	DrawTintedSprite(dl, sprite, position, ColorWhite, transparency)
}

// DrawTintedSprite draws a texture 1:1 at a position with a color tint.
func DrawTintedSprite(dl *DrawList, sprite Texture, position Vec2, tint uint32, transparency float32) {
	dl.AddImage(sprite.ID, position, position.Add(sprite.Size()), WithAlpha(tint, transparency))
}

// DrawSpriteSubsection draws a fraction of a sprite offset to where it would
// fall on the undivided texture: rendering the full sprite underneath would
// line up exactly. Used for active subsections of status indicator bars.
func DrawSpriteSubsection(dl *DrawList, sprite Texture, position, startFraction, endFraction Vec2) {
	size := sprite.Size()
	topLeft := position.Add(Vec2{X: startFraction.X * size.X, Y: startFraction.Y * size.Y})
	bottomRight := position.Add(Vec2{X: endFraction.X * size.X, Y: endFraction.Y * size.Y})
	dl.AddImageUV(sprite.ID, topLeft, bottomRight, startFraction, endFraction, ColorWhite)
}

// zoomCrop converts a zoom level into the normalized UV range that crops the
// texture around its center. Zoom is exponential so steps feel even.
func zoomCrop(zoom float32) (start, end Vec2) {
	trueScale := float32(math.Pow(2, float64(zoom*4)))
	trueScale = clampf(trueScale, 1.001, 100)
	margin := (1 - 1/trueScale) / 2
	return Vec2{X: margin, Y: margin}, Vec2{X: 1 - margin, Y: 1 - margin}
}

// DrawImageFitted renders a sprite into fixed frame dimensions at a set zoom
// level, akin to adding and cropping an image into a document.
func DrawImageFitted(dl *DrawList, sprite Texture, position, frameSize Vec2, zoom float32) {
	start, end := zoomCrop(zoom)
	dl.AddImageUV(sprite.ID, position, position.Add(frameSize), start, end, ColorWhite)
}

// DrawCrop renders a pixel-space subsection of a sprite into a frame.
func DrawCrop(dl *DrawList, sprite Texture, position, cropPosition, cropSize, frameSize Vec2) {
	size := sprite.Size()
	start := Vec2{X: cropPosition.X / size.X, Y: cropPosition.Y / size.Y}
	end := Vec2{
		X: (cropPosition.X + cropSize.X) / size.X,
		Y: (cropPosition.Y + cropSize.Y) / size.Y,
	}
	dl.AddImageUV(sprite.ID, position, position.Add(frameSize), start, end, ColorWhite)
}

// DrawRoundedImage renders a zoomed sprite into a frame with rounded corners.
func DrawRoundedImage(dl *DrawList, sprite Texture, position, frameSize Vec2, zoom, rounding float32) {
	start, end := zoomCrop(zoom)
	dl.AddImageRounded(sprite.ID, position, position.Add(frameSize), start, end, ColorWhite, rounding)
}

// DrawGrid draws an empty grid divided by solid rectangular gridlines.
func DrawGrid(dl *DrawList, origin Vec2, columns, rows int, cellWidth, cellHeight, gridlineWidth float32, gridlineColor uint32) {
	documentWidth := float32(columns+1)*gridlineWidth + cellWidth*float32(columns)
	documentHeight := float32(rows+1)*gridlineWidth + cellHeight*float32(rows)

	horizontalDisplacement := cellWidth + gridlineWidth
	verticalDisplacement := cellHeight + gridlineWidth

	// Vertical gridlines
	for col := 0; col <= columns; col++ {
		anchor := origin.Add(Vec2{X: horizontalDisplacement * float32(col)})
		DrawFilledRect(dl, anchor, Vec2{X: gridlineWidth, Y: documentHeight}, gridlineColor, 1)
	}

	// Horizontal gridlines
	for row := 0; row <= rows; row++ {
		anchor := origin.Add(Vec2{Y: verticalDisplacement * float32(row)})
		DrawFilledRect(dl, anchor, Vec2{X: documentWidth, Y: gridlineWidth}, gridlineColor, 1)
	}
}

// PopulateGrid fills grid cells with textures in row-major order, stopping
// once the collection is exhausted. Remaining cells stay empty.
func PopulateGrid(dl *DrawList, images []Texture, origin Vec2, columns, rows int, cellWidth, cellHeight, gridlineWidth float32) {
	origin = origin.Add(Vec2{X: gridlineWidth, Y: gridlineWidth})

	horizontalDisplacement := cellWidth + gridlineWidth
	verticalDisplacement := cellHeight + gridlineWidth
	cellFrame := Vec2{X: cellWidth, Y: cellHeight}

	cell := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if cell >= len(images) {
				return
			}
			anchor := origin.Add(Vec2{
				X: float32(col) * horizontalDisplacement,
				Y: float32(row) * verticalDisplacement,
			})
			DrawImageFitted(dl, images[cell], anchor, cellFrame, 0)
			cell++
		}
	}
}

// PopulateSparseRoundedGrid lays out rounded images in a spaced-out grid,
// stopping once the collection is exhausted.
func PopulateSparseRoundedGrid(dl *DrawList, images []Texture, origin Vec2, columns, rows int, cellWidth, cellHeight, spacing, rounding float32) {
	origin = origin.Add(Vec2{X: spacing, Y: spacing})

	horizontalDisplacement := cellWidth + spacing
	verticalDisplacement := cellHeight + spacing
	cellFrame := Vec2{X: cellWidth, Y: cellHeight}

	cell := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if cell >= len(images) {
				return
			}
			anchor := origin.Add(Vec2{
				X: float32(col) * horizontalDisplacement,
				Y: float32(row) * verticalDisplacement,
			})
			DrawRoundedImage(dl, images[cell], anchor, cellFrame, 0, rounding)
			cell++
		}
	}
}
