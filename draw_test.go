package aureon_test

import (
	"testing"

	"github.com/spatialsurgical/aureon"
)

func testFont() aureon.Font {
	return aureon.DefaultFont(1)
}

func TestMeasureText(t *testing.T) {
	f := testFont()

	got := f.MeasureText("hello", 16)
	// 8x8 cells scaled to 16 pixels tall: each cell doubles.
	want := aureon.Vec2{X: 5 * 16, Y: 16}
	if got != want {
		t.Errorf("MeasureText = %v, want %v", got, want)
	}

	// Size 0 means the native cell size.
	if got := f.MeasureText("ab", 0); got != (aureon.Vec2{X: 16, Y: 8}) {
		t.Errorf("native MeasureText = %v", got)
	}

	if got := f.MeasureText("", 16); got.X != 0 {
		t.Errorf("empty string width = %v", got.X)
	}
}

func TestDrawTextBatchesOnFontTexture(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	f := testFont()
	aureon.DrawText(dl, f, 16, aureon.Vec2{X: 10, Y: 10}, aureon.ColorWhite, 1, "hi")
	dl.Finalize()

	found := false
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == f.TextureID {
			found = true
		}
	}
	if !found {
		t.Error("no command batched on the font texture")
	}
}

func TestDrawTextTransparencyZeroEmitsNothing(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	aureon.DrawText(dl, testFont(), 16, aureon.Vec2{}, aureon.ColorWhite, 0, "gone")

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("invisible text emitted %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawTextStrokeSegments(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	aureon.DrawTextStroke(dl, testFont(), 8, aureon.Vec2{X: 50, Y: 50}, aureon.ColorBlack, 1, 2, "x")

	// 32 radial copies of a single character quad.
	if len(dl.VtxBuffer) != 32*4 {
		t.Errorf("vertices = %d, want %d", len(dl.VtxBuffer), 32*4)
	}
}

func TestDrawHighlightGeometry(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	f := testFont()
	position := aureon.Vec2{X: 100, Y: 100}
	aureon.DrawHighlight(dl, f, 8, position, 4, aureon.ColorGreen, 1, "ab")

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("vertices = %d, want one quad", len(dl.VtxBuffer))
	}

	// The box starts width pixels up-left of the text and extends width
	// pixels past it on every side.
	tl := dl.VtxBuffer[0].Pos
	br := dl.VtxBuffer[2].Pos
	if tl != [2]float32{96, 96} {
		t.Errorf("top-left = %v, want {96 96}", tl)
	}
	// Text box is 16x8 at native size, plus 2*4 padding.
	if br != [2]float32{96 + 24, 96 + 16} {
		t.Errorf("bottom-right = %v", br)
	}
}

func TestDrawSpriteAtNaturalSize(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	sprite := aureon.Texture{ID: 9, Width: 64, Height: 32}
	aureon.DrawSprite(dl, sprite, aureon.Vec2{X: 10, Y: 20}, 1)

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("vertices = %d, want one quad", len(dl.VtxBuffer))
	}
	br := dl.VtxBuffer[2].Pos
	if br != [2]float32{74, 52} {
		t.Errorf("bottom-right = %v, want sprite size offset", br)
	}
}

func TestDrawSpriteSubsectionLinesUp(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	sprite := aureon.Texture{ID: 9, Width: 100, Height: 40}
	position := aureon.Vec2{X: 0, Y: 0}

	// The lower-right quarter of the sprite, drawn where it would fall on
	// the full sprite.
	aureon.DrawSpriteSubsection(dl, sprite, position,
		aureon.Vec2{X: 0.5, Y: 0.5}, aureon.Vec2{X: 1, Y: 1})

	tl := dl.VtxBuffer[0]
	br := dl.VtxBuffer[2]
	if tl.Pos != [2]float32{50, 20} {
		t.Errorf("top-left = %v, want {50 20}", tl.Pos)
	}
	if br.Pos != [2]float32{100, 40} {
		t.Errorf("bottom-right = %v, want {100 40}", br.Pos)
	}
	if tl.TexCoord != [2]float32{0.5, 0.5} || br.TexCoord != [2]float32{1, 1} {
		t.Errorf("UVs = %v, %v", tl.TexCoord, br.TexCoord)
	}
}

func TestDrawCrop(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	sprite := aureon.Texture{ID: 9, Width: 200, Height: 100}
	aureon.DrawCrop(dl, sprite,
		aureon.Vec2{X: 10, Y: 10},  // position
		aureon.Vec2{X: 50, Y: 25},  // crop position in texture pixels
		aureon.Vec2{X: 100, Y: 50}, // crop size
		aureon.Vec2{X: 40, Y: 20},  // frame
	)

	tl := dl.VtxBuffer[0]
	br := dl.VtxBuffer[2]
	if tl.TexCoord != [2]float32{0.25, 0.25} {
		t.Errorf("UV start = %v, want {0.25 0.25}", tl.TexCoord)
	}
	if br.TexCoord != [2]float32{0.75, 0.75} {
		t.Errorf("UV end = %v, want {0.75 0.75}", br.TexCoord)
	}
	if br.Pos != [2]float32{50, 30} {
		t.Errorf("frame bottom-right = %v", br.Pos)
	}
}

func TestDrawGridLineCount(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	aureon.DrawGrid(dl, aureon.Vec2{}, 3, 2, 10, 10, 1, aureon.ColorWhite)
	dl.Finalize()

	// columns+1 vertical lines plus rows+1 horizontal lines, one quad each.
	wantQuads := (3 + 1) + (2 + 1)
	if len(dl.VtxBuffer) != wantQuads*4 {
		t.Errorf("vertices = %d, want %d gridline quads", len(dl.VtxBuffer), wantQuads)
	}
}

func TestPopulateGridStopsAtExhaustion(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	images := []aureon.Texture{
		{ID: 1, Width: 10, Height: 10},
		{ID: 2, Width: 10, Height: 10},
	}

	// 3x3 grid with only two images: two quads, remaining cells empty.
	aureon.PopulateGrid(dl, images, aureon.Vec2{}, 3, 3, 10, 10, 1)

	if len(dl.VtxBuffer) != 2*4 {
		t.Errorf("vertices = %d, want quads for 2 images only", len(dl.VtxBuffer))
	}
}

func TestPopulateGridRowMajor(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	images := []aureon.Texture{
		{ID: 1, Width: 10, Height: 10},
		{ID: 2, Width: 10, Height: 10},
		{ID: 3, Width: 10, Height: 10},
	}

	// 2 columns: the third image wraps to the second row.
	aureon.PopulateGrid(dl, images, aureon.Vec2{}, 2, 2, 10, 10, 2)

	third := dl.VtxBuffer[8].Pos
	if third != [2]float32{2, 14} {
		t.Errorf("third image top-left = %v, want {2 14}", third)
	}
}

func TestPopulateSparseRoundedGridStopsAtExhaustion(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	images := []aureon.Texture{{ID: 1, Width: 10, Height: 10}}

	aureon.PopulateSparseRoundedGrid(dl, images, aureon.Vec2{}, 3, 3, 20, 20, 4, 5)

	// One rounded image: a single convex polygon, not nine.
	if len(dl.VtxBuffer) == 0 {
		t.Fatal("no vertices emitted")
	}
	if len(dl.VtxBuffer) > 40 {
		t.Errorf("vertices = %d, want a single rounded quad", len(dl.VtxBuffer))
	}
}
