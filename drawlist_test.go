package aureon_test

import (
	"testing"

	"github.com/spatialsurgical/aureon"
)

func TestAddRect(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddRect(10, 20, 100, 50, aureon.ColorRed)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("vertices = %d, want 4", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Errorf("indices = %d, want 6", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("commands = %d, want 1", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("ElemCount = %d, want 6", dl.CmdBuffer[0].ElemCount)
	}
}

func TestAddRectSkipsTransparent(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, 0x00FF0000)

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("fully transparent rect emitted %d vertices", len(dl.VtxBuffer))
	}
}

func TestClipRectStack(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	if dl.ClipDepth() != 0 {
		t.Fatalf("fresh list ClipDepth = %d", dl.ClipDepth())
	}

	dl.PushClipRect(0, 0, 100, 100)
	dl.PushClipRect(10, 10, 50, 50)
	if dl.ClipDepth() != 2 {
		t.Errorf("ClipDepth = %d, want 2", dl.ClipDepth())
	}

	dl.AddRect(0, 0, 10, 10, aureon.ColorWhite)
	dl.Finalize()

	cmd := dl.CmdBuffer[len(dl.CmdBuffer)-1]
	if cmd.ClipRect != [4]float32{10, 10, 50, 50} {
		t.Errorf("ClipRect = %v, want innermost", cmd.ClipRect)
	}

	dl.PopClipRect()
	dl.PopClipRect()
	if dl.ClipDepth() != 0 {
		t.Errorf("ClipDepth after pops = %d, want 0", dl.ClipDepth())
	}
}

func TestSetTextureSplitsCommands(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, aureon.ColorWhite)
	dl.SetTexture(7)
	dl.AddRect(20, 0, 10, 10, aureon.ColorWhite)
	dl.SetTexture(0)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want 2", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 {
		t.Errorf("first command texture = %d, want 0", dl.CmdBuffer[0].TextureID)
	}
	if dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("second command texture = %d, want 7", dl.CmdBuffer[1].TextureID)
	}
}

func TestAddImageRestoresTexture(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddImage(5, aureon.Vec2{}, aureon.Vec2{X: 32, Y: 32}, aureon.ColorWhite)
	dl.AddRect(0, 0, 10, 10, aureon.ColorWhite)
	dl.Finalize()

	last := dl.CmdBuffer[len(dl.CmdBuffer)-1]
	if last.TextureID != 0 {
		t.Errorf("rect after image batched onto texture %d", last.TextureID)
	}
}

func TestAddImageUVCorners(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddImageUV(3,
		aureon.Vec2{X: 10, Y: 20}, aureon.Vec2{X: 110, Y: 70},
		aureon.Vec2{X: 0.25, Y: 0.25}, aureon.Vec2{X: 0.75, Y: 0.5},
		aureon.ColorWhite)

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("vertices = %d, want 4", len(dl.VtxBuffer))
	}

	tl := dl.VtxBuffer[0]
	br := dl.VtxBuffer[2]
	if tl.TexCoord != [2]float32{0.25, 0.25} {
		t.Errorf("top-left UV = %v", tl.TexCoord)
	}
	if br.TexCoord != [2]float32{0.75, 0.5} {
		t.Errorf("bottom-right UV = %v", br.TexCoord)
	}
	if tl.Pos != [2]float32{10, 20} || br.Pos != [2]float32{110, 70} {
		t.Errorf("corner positions = %v, %v", tl.Pos, br.Pos)
	}
}

func TestAddImageSkipsInvalidTexture(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddImage(0, aureon.Vec2{}, aureon.Vec2{X: 32, Y: 32}, aureon.ColorWhite)

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("texture 0 emitted %d vertices", len(dl.VtxBuffer))
	}
}

func TestAddRectRounded(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddRectRounded(0, 0, 100, 50, aureon.ColorWhite, 10)
	dl.Finalize()

	// Four quarter arcs fan-triangulated into one convex polygon.
	if len(dl.VtxBuffer) < 8 {
		t.Errorf("vertices = %d, want an arc outline", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != (len(dl.VtxBuffer)-2)*3 {
		t.Errorf("indices = %d for %d vertices, want a triangle fan",
			len(dl.IdxBuffer), len(dl.VtxBuffer))
	}
}

func TestAddRectRoundedZeroFallsBack(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddRectRounded(0, 0, 100, 50, aureon.ColorWhite, 0)

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("vertices = %d, want plain quad", len(dl.VtxBuffer))
	}
}

func TestAddText(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.AddText(0, 0, "abc", aureon.ColorWhite, 1, 8, 8)
	dl.Finalize()

	if len(dl.VtxBuffer) != 12 {
		t.Errorf("vertices = %d, want 4 per character", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 18 {
		t.Errorf("indices = %d, want 6 per character", len(dl.IdxBuffer))
	}
}

func TestFinalizeDropsEmptyCommands(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 100, 100)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, aureon.ColorWhite)
	dl.Finalize()

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			t.Error("Finalize left an empty command")
		}
	}
}

func TestDrawListPoolReuse(t *testing.T) {
	dl := aureon.AcquireDrawList()
	dl.AddRect(0, 0, 10, 10, aureon.ColorWhite)
	aureon.ReleaseDrawList(dl)

	dl2 := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl2)

	if len(dl2.VtxBuffer) != 0 || len(dl2.CmdBuffer) != 0 {
		t.Error("acquired list not cleared")
	}
	if dl2.ClipDepth() != 0 {
		t.Errorf("acquired list ClipDepth = %d", dl2.ClipDepth())
	}
}
