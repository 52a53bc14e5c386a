package aureon_test

import (
	"testing"

	"github.com/spatialsurgical/aureon"
)

func TestListHostRegionPairing(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	host := aureon.NewListHost(dl)

	region := host.BeginRegion("panel", aureon.Vec2{X: 10, Y: 10}, aureon.Vec2{X: 100, Y: 50}, aureon.RegionOptions{})
	if dl.ClipDepth() != 1 {
		t.Errorf("ClipDepth inside region = %d, want 1", dl.ClipDepth())
	}
	if region.Canvas() != dl {
		t.Error("Canvas should be the host's list")
	}

	region.End()
	if dl.ClipDepth() != 0 {
		t.Errorf("ClipDepth after End = %d, want 0", dl.ClipDepth())
	}
}

func TestListHostNestedRegions(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	host := aureon.NewListHost(dl)

	outer := host.BeginRegion("outer", aureon.Vec2{}, aureon.Vec2{X: 200, Y: 200}, aureon.RegionOptions{})
	inner := host.BeginRegion("inner", aureon.Vec2{X: 10, Y: 10}, aureon.Vec2{X: 50, Y: 50}, aureon.RegionOptions{})

	if dl.ClipDepth() != 2 {
		t.Errorf("ClipDepth = %d, want 2", dl.ClipDepth())
	}

	inner.End()
	outer.End()
	if dl.ClipDepth() != 0 {
		t.Errorf("ClipDepth after LIFO close = %d, want 0", dl.ClipDepth())
	}
}

func TestListHostDrawsBackground(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	host := aureon.NewListHost(dl)

	region := host.BeginRegion("panel", aureon.Vec2{X: 10, Y: 20}, aureon.Vec2{X: 100, Y: 50}, aureon.RegionOptions{
		Background:     aureon.ColorBlue,
		DrawBackground: true,
	})
	region.End()

	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("vertices = %d, want one background quad", len(dl.VtxBuffer))
	}
	if dl.VtxBuffer[0].Color != aureon.ColorBlue {
		t.Errorf("background color = %08X", dl.VtxBuffer[0].Color)
	}
}

func TestListHostSkipsBackgroundWhenDisabled(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	host := aureon.NewListHost(dl)

	region := host.BeginRegion("panel", aureon.Vec2{}, aureon.Vec2{X: 100, Y: 50}, aureon.RegionOptions{
		Background: aureon.ColorBlue,
	})
	region.End()

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("vertices = %d, want none without DrawBackground", len(dl.VtxBuffer))
	}
}

func TestListHostRoundedBackground(t *testing.T) {
	dl := aureon.AcquireDrawList()
	defer aureon.ReleaseDrawList(dl)

	host := aureon.NewListHost(dl)

	region := host.BeginRegion("panel", aureon.Vec2{}, aureon.Vec2{X: 100, Y: 50}, aureon.RegionOptions{
		Background:     aureon.ColorBlue,
		DrawBackground: true,
		Rounding:       8,
	})
	region.End()

	if len(dl.VtxBuffer) <= 4 {
		t.Errorf("vertices = %d, want a rounded outline", len(dl.VtxBuffer))
	}
}
