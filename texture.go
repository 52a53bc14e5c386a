package aureon

import (
	"fmt"
	"image"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	// Registered decoders for the formats overlays actually ship.
	_ "image/jpeg"
	_ "image/png"
)

// Texture represents a pre-rasterized image uploaded to the renderer:
// an opaque texture handle plus pixel dimensions. Produced by a backend's
// texture loader and treated as immutable by the draw helpers.
type Texture struct {
	ID     uint32 // Renderer texture handle (0 = invalid)
	Width  int    // Width in pixels
	Height int    // Height in pixels
}

// Size returns the texture dimensions as a vector.
func (t Texture) Size() Vec2 {
	return Vec2{X: float32(t.Width), Y: float32(t.Height)}
}

// Valid reports whether the texture refers to an uploaded image.
func (t Texture) Valid() bool {
	return t.ID != 0
}

// DecodeImage decodes a PNG or JPEG stream into RGBA pixels ready for
// upload. The backend owns the actual GPU upload.
func DecodeImage(r io.Reader) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Copy(rgba, image.Point{}, src, bounds, xdraw.Src, nil)
	return rgba, nil
}

// DecodeImageFile decodes an image from disk.
func DecodeImageFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	rgba, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rgba, nil
}

// DecodeImageScaled decodes an image and, if either dimension exceeds
// maxDim, downscales it preserving aspect ratio so the larger dimension
// equals maxDim. Keeps textures within GPU size limits.
func DecodeImageScaled(r io.Reader, maxDim int) (*image.RGBA, error) {
	rgba, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}

	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return rgba, nil
	}

	scale := float64(maxDim) / float64(max(w, h))
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), rgba, rgba.Bounds(), xdraw.Src, nil)
	return dst, nil
}
