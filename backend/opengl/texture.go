package opengl

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spatialsurgical/aureon"
)

// MaxTextureDim caps uploaded texture dimensions. Images larger than this
// on either axis are downscaled before upload.
const MaxTextureDim = 4096

// LoadTexture decodes an image stream and uploads it as an RGBA texture.
// The OpenGL context must be current.
func (r *Renderer) LoadTexture(src io.Reader) (aureon.Texture, error) {
	rgba, err := aureon.DecodeImageScaled(src, MaxTextureDim)
	if err != nil {
		return aureon.Texture{}, err
	}
	return r.uploadRGBA(rgba), nil
}

// LoadTextureFile decodes an image from disk and uploads it.
func (r *Renderer) LoadTextureFile(path string) (aureon.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return aureon.Texture{}, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	tex, err := r.LoadTexture(f)
	if err != nil {
		return aureon.Texture{}, fmt.Errorf("load texture %s: %w", path, err)
	}
	return tex, nil
}

// uploadRGBA creates a GL texture from decoded pixels and tracks it as RGBA
// so the shader samples all four channels.
func (r *Renderer) uploadRGBA(rgba *image.RGBA) aureon.Texture {
	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.rgbaTextures[tex] = true

	return aureon.Texture{ID: tex, Width: w, Height: h}
}

// DeleteTexture releases a texture loaded through this renderer.
func (r *Renderer) DeleteTexture(tex aureon.Texture) {
	if tex.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.ID)
	delete(r.rgbaTextures, tex.ID)
}
