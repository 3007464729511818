package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Upload creates a GL texture from an RGBA image with mipmaps, repeat
// wrapping and trilinear filtering. Requires a current GL context.
func Upload(rgba *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	width := int32(rgba.Bounds().Dx())
	height := int32(rgba.Bounds().Dy())
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return id
}

// White creates a 1x1 white texture. Sampling it leaves material and
// light colors unmodulated, so it serves as the fallback when a
// texture file cannot be loaded.
func White() uint32 {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 255, 255, 255, 255
	return Upload(img)
}

// Load reads an image file and uploads it as a GL texture. PNG, JPEG
// and BMP go through image.Decode; TGA is routed by extension.
func Load(path string) (uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read texture: %w", err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, err = Decode(data)
	}
	if err != nil {
		return 0, fmt.Errorf("texture %s: %w", path, err)
	}

	return Upload(ImageToRGBA(img)), nil
}

// Bind makes the texture current on the given texture unit.
func Bind(id uint32, unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// Delete frees a GL texture.
func Delete(id uint32) {
	gl.DeleteTextures(1, &id)
}
