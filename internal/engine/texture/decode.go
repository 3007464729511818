// Package texture provides image decoding and OpenGL texture upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	_ "image/jpeg" // decoder registration
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Decode parses PNG, JPEG or BMP image bytes. TGA has no magic header
// for sniffing, so callers route .tga files to DecodeTGA instead.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ImageToRGBA converts any image.Image to *image.RGBA, the layout
// TexImage2D consumes.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}
	return rgba
}
