package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types accepted by DecodeTGA.
const (
	tgaTypeTrueColor = 2  // uncompressed true-color
	tgaTypeRLE       = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// DecodeTGA decodes a 24/32-bit true-color TGA file, uncompressed or
// RLE compressed. TGA carries no magic bytes, so it cannot register
// with image.Decode; Load routes by file extension instead.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("tga: data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != tgaTypeTrueColor && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: data truncated")
	}
	pixels := data[offset:]
	perPixel := bpp / 8

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// Bit 5 of the descriptor selects top-to-bottom row order; the
	// default is bottom-up.
	topToBottom := descriptor&0x20 != 0

	if imageType == tgaTypeTrueColor {
		if len(pixels) < width*height*perPixel {
			return nil, fmt.Errorf("tga: pixel data truncated")
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := tgaPixel(pixels[(y*width+x)*perPixel:], perPixel)
				img.SetRGBA(x, tgaRow(y, height, topToBottom), c)
			}
		}
		return img, nil
	}

	if err := decodeTGARLE(img, pixels, width, height, perPixel, topToBottom); err != nil {
		return nil, err
	}
	return img, nil
}

// decodeTGARLE fills img from RLE packet data. Each packet header byte
// holds a repeat flag in bit 7 and a count-1 in the low bits.
func decodeTGARLE(img *image.RGBA, pixels []byte, width, height, perPixel int, topToBottom bool) error {
	total := width * height
	pixel := 0
	pos := 0

	for pixel < total {
		if pos >= len(pixels) {
			return fmt.Errorf("tga: rle data truncated")
		}
		packet := pixels[pos]
		pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run packet: one pixel value repeated count times.
			if pos+perPixel > len(pixels) {
				return fmt.Errorf("tga: rle data truncated")
			}
			c := tgaPixel(pixels[pos:], perPixel)
			pos += perPixel
			for i := 0; i < count && pixel < total; i++ {
				img.SetRGBA(pixel%width, tgaRow(pixel/width, height, topToBottom), c)
				pixel++
			}
			continue
		}

		// Raw packet: count literal pixels.
		for i := 0; i < count && pixel < total; i++ {
			if pos+perPixel > len(pixels) {
				return fmt.Errorf("tga: rle data truncated")
			}
			c := tgaPixel(pixels[pos:], perPixel)
			pos += perPixel
			img.SetRGBA(pixel%width, tgaRow(pixel/width, height, topToBottom), c)
			pixel++
		}
	}
	return nil
}

// tgaPixel reads one BGR(A) pixel from the front of data.
func tgaPixel(data []byte, perPixel int) color.RGBA {
	c := color.RGBA{B: data[0], G: data[1], R: data[2], A: 255}
	if perPixel == 4 {
		c.A = data[3]
	}
	return c
}

// tgaRow maps a source row to its destination row, flipping bottom-up
// files so row 0 of the result is always the top of the image.
func tgaRow(y, height int, topToBottom bool) int {
	if topToBottom {
		return y
	}
	return height - 1 - y
}
