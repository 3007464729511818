// Package capture saves framebuffer snapshots as PNG files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes framebuffer snapshots to timestamped PNG files.
type Capture struct {
	dir    string
	prefix string
}

// New creates a Capture writing into dir. An empty dir means the
// current working directory.
func New(dir, prefix string) *Capture {
	return &Capture{
		dir:    dir,
		prefix: prefix,
	}
}

// SavePixels encodes raw RGBA framebuffer data as a PNG and returns
// the file path. glReadPixels returns rows bottom-up, so the image is
// flipped during the copy.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := flipImage(pixels, width, height)
	if err != nil {
		return "", err
	}

	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	filename := c.filename(time.Now())

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// flipImage copies bottom-up RGBA rows into a top-down image.
func flipImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

func (c *Capture) filename(now time.Time) string {
	name := fmt.Sprintf("%s_%s.png", c.prefix, now.Format("2006-01-02_15-04-05"))
	if c.dir == "" {
		return name
	}
	return filepath.Join(c.dir, name)
}
