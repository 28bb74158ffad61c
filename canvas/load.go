package canvas

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/halfblock/pixel"
)

// Load decodes an image file (PNG, JPEG, GIF, BMP, TIFF, WebP)
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadImage decodes path straight into an Image
func LoadImage(path string) (*Image, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image, translating its bounds to start at (0,0)
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.height; y++ {
		row := img.pix[y*img.width : (y+1)*img.width]
		for x := range row {
			row[x] = colorToRGB(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return img
}

// colorToRGB converts any color.Color to RGB, undoing alpha premultiplication
func colorToRGB(c color.Color) pixel.RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return pixel.RGB{}
	}
	return pixel.RGB{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
	}
}

// Scale resamples src to exactly w*h with Catmull-Rom
func Scale(src image.Image, w, h int) *Image {
	if w <= 0 || h <= 0 {
		return NewImage(0, 0)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// Fit scales src to the largest size within w*h that keeps its aspect ratio
func Fit(src image.Image, w, h int) *Image {
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 || w <= 0 || h <= 0 {
		return NewImage(0, 0)
	}

	fw, fh := w, sh*w/sw
	if fh > h {
		fw, fh = sw*h/sh, h
	}
	return Scale(src, max(fw, 1), max(fh, 1))
}
