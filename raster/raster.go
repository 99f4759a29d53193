// Package raster handles icon image I/O: decode to RGBA, PNG and ICO
// encode, and high-quality resizing.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// Load decodes the image at path and converts it to RGBA with the origin
// at (0,0). The file itself is never modified.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ToRGBA(src), nil
}

func ToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Clone returns an independent copy of img.
func Clone(img *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)
	return dst
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveICO bundles imgs into a single ICO container at path.
func SaveICO(path string, imgs []image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ico.EncodeAll(f, imgs); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Scale resizes src to fit a size-by-size square with CatmullRom
// resampling, centered and aspect-preserving. Square sources map edge
// to edge.
func Scale(src image.Image, size int) *image.RGBA {
	sb := src.Bounds()
	scale := math.Min(float64(size)/float64(sb.Dx()), float64(size)/float64(sb.Dy()))
	w := int(math.Round(float64(sb.Dx()) * scale))
	h := int(math.Round(float64(sb.Dy()) * scale))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	offX := (size - w) / 2
	offY := (size - h) / 2
	dr := image.Rect(offX, offY, offX+w, offY+h)
	xdraw.CatmullRom.Scale(dst, dr, src, sb, xdraw.Over, nil)
	return dst
}
