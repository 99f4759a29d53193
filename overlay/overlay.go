// Package overlay draws state marks onto tray icon rasters: a red
// recording dot and a blue processing spinner, anchored to a corner.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// Mark colors are fixed; placement and size are configuration.
var (
	dotFill    = color.RGBA{R: 255, G: 20, B: 20, A: 255}
	dotOutline = color.RGBA{R: 180, A: 255}
	arcOuter   = color.RGBA{R: 30, G: 144, B: 255, A: 255}
	arcInner   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

type Corner int

const (
	TopRight Corner = iota
	BottomRight
)

func (c Corner) String() string {
	if c == BottomRight {
		return "bottom-right"
	}
	return "top-right"
}

func ParseCorner(s string) (Corner, error) {
	switch s {
	case "top-right":
		return TopRight, nil
	case "bottom-right":
		return BottomRight, nil
	}
	return TopRight, fmt.Errorf("unknown corner %q (want top-right or bottom-right)", s)
}

// RefSize is the icon size the default mark geometry is tuned for.
const RefSize = 32

// Options holds mark geometry in pixels at the target icon size.
type Options struct {
	Corner        Corner
	DotSize       float64 // recording dot diameter
	DotStroke     float64 // dot outline width, drawn inward
	SpinnerSize   float64 // spinner bounding box side
	SpinnerStroke float64 // outer arc width, drawn inward
	SpinnerInset  float64 // inner arc bounding box inset
	Margin        float64 // distance from the anchor corner
}

func Defaults() Options {
	return Options{
		Corner:        TopRight,
		DotSize:       12,
		DotStroke:     2,
		SpinnerSize:   14,
		SpinnerStroke: 3,
		SpinnerInset:  2,
		Margin:        1,
	}
}

// ScaledTo returns the options scaled proportionally from RefSize to size.
// Stroke widths never drop below one pixel.
func (o Options) ScaledTo(size int) Options {
	f := float64(size) / RefSize
	if f == 1 {
		return o
	}
	s := o
	s.DotSize *= f
	s.DotStroke = max(o.DotStroke*f, 1)
	s.SpinnerSize *= f
	s.SpinnerStroke = max(o.SpinnerStroke*f, 1)
	s.SpinnerInset *= f
	s.Margin *= f
	return s
}

func (o Options) anchor(b image.Rectangle, side float64) (x, y float64) {
	x = float64(b.Max.X) - side - o.Margin
	y = o.Margin
	if o.Corner == BottomRight {
		y = float64(b.Max.Y) - side - o.Margin
	}
	return x, y
}

func region(b image.Rectangle, x, y, side float64) image.Rectangle {
	// One extra pixel for antialiased edges.
	r := image.Rect(int(x), int(y), int(x+side)+1, int(y+side)+1)
	return r.Inset(-1).Intersect(b)
}

// DotRegion bounds the pixels the recording dot may touch.
func (o Options) DotRegion(b image.Rectangle) image.Rectangle {
	x, y := o.anchor(b, o.DotSize)
	return region(b, x, y, o.DotSize)
}

// SpinnerRegion bounds the pixels the spinner arcs may touch.
func (o Options) SpinnerRegion(b image.Rectangle) image.Rectangle {
	x, y := o.anchor(b, o.SpinnerSize)
	return region(b, x, y, o.SpinnerSize)
}

// RecordingDot draws the filled recording dot onto img in place.
func RecordingDot(img *image.RGBA, o Options) {
	dc := gg.NewContextForRGBA(img)
	x, y := o.anchor(img.Bounds(), o.DotSize)
	r := o.DotSize / 2
	cx, cy := x+r, y+r

	dc.DrawCircle(cx, cy, r)
	dc.SetColor(dotFill)
	dc.Fill()

	// Outline sits inside the dot bounds.
	dc.DrawCircle(cx, cy, r-o.DotStroke/2)
	dc.SetColor(dotOutline)
	dc.SetLineWidth(o.DotStroke)
	dc.Stroke()
}

// Spinner strokes the two partial-circle arcs on a transparent layer and
// alpha-composites the layer over img.
func Spinner(img *image.RGBA, o Options) {
	layer := image.NewRGBA(img.Bounds())
	dc := gg.NewContextForRGBA(layer)
	x, y := o.anchor(img.Bounds(), o.SpinnerSize)
	r := o.SpinnerSize / 2
	cx, cy := x+r, y+r

	dc.SetColor(arcOuter)
	dc.SetLineWidth(o.SpinnerStroke)
	dc.DrawArc(cx, cy, r-o.SpinnerStroke/2, gg.Radians(45), gg.Radians(315))
	dc.Stroke()

	innerW := max(o.SpinnerStroke-1, 1)
	dc.SetColor(arcInner)
	dc.SetLineWidth(innerW)
	dc.DrawArc(cx, cy, r-o.SpinnerInset-innerW/2, gg.Radians(45), gg.Radians(315))
	dc.Stroke()

	draw.Draw(img, img.Bounds(), layer, layer.Bounds().Min, draw.Over)
}
