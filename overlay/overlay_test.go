package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func grayBase(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gray := color.RGBA{R: 120, G: 120, B: 120, A: 255}
	draw.Draw(img, img.Bounds(), image.NewUniform(gray), image.Point{}, draw.Src)
	return img
}

func clone(img *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)
	return dst
}

func TestRecordingDotCenterColor(t *testing.T) {
	img := grayBase(32, 32)
	RecordingDot(img, Defaults())

	// Dot box anchors at (32-12-1, 1); center at (25, 7).
	px := img.RGBAAt(25, 7)
	if px.A != 255 {
		t.Fatalf("dot center not opaque: %v", px)
	}
	if px.R < 180 || px.G > 40 || px.B > 40 {
		t.Errorf("dot center not red-family: %v", px)
	}
}

func TestRecordingDotOutsideRegionUnchanged(t *testing.T) {
	img := grayBase(32, 32)
	before := clone(img)
	o := Defaults()
	RecordingDot(img, o)

	region := o.DotRegion(img.Bounds())
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if image.Pt(x, y).In(region) {
				continue
			}
			if img.RGBAAt(x, y) != before.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) changed outside dot region %v", x, y, region)
			}
		}
	}
	if img.RGBAAt(0, 31) != before.RGBAAt(0, 31) {
		t.Error("opposite corner pixel changed")
	}
}

func TestSpinnerOutsideRegionUnchanged(t *testing.T) {
	img := grayBase(32, 32)
	before := clone(img)
	o := Defaults()
	Spinner(img, o)

	region := o.SpinnerRegion(img.Bounds())
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if image.Pt(x, y).In(region) {
				continue
			}
			if img.RGBAAt(x, y) != before.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) changed outside spinner region %v", x, y, region)
			}
		}
	}
}

func TestSpinnerDrawsBlueInRegion(t *testing.T) {
	img := grayBase(32, 32)
	before := clone(img)
	o := Defaults()
	Spinner(img, o)

	region := o.SpinnerRegion(img.Bounds())
	found := false
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px == before.RGBAAt(x, y) {
				continue
			}
			if px.B > px.R && px.B > 180 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no blue-family spinner pixel inside region")
	}
}

func TestBottomRightCorner(t *testing.T) {
	img := grayBase(32, 32)
	before := clone(img)
	o := Defaults()
	o.Corner = BottomRight
	RecordingDot(img, o)

	region := o.DotRegion(img.Bounds())
	if region.Min.Y < 16 {
		t.Fatalf("bottom-right region not in bottom half: %v", region)
	}
	// Top-right corner must stay untouched.
	for y := 0; y < 16; y++ {
		for x := 16; x < 32; x++ {
			if img.RGBAAt(x, y) != before.RGBAAt(x, y) {
				t.Fatalf("top-right pixel (%d,%d) changed for bottom-right corner", x, y)
			}
		}
	}
}

func TestMarksConfinedAcrossSizes(t *testing.T) {
	for _, size := range []int{8, 16, 32, 64} {
		o := Defaults().ScaledTo(size)

		img := grayBase(size, size)
		before := clone(img)
		RecordingDot(img, o)
		region := o.DotRegion(img.Bounds())
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if img.RGBAAt(x, y) != before.RGBAAt(x, y) && !image.Pt(x, y).In(region) {
					t.Fatalf("size %d: dot pixel (%d,%d) outside region %v", size, x, y, region)
				}
			}
		}

		img = grayBase(size, size)
		before = clone(img)
		Spinner(img, o)
		region = o.SpinnerRegion(img.Bounds())
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if img.RGBAAt(x, y) != before.RGBAAt(x, y) && !image.Pt(x, y).In(region) {
					t.Fatalf("size %d: spinner pixel (%d,%d) outside region %v", size, x, y, region)
				}
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	a := grayBase(32, 32)
	b := grayBase(32, 32)
	o := Defaults()
	RecordingDot(a, o)
	RecordingDot(b, o)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("recording dot render not deterministic at byte %d", i)
		}
	}

	a = grayBase(32, 32)
	b = grayBase(32, 32)
	Spinner(a, o)
	Spinner(b, o)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("spinner render not deterministic at byte %d", i)
		}
	}
}

func TestScaledTo(t *testing.T) {
	o := Defaults()
	s := o.ScaledTo(64)
	if s.DotSize != 24 || s.SpinnerSize != 28 || s.Margin != 2 {
		t.Errorf("ScaledTo(64) = %+v", s)
	}

	// Strokes clamp at one pixel for tiny icons.
	tiny := o.ScaledTo(8)
	if tiny.DotStroke < 1 || tiny.SpinnerStroke < 1 {
		t.Errorf("ScaledTo(8) strokes below 1px: %+v", tiny)
	}
}

func TestParseCorner(t *testing.T) {
	if c, err := ParseCorner("top-right"); err != nil || c != TopRight {
		t.Errorf("ParseCorner(top-right) = %v, %v", c, err)
	}
	if c, err := ParseCorner("bottom-right"); err != nil || c != BottomRight {
		t.Errorf("ParseCorner(bottom-right) = %v, %v", c, err)
	}
	if _, err := ParseCorner("center"); err == nil {
		t.Error("ParseCorner(center) should fail")
	}
}
