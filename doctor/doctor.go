// Package doctor runs non-interactive environment checks for icon
// generation: base icon decodes, output directory is writable, and the
// overlay renderer behaves.
package doctor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"stamp/overlay"
	"stamp/raster"
)

// Run executes the diagnostic checks and returns an exit code
// (0=all pass, 1=any fail).
func Run(basePath, outDir string) int {
	fmt.Println("stamp doctor - environment diagnostics")
	fmt.Println("======================================")

	allPass := true

	if !checkBase(basePath) {
		allPass = false
	}
	if !checkOutDir(outDir) {
		allPass = false
	}
	if !checkOverlay() {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkBase(path string) bool {
	fmt.Println()
	fmt.Println("[1/3] Base icon")

	img, err := raster.Load(path)
	if err != nil {
		fmt.Printf("  FAIL: cannot load %s: %v\n", path, err)
		return false
	}
	b := img.Bounds()
	fmt.Printf("  PASS: %s decodes to %dx%d RGBA\n", path, b.Dx(), b.Dy())
	return true
}

func checkOutDir(dir string) bool {
	fmt.Println()
	fmt.Println("[2/3] Output directory")

	probe := filepath.Join(dir, ".stamp-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0644); err != nil {
		fmt.Printf("  FAIL: %s not writable: %v\n", dir, err)
		return false
	}
	os.Remove(probe)
	fmt.Printf("  PASS: %s is writable\n", dir)
	return true
}

func checkOverlay() bool {
	fmt.Println()
	fmt.Println("[3/3] Overlay render")

	opts := overlay.Defaults()
	probe := image.NewRGBA(image.Rect(0, 0, overlay.RefSize, overlay.RefSize))
	draw.Draw(probe, probe.Bounds(), image.NewUniform(color.RGBA{R: 120, G: 120, B: 120, A: 255}), image.Point{}, draw.Src)
	before := raster.Clone(probe)
	overlay.RecordingDot(probe, opts)

	region := opts.DotRegion(probe.Bounds())
	changed := false
	for y := probe.Bounds().Min.Y; y < probe.Bounds().Max.Y; y++ {
		for x := probe.Bounds().Min.X; x < probe.Bounds().Max.X; x++ {
			if probe.RGBAAt(x, y) == before.RGBAAt(x, y) {
				continue
			}
			if !image.Pt(x, y).In(region) {
				fmt.Printf("  FAIL: pixel (%d,%d) changed outside the dot region %v\n", x, y, region)
				return false
			}
			changed = true
		}
	}
	if !changed {
		fmt.Println("  FAIL: recording dot drew nothing")
		return false
	}
	fmt.Printf("  PASS: dot confined to %v\n", region)
	return true
}
