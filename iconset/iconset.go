// Package iconset builds the full set of state-specific tray icons for
// one base icon: a recording and a processing variant per requested size,
// optionally bundled into ICO containers.
package iconset

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"stamp/log"
	"stamp/overlay"
	"stamp/raster"
)

const (
	StateRecording  = "recording"
	StateProcessing = "processing"
)

type Config struct {
	BasePath string
	OutDir   string
	Sizes    []int
	Opts     overlay.Options // geometry at overlay.RefSize
	ICO      bool            // bundle each state's sizes into a .ico
	GenBase  bool            // synthesize the base icon if missing
}

// Build generates every state icon and returns the paths written, in
// order. The base file is read once and never modified. On the first
// failure the error is returned along with the paths written so far.
func Build(cfg Config) ([]string, error) {
	if len(cfg.Sizes) == 0 {
		cfg.Sizes = []int{overlay.RefSize}
	}

	if cfg.GenBase {
		if _, err := os.Stat(cfg.BasePath); os.IsNotExist(err) {
			if err := raster.SavePNG(cfg.BasePath, Base(cfg.Sizes[0])); err != nil {
				return nil, fmt.Errorf("write base icon: %w", err)
			}
			log.Infof("synthesized base icon %s", cfg.BasePath)
		}
	}

	base, err := raster.Load(cfg.BasePath)
	if err != nil {
		return nil, err
	}

	var files []string
	byState := map[string][]image.Image{}
	for _, size := range cfg.Sizes {
		src := base
		if size != base.Bounds().Dx() || size != base.Bounds().Dy() {
			src = raster.Scale(base, size)
		}
		opts := cfg.Opts.ScaledTo(size)

		rec := raster.Clone(src)
		overlay.RecordingDot(rec, opts)
		proc := raster.Clone(src)
		overlay.Spinner(proc, opts)

		variants := []struct {
			state string
			img   *image.RGBA
		}{
			{StateRecording, rec},
			{StateProcessing, proc},
		}
		for _, v := range variants {
			path := filepath.Join(cfg.OutDir, fmt.Sprintf("icon-%s-%d.png", v.state, size))
			if err := raster.SavePNG(path, v.img); err != nil {
				return files, err
			}
			log.IconWritten(path, v.state, size)
			files = append(files, path)
			byState[v.state] = append(byState[v.state], v.img)
		}
	}

	if cfg.ICO {
		for _, state := range []string{StateRecording, StateProcessing} {
			path := filepath.Join(cfg.OutDir, fmt.Sprintf("icon-%s.ico", state))
			if err := raster.SaveICO(path, byState[state]); err != nil {
				return files, err
			}
			log.IconWritten(path, state, 0)
			files = append(files, path)
		}
	}

	log.RunSummary(cfg.BasePath, len(files))
	return files, nil
}

// Base renders the default tray glyph: a black disc with a transparent
// center hole. Used when the base icon is missing and synthesis is on.
func Base(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cx, cy := float64(size)/2, float64(size)/2
	r := float64(size)/2 - 1
	hole := float64(size) / 8
	for y := range size {
		for x := range size {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if d > hole && d <= r {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}
