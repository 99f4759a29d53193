package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"stamp/doctor"
	"stamp/iconset"
	"stamp/log"
	"stamp/overlay"
)

var version = "dev"

func main() {
	baseFlag := flag.String("base", "icon-32.png", "Base icon path")
	outDirFlag := flag.String("outdir", "", "Output directory (default: directory of the base icon)")
	cornerFlag := flag.String("corner", "top-right", "Overlay corner: top-right or bottom-right")
	dotFlag := flag.Int("dot", 12, "Recording dot diameter in pixels (at 32 px reference)")
	spinnerFlag := flag.Int("spinner", 14, "Spinner box size in pixels (at 32 px reference)")
	marginFlag := flag.Int("margin", 1, "Corner margin in pixels (at 32 px reference)")
	sizesFlag := flag.String("sizes", "32", "Comma-separated output sizes")
	icoFlag := flag.Bool("ico", false, "Also bundle each state's sizes into a .ico")
	genBaseFlag := flag.Bool("genbase", false, "Synthesize a default base icon if the base is missing")
	doctorFlag := flag.Bool("doctor", false, "Run environment diagnostics and exit")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("stamp %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer log.Close()

	outDir := *outDirFlag
	if outDir == "" {
		outDir = filepath.Dir(*baseFlag)
	}

	if *doctorFlag {
		code := doctor.Run(*baseFlag, outDir)
		log.Close()
		os.Exit(code)
	}

	corner, err := overlay.ParseCorner(*cornerFlag)
	if err != nil {
		fail(err)
	}
	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fail(err)
	}

	opts := overlay.Defaults()
	opts.Corner = corner
	opts.DotSize = float64(*dotFlag)
	opts.SpinnerSize = float64(*spinnerFlag)
	opts.Margin = float64(*marginFlag)

	files, err := iconset.Build(iconset.Config{
		BasePath: *baseFlag,
		OutDir:   outDir,
		Sizes:    sizes,
		Opts:     opts,
		ICO:      *icoFlag,
		GenBase:  *genBaseFlag,
	})
	if err != nil {
		log.Errorf("icon generation failed: %v", err)
		fail(err)
	}

	for _, f := range files {
		fmt.Printf("✓ Created %s\n", f)
	}
	fmt.Println("✓ All state icons created")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	log.Close()
	os.Exit(1)
}
