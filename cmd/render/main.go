package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"animscene/internal/config"
	"animscene/internal/export"
	"animscene/internal/pipeline"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Path to the scene YAML file")
	assetDir := flag.String("assets", "", "Directory with models and textures (default: scene file directory)")
	outputDir := flag.String("output", "", "Output directory (default: <scene dir>/frames)")
	width := flag.Int("width", 0, "Frame width (default: 640)")
	height := flag.Int("height", 0, "Frame height (default: 480)")
	supersample := flag.Int("ss", 0, "Supersampling factor (default: 1)")
	frames := flag.Int("frames", 0, "Number of frames (default: two clock cycles)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneFile:   *sceneFile,
		AssetDir:    *assetDir,
		OutputDir:   *outputDir,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Frames:      *frames,
		Workers:     *workers,
	})

	session, err := pipeline.Open(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	n := cfg.FrameCount(session.Registry.Clock().CycleLength())
	fmt.Printf("Scene: %s (%d objects)\n", cfg.SceneFile, session.Registry.Len())
	fmt.Printf("Frames: %d at %dx%d, Workers: %d\n", n, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	bar := progressbar.Default(int64(n), "encoding")
	sum, err := session.Render(n, func(export.Result) { bar.Add(1) })
	bar.Finish()

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())
	fmt.Printf("Written: %d/%d\n", sum.Written, sum.Frames)
	if sum.RecordErrors > 0 {
		fmt.Printf("Skipped record applications: %d\n", sum.RecordErrors)
	}

	var failed []export.Result
	for _, r := range sum.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Printf("  frame %d: %s\n", r.Index, r.Error)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Manifest: %s\n", pipeline.ManifestPath(cfg))

	if len(failed) > 0 {
		os.Exit(1)
	}
}
