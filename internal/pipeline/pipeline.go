// Package pipeline wires a resolved config into a running scene: scene file,
// assets, renderer and registry, plus the headless frame export loop.
package pipeline

import (
	"log/slog"
	"path/filepath"

	"github.com/pkg/errors"

	"animscene/internal/config"
	"animscene/internal/export"
	"animscene/internal/raster"
	"animscene/internal/scene"
	"animscene/internal/scenefile"
	"animscene/internal/texture"
)

// Session is a loaded scene ready to tick.
type Session struct {
	Config   config.Config
	Scene    *scenefile.Scene
	Renderer *raster.Renderer
	Registry *scene.Registry
	Textures *texture.Index
}

// Open loads cfg.SceneFile and everything it references. cfg must already
// be resolved.
func Open(cfg config.Config, log *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	desc, err := scenefile.Load(cfg.SceneFile)
	if err != nil {
		return nil, err
	}
	if cfg.CycleLength > 0 {
		desc.Clock.CycleLength = cfg.CycleLength
	}
	if cfg.ReversalTarget != nil {
		target := *cfg.ReversalTarget
		desc.Clock.ReversalTarget = &target
	}

	idx := texture.BuildIndex(cfg.AssetDir)
	sc, err := scenefile.Build(desc, cfg.AssetDir, texture.NewCache(idx))
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", cfg.SceneFile)
	}

	r := raster.New(cfg.Width, cfg.Height, cfg.Supersample, sc.Camera)
	r.Light = sc.Light
	r.ClearColor = sc.ClearColor

	reg := scene.New(sc.Clock, r, scene.WithLogger(log))
	reg.Add(sc.Objects...)

	log.Info("Scene loaded",
		"scene", cfg.SceneFile,
		"objects", reg.Len(),
		"textures", idx.Len(),
		"cycle", sc.Clock.CycleLength(),
		"target", sc.Clock.ReversalTarget())

	return &Session{
		Config:   cfg,
		Scene:    sc,
		Renderer: r,
		Registry: reg,
		Textures: idx,
	}, nil
}

// Step runs one tick and returns the frame it drew along with the clock
// state the frame was drawn at.
func (s *Session) Step(index int) (export.Frame, []*scene.RecordError) {
	c := s.Registry.Clock()
	f := export.Frame{Index: index, Tick: c.Tick(), Direction: c.Direction()}
	errs := s.Registry.Tick()
	f.Image = s.Renderer.Image()
	return f, errs
}

// Summary counts the outcome of a Render call.
type Summary struct {
	Frames       int
	Written      int
	RecordErrors int
	Results      []export.Result
}

// Render ticks the scene n times, writes every frame to cfg.OutputDir and
// finishes with manifest.json. progress, when set, is called once per
// written frame from the encoder goroutines.
func (s *Session) Render(n int, progress func(export.Result)) (Summary, error) {
	w, err := export.NewWriter(export.Config{
		OutputDir: s.Config.OutputDir,
		Workers:   s.Config.Workers,
		Progress:  progress,
	})
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Frames: n}
	for i := 0; i < n; i++ {
		f, errs := s.Step(i)
		sum.RecordErrors += len(errs)
		w.Submit(f)
	}
	sum.Results = w.Close()
	for _, r := range sum.Results {
		if r.Success {
			sum.Written++
		}
	}

	c := s.Registry.Clock()
	m := export.Manifest{
		CycleLength:    c.CycleLength(),
		ReversalTarget: c.ReversalTarget(),
		Width:          s.Config.Width,
		Height:         s.Config.Height,
	}
	if err := export.WriteManifest(ManifestPath(s.Config), m, sum.Results); err != nil {
		return sum, errors.Wrap(err, "writing manifest")
	}
	return sum, nil
}

// ManifestPath is where Render writes the frame manifest.
func ManifestPath(cfg config.Config) string {
	return filepath.Join(cfg.OutputDir, "manifest.json")
}
