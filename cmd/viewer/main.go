// Command viewer shows a scene in a window and animates it live.
//
// Keys: J/L rotate, A/D strafe, W/S push in/out, I/K pedestal, Space resets
// the camera, P pauses the animation, Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"animscene/internal/camera"
	"animscene/internal/config"
	"animscene/internal/pipeline"
	"animscene/internal/postprocess"
)

var keyNames = map[string]ebiten.Key{
	"J":     ebiten.KeyJ,
	"L":     ebiten.KeyL,
	"A":     ebiten.KeyA,
	"D":     ebiten.KeyD,
	"W":     ebiten.KeyW,
	"S":     ebiten.KeyS,
	"I":     ebiten.KeyI,
	"K":     ebiten.KeyK,
	"Space": ebiten.KeySpace,
}

type viewer struct {
	session  *pipeline.Session
	cam      *camera.Camera
	bindings map[ebiten.Key]camera.Action
	frame    *ebiten.Image
	paused   bool
}

func newViewer(s *pipeline.Session) *viewer {
	v := &viewer{
		session:  s,
		cam:      s.Scene.Camera,
		bindings: make(map[ebiten.Key]camera.Action),
	}
	for name, action := range camera.DefaultBindings {
		if key, ok := keyNames[name]; ok {
			v.bindings[key] = action
		}
	}
	return v
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
	}
	for key, action := range v.bindings {
		if action == camera.ResetView {
			if inpututil.IsKeyJustPressed(key) {
				v.cam.Do(action)
			}
			continue
		}
		if ebiten.IsKeyPressed(key) {
			v.cam.Do(action)
		}
	}

	if v.paused {
		v.session.Registry.Redraw()
		return nil
	}
	v.session.Registry.Tick()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	img := postprocess.ToRGBA(v.session.Renderer.Image())
	if v.frame == nil {
		b := img.Bounds()
		v.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	v.frame.WritePixels(img.Pix)
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.session.Renderer.Size()
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Path to the scene YAML file")
	assetDir := flag.String("assets", "", "Directory with models and textures (default: scene file directory)")
	width := flag.Int("width", 0, "Window width (default: 640)")
	height := flag.Int("height", 0, "Window height (default: 480)")
	supersample := flag.Int("ss", 0, "Supersampling factor (default: 1)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		SceneFile:   *sceneFile,
		AssetDir:    *assetDir,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
	})

	session, err := pipeline.Open(cfg, slog.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("animscene: " + cfg.SceneFile)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(newViewer(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
