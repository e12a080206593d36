// Package export writes rendered frames to disk as WebP images from a pool
// of encoder goroutines.
package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/HugoSmits86/nativewebp"
)

// Config controls where and how frames are written.
type Config struct {
	OutputDir string
	Workers   int
	// Progress, when set, is called from worker goroutines after every frame.
	Progress func(Result)
}

// Frame is one rendered image plus the clock state it was drawn at.
// Image must not be modified after Submit.
type Frame struct {
	Index     int
	Tick      int
	Direction int
	Image     *image.NRGBA
}

// Result holds the outcome of writing one frame.
type Result struct {
	Index     int
	Tick      int
	Direction int
	Path      string // relative to OutputDir
	Success   bool
	Error     string
}

// Writer encodes submitted frames concurrently.
type Writer struct {
	cfg     Config
	frames  chan Frame
	wg      sync.WaitGroup
	mu      sync.Mutex
	results []Result
}

// FrameName returns the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.webp", i)
}

// NewWriter creates OutputDir and starts cfg.Workers encoders.
func NewWriter(cfg Config) (*Writer, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", cfg.OutputDir, err)
	}
	w := &Writer{
		cfg:    cfg,
		frames: make(chan Frame, cfg.Workers*2),
	}
	for i := 0; i < cfg.Workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for f := range w.frames {
				res := w.write(f)
				w.mu.Lock()
				w.results = append(w.results, res)
				w.mu.Unlock()
				if w.cfg.Progress != nil {
					w.cfg.Progress(res)
				}
			}
		}()
	}
	return w, nil
}

// Submit queues a frame. It blocks while every worker is busy and the queue
// is full. Submit must not be called after Close.
func (w *Writer) Submit(f Frame) {
	w.frames <- f
}

// Close waits for queued frames and returns all results ordered by index.
func (w *Writer) Close() []Result {
	close(w.frames)
	w.wg.Wait()
	sort.Slice(w.results, func(i, j int) bool { return w.results[i].Index < w.results[j].Index })
	return w.results
}

func (w *Writer) write(f Frame) Result {
	res := Result{
		Index:     f.Index,
		Tick:      f.Tick,
		Direction: f.Direction,
		Path:      FrameName(f.Index),
	}
	if f.Image == nil {
		res.Error = "no image"
		return res
	}

	out, err := os.Create(filepath.Join(w.cfg.OutputDir, res.Path))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if err := encodeFrame(out, f.Image); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

// encodeFrame writes img to out and closes it. A failed close fails the
// frame, since buffered bytes may not have reached the disk.
func encodeFrame(out io.WriteCloser, img image.Image) error {
	if err := nativewebp.Encode(out, img, nil); err != nil {
		out.Close()
		return fmt.Errorf("WebP encode: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing frame: %w", err)
	}
	return nil
}
