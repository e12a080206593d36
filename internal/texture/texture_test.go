package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	switch filepath.Ext(path) {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tga":
		err = tga.Encode(f, img)
	default:
		_, err = f.WriteString("not an image")
	}
	if err != nil {
		t.Fatal(err)
	}
}

func TestIndexPrefersAlphaFormats(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "Plane.bmp"), color.NRGBA{255, 0, 0, 255})
	writeImage(t, filepath.Join(dir, "textures", "plane.png"), color.NRGBA{0, 255, 0, 255})
	writeImage(t, filepath.Join(dir, "flag.tga"), color.NRGBA{0, 0, 255, 255})
	writeImage(t, filepath.Join(dir, "readme.txt"), color.NRGBA{})

	idx := BuildIndex(dir)
	if idx.Len() != 2 {
		t.Fatalf("Len = %d, want 2", idx.Len())
	}
	path, ok := idx.ResolvePath(`models\PLANE.jpg`)
	if !ok || filepath.Ext(path) != ".png" {
		t.Errorf("plane resolved to %q, %v; want the png", path, ok)
	}
	if _, ok := idx.ResolvePath("missing"); ok {
		t.Error("missing texture resolved")
	}
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "flag.tga"), color.NRGBA{0, 0, 255, 255})
	writeImage(t, filepath.Join(dir, "fan.bmp"), color.NRGBA{10, 20, 30, 255})
	cache := NewCache(BuildIndex(dir))

	img, err := cache.Resolve("flag")
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("flag pixel = %v", got)
	}

	img, err = cache.Resolve("FAN.png")
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("fan pixel = %v", got)
	}

	again, _ := cache.Resolve("fan")
	if again != img {
		t.Error("second resolve did not hit the cache")
	}

	if _, err := cache.Resolve("nope"); err == nil {
		t.Error("expected error for unknown texture")
	}
}

func TestCacheRemembersDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := NewCache(BuildIndex(dir))
	if _, err := cache.Resolve("broken"); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := cache.Resolve("broken"); err == nil {
		t.Fatal("expected cached decode error")
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "crate.png"), color.NRGBA{1, 2, 3, 255})
	cache := NewCache(BuildIndex(dir))

	var wg sync.WaitGroup
	results := make([]*image.NRGBA, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = cache.Resolve("crate")
		}(i)
	}
	wg.Wait()
	for i, img := range results {
		if img == nil || img != results[0] {
			t.Errorf("result %d differs", i)
		}
	}
}

func TestLoadTextureUnknownExtension(t *testing.T) {
	if _, err := LoadTexture(filepath.Join(t.TempDir(), "a.gif")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
