package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// extRank orders formats when several files share a stem. Formats that can
// carry alpha win.
var extRank = map[string]int{
	".bmp":  1,
	".jpg":  2,
	".jpeg": 2,
	".tga":  3,
	".png":  4,
}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir and every subdirectory for image files.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		idx.add(path)
		return nil
	})
	return idx
}

func (idx *Index) add(path string) {
	ext := strings.ToLower(filepath.Ext(path))
	rank, ok := extRank[ext]
	if !ok {
		return
	}
	stem := stemOf(path)
	if existing, exists := idx.entries[stem]; exists {
		if extRank[strings.ToLower(filepath.Ext(existing))] >= rank {
			return
		}
	}
	idx.entries[stem] = path
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Directory prefixes and extensions in name are ignored.
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[stemOf(strings.ReplaceAll(name, "\\", "/"))]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
