// Command texdump lists the textures found under an asset directory, the
// file each name resolves to and its decoded size.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"animscene/internal/postprocess"
	"animscene/internal/texture"
)

func main() {
	base := "."
	if len(os.Args) > 1 {
		base = os.Args[1]
	}

	idx := texture.BuildIndex(base)
	cache := texture.NewCache(idx)

	var names []string
	filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if p, ok := idx.ResolvePath(name); ok && p == path {
			names = append(names, name)
		}
		return nil
	})
	sort.Strings(names)

	errors := 0
	for _, name := range names {
		path, _ := idx.ResolvePath(name)
		img, err := cache.Resolve(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
			continue
		}
		b := img.Bounds()
		alpha := "opaque"
		if !postprocess.Opaque(img) {
			alpha = "alpha"
		}
		fmt.Printf("OK  %-24s %4dx%-4d %-6s %s\n", strings.ToLower(name), b.Dx(), b.Dy(), alpha, path)
	}

	fmt.Printf("\n%d textures indexed.\n", idx.Len())
	if errors > 0 {
		fmt.Printf("Done with %d error(s).\n", errors)
		os.Exit(1)
	}
}
