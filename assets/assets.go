package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

// DefaultScene is the path of the built-in scene inside FS.
const DefaultScene = "scenes/base.tmx"

var (
	//go:embed all:scenes
	sceneFS embed.FS
)

// FS exposes the embedded scene files.
func FS() fs.FS {
	return sceneFS
}

// Scenes returns the embedded scene paths.
func Scenes() ([]string, error) {
	matches, err := fs.Glob(sceneFS, "scenes/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob scenes: %w", err)
	}
	return matches, nil
}
