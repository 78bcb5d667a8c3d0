package sim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/balloons-static/assets"
	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/shared/leveldata"
)

// LoadScene reads the scene named by cfg, the embedded default when no file
// is set.
func LoadScene(cfg config.SceneConfig) (*leveldata.Scene, error) {
	if cfg.File == "" {
		scene, err := leveldata.LoadScene(assets.FS(), assets.DefaultScene)
		if err != nil {
			return nil, fmt.Errorf("embedded scene: %w", err)
		}
		return scene, nil
	}

	dir, name := filepath.Split(cfg.File)
	if dir == "" {
		dir = "."
	}
	scene, err := leveldata.LoadScene(os.DirFS(dir), name)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", cfg.File, err)
	}
	return scene, nil
}
