package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// ErrMissingObject is returned when a required scene object is absent.
var ErrMissingObject = errors.New("missing scene object")

// Object group and object names used in scene TMX files.
const (
	groupSweater = "Sweater"
	groupWall    = "Wall"
	groupSpawns  = "BalloonSpawn"

	objectSweaterBounds = "bounds"
	objectChargedArea   = "chargedArea"
	objectWall          = "wall"
)

// LoadScene parses a TMX file into a Scene. It takes an fs.FS so callers can
// pass the embedded assets or os.DirFS for a scene on disk.
func LoadScene(fsys fs.FS, tmxPath string) (*Scene, error) {
	sceneMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	s := &Scene{
		Width:  float64(sceneMap.Width * sceneMap.TileWidth),
		Height: float64(sceneMap.Height * sceneMap.TileHeight),
	}

	var haveSweater, haveArea, haveWall bool
	for _, og := range sceneMap.ObjectGroups {
		switch og.Name {
		case groupSweater:
			for _, o := range og.Objects {
				switch o.Name {
				case objectSweaterBounds:
					s.Sweater = gamemath.RectXYWH(o.X, o.Y, o.Width, o.Height)
					haveSweater = true
				case objectChargedArea:
					if len(o.Polygons) == 0 || o.Polygons[0].Points == nil {
						continue
					}
					for _, p := range *o.Polygons[0].Points {
						s.ChargedArea = append(s.ChargedArea, gamemath.Vec{X: o.X + p.X, Y: o.Y + p.Y})
					}
					haveArea = len(s.ChargedArea) >= 3
				}
			}
		case groupWall:
			for _, o := range og.Objects {
				if o.Name == objectWall {
					s.Wall = gamemath.RectXYWH(o.X, o.Y, o.Width, o.Height)
					haveWall = true
				}
			}
		case groupSpawns:
			for _, o := range og.Objects {
				s.Spawns = append(s.Spawns, BalloonSpawn{
					Label:   o.Name,
					X:       o.X,
					Y:       o.Y,
					Visible: o.Properties.GetBool("visible"),
				})
				// spawn rectangles carry the balloon size
				s.BalloonWidth = o.Width
				s.BalloonHeight = o.Height
			}
		}
	}

	switch {
	case !haveSweater:
		return nil, fmt.Errorf("%s: sweater %s: %w", tmxPath, objectSweaterBounds, ErrMissingObject)
	case !haveArea:
		return nil, fmt.Errorf("%s: sweater %s: %w", tmxPath, objectChargedArea, ErrMissingObject)
	case !haveWall:
		return nil, fmt.Errorf("%s: %s: %w", tmxPath, objectWall, ErrMissingObject)
	case len(s.Spawns) == 0:
		return nil, fmt.Errorf("%s: %s: %w", tmxPath, groupSpawns, ErrMissingObject)
	}

	s.SweaterCharges = ChargeGrid(gamemath.PolygonBounds(s.ChargedArea))
	return s, nil
}
