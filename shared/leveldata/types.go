// Package leveldata describes the static scene geometry: arena size, sweater,
// charged area, wall and balloon spawns. It has no dependencies on donburi or
// resolv, only plain data.
package leveldata

import "github.com/automoto/balloons-static/shared/gamemath"

// SweaterChargeCount is the number of claimable charges on the sweater.
const SweaterChargeCount = 57

// sweaterChargeRows lays out the 57 sweater charges row by row.
var sweaterChargeRows = []int{8, 8, 8, 9, 8, 8, 8}

// Scene holds everything the simulation needs to know about the layout.
type Scene struct {
	Width  float64
	Height float64

	Sweater     gamemath.Rect
	ChargedArea []gamemath.Vec
	Wall        gamemath.Rect

	BalloonWidth  float64
	BalloonHeight float64
	Spawns        []BalloonSpawn

	SweaterCharges []gamemath.Vec
}

// BalloonSpawn is the initial top-left location of one balloon.
type BalloonSpawn struct {
	Label   string
	X, Y    float64
	Visible bool
}

// Default returns the built-in scene. The embedded TMX file describes the same
// layout.
func Default() *Scene {
	s := &Scene{
		Width:   768,
		Height:  504,
		Sweater: gamemath.RectXYWH(72, 30, 296, 444),
		ChargedArea: []gamemath.Vec{
			{X: 150, Y: 140},
			{X: 290, Y: 140},
			{X: 296, Y: 300},
			{X: 290, Y: 430},
			{X: 150, Y: 430},
			{X: 144, Y: 300},
		},
		Wall:          gamemath.RectXYWH(688, 0, 80, 504),
		BalloonWidth:  134,
		BalloonHeight: 222,
		Spawns: []BalloonSpawn{
			{Label: "yellow", X: 440, Y: 100, Visible: true},
			{Label: "green", X: 380, Y: 130, Visible: false},
		},
	}
	s.SweaterCharges = ChargeGrid(gamemath.PolygonBounds(s.ChargedArea))
	return s
}

// ChargeGrid spreads SweaterChargeCount charges over bounds, inset so that
// every charge sits well inside the charged area.
func ChargeGrid(bounds gamemath.Rect) []gamemath.Vec {
	const insetX, insetY = 14.0, 20.0

	minX, maxX := bounds.MinX+insetX, bounds.MaxX-insetX
	minY, maxY := bounds.MinY+insetY, bounds.MaxY-insetY
	rowStep := (maxY - minY) / float64(len(sweaterChargeRows)-1)

	charges := make([]gamemath.Vec, 0, SweaterChargeCount)
	for row, count := range sweaterChargeRows {
		y := minY + float64(row)*rowStep
		colStep := (maxX - minX) / float64(count-1)
		for col := 0; col < count; col++ {
			charges = append(charges, gamemath.Vec{X: minX + float64(col)*colStep, Y: y})
		}
	}
	return charges
}

// SweaterCenter is the point sweater forces are measured from.
func (s *Scene) SweaterCenter() gamemath.Vec {
	return gamemath.PolygonBounds(s.ChargedArea).Center()
}

// Spawn returns the spawn with the given label.
func (s *Scene) Spawn(label string) (BalloonSpawn, bool) {
	for _, sp := range s.Spawns {
		if sp.Label == label {
			return sp, true
		}
	}
	return BalloonSpawn{}, false
}
