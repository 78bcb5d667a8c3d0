// Package playarea maps continuous positions in the play area to named
// columns, rows and landmarks. A single Map is shared by the physics
// predicates and by classification so that both always agree.
package playarea

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
)

// ErrUnclassified is returned when a point falls outside every configured
// row or column.
var ErrUnclassified = errors.New("position outside play area map")

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Length() float64 {
	return r.Max - r.Min
}

type regionRange struct {
	Region Region
	Range  Range
}

type rowRange struct {
	Row   Row
	Range Range
}

type location struct {
	Region Region
	X      float64
}

// Map is the static layout of named ranges. Tables are scanned in order and a
// later match replaces an earlier one, so shared boundaries belong to the
// later entry.
type Map struct {
	Width  float64
	Height float64

	balloonWidth  float64
	balloonHeight float64
	wallX         float64

	columns   []regionRange
	landmarks []regionRange
	locations []location
	rows      []rowRange

	// boundary locations of the balloon center
	LeftEdgeX  float64
	RightEdgeX float64
	AtWallX    float64
	TopY       float64
	BottomY    float64
}

// Offsets of the landmark bands from the object they describe.
const (
	veryCloseBand = 15.0
	nearBandEnd   = 55.0
	nearJump      = 35.0
)

// New derives the map from the scene geometry.
func New(scene *leveldata.Scene) *Map {
	inf := math.Inf(1)
	halfW := scene.BalloonWidth / 2
	halfH := scene.BalloonHeight / 2

	body := gamemath.PolygonBounds(scene.ChargedArea)
	bodyCenter := body.Center().X
	sweaterRight := scene.Sweater.MaxX
	wallX := scene.Wall.MinX

	leftEdge := halfW
	atWall := wallX - halfW
	rightEdge := scene.Width - halfW
	third := (atWall - sweaterRight) / 3

	m := &Map{
		Width:         scene.Width,
		Height:        scene.Height,
		balloonWidth:  scene.BalloonWidth,
		balloonHeight: scene.BalloonHeight,
		wallX:         wallX,
		LeftEdgeX:     leftEdge,
		RightEdgeX:    rightEdge,
		AtWallX:       atWall,
		TopY:          halfH,
		BottomY:       scene.Height - halfH,
	}

	m.columns = []regionRange{
		{LeftArm, Range{-inf, body.MinX}},
		{LeftSideOfSweater, Range{body.MinX, bodyCenter}},
		{RightSideOfSweater, Range{bodyCenter, body.MaxX}},
		{RightArm, Range{body.MaxX, sweaterRight}},
		{LeftPlayArea, Range{sweaterRight, sweaterRight + third}},
		{CenterPlayArea, Range{sweaterRight + third, sweaterRight + 2*third}},
		{RightPlayArea, Range{sweaterRight + 2*third, atWall}},
		{Wall, Range{atWall, wallX}},
		{RightEdge, Range{wallX, inf}},
	}

	m.landmarks = []regionRange{
		{AtVeryCloseToSweater, Range{sweaterRight, sweaterRight + veryCloseBand}},
		{AtNearSweater, Range{sweaterRight + veryCloseBand, sweaterRight + nearBandEnd}},
		{AtNearWall, Range{atWall - nearBandEnd, atWall - veryCloseBand}},
		{AtVeryCloseToWall, Range{atWall - veryCloseBand, atWall}},
		{AtNearRightEdge, Range{rightEdge - nearBandEnd, rightEdge - veryCloseBand}},
		{AtVeryCloseToRightEdge, Range{rightEdge - veryCloseBand, rightEdge}},
	}

	m.locations = []location{
		{AtLeftEdge, leftEdge},
		{AtSweater, bodyCenter},
		{AtNearSweater, sweaterRight + nearJump},
		{AtCenterPlayArea, (sweaterRight + atWall) / 2},
		{AtNearWall, atWall - nearJump},
		{AtWall, atWall},
		{AtNearRightEdge, rightEdge - nearJump},
		{AtRightEdge, rightEdge},
	}

	m.rows = []rowRange{
		{UpperPlayArea, Range{-inf, scene.Height / 3}},
		{CenterRow, Range{scene.Height / 3, 2 * scene.Height / 3}},
		{LowerPlayArea, Range{2 * scene.Height / 3, inf}},
	}

	return m
}

// Location returns the exact x coordinate of a critical location. Jumps set
// the balloon center to these values so equality checks against them hold.
func (m *Map) Location(r Region) (float64, bool) {
	for _, l := range m.locations {
		if l.Region == r {
			return l.X, true
		}
	}
	return 0, false
}

// ColumnRange returns the range of a column.
func (m *Map) ColumnRange(r Region) (Range, bool) {
	for _, c := range m.columns {
		if c.Region == r {
			return c.Range, true
		}
	}
	return Range{}, false
}

// LandmarkRange returns the range of a landmark.
func (m *Map) LandmarkRange(r Region) (Range, bool) {
	for _, l := range m.landmarks {
		if l.Region == r {
			return l.Range, true
		}
	}
	return Range{}, false
}

// RowRange returns the range of a row.
func (m *Map) RowRange(r Row) (Range, bool) {
	for _, row := range m.rows {
		if row.Row == r {
			return row.Range, true
		}
	}
	return Range{}, false
}

// InLandmark reports whether x is inside a landmark band or exactly on a
// critical location.
func (m *Map) InLandmark(x float64) bool {
	for _, l := range m.locations {
		if x == l.X {
			return true
		}
	}
	for _, l := range m.landmarks {
		if l.Range.Contains(x) {
			return true
		}
	}
	return false
}

// LandmarkContains reports whether x is inside the named landmark band.
func (m *Map) LandmarkContains(r Region, x float64) bool {
	rng, ok := m.LandmarkRange(r)
	return ok && rng.Contains(x)
}

// ArenaBounds returns the box the whole balloon must stay inside. The wall
// closes the right side when visible.
func (m *Map) ArenaBounds(wallVisible bool) gamemath.Rect {
	maxX := m.Width
	if wallVisible {
		maxX = m.wallX
	}
	return gamemath.Rect{MinX: 0, MinY: 0, MaxX: maxX, MaxY: m.Height}
}

// DragBounds returns the box the balloon's top-left corner is limited to.
func (m *Map) DragBounds(wallVisible bool) gamemath.Rect {
	a := m.ArenaBounds(wallVisible)
	return gamemath.Rect{MinX: a.MinX, MinY: a.MinY, MaxX: a.MaxX - m.balloonWidth, MaxY: a.MaxY - m.balloonHeight}
}

// WallX is the x coordinate of the wall's face.
func (m *Map) WallX() float64 {
	return m.wallX
}

// Classification is the discrete description of a point.
type Classification struct {
	// Column is the generic column after wall remapping.
	Column Region
	Row    Row
	// Landmark is the critical location or landmark band, RegionNone if the
	// point is in neither. It is not remapped.
	Landmark Region
	// Location is the landmark if there is one, otherwise the column, after
	// wall remapping. This is the key used by the description layer.
	Location Region
}

func (c Classification) String() string {
	return fmt.Sprintf("%s/%s", c.Location, c.Row)
}

// Classify maps p to its column, row and landmark. Critical locations are
// matched by exact equality first, then landmark bands, then columns.
func (m *Map) Classify(p gamemath.Vec, wallVisible bool) (Classification, error) {
	var c Classification

	critical := RegionNone
	for _, l := range m.locations {
		if p.X == l.X {
			critical = l.Region
		}
	}

	landmark := RegionNone
	for _, l := range m.landmarks {
		if l.Range.Contains(p.X) {
			landmark = l.Region
		}
	}

	for _, col := range m.columns {
		if col.Range.Contains(p.X) {
			c.Column = col.Region
		}
	}

	for _, row := range m.rows {
		if row.Range.Contains(p.Y) {
			c.Row = row.Row
		}
	}

	if c.Column == RegionNone || c.Row == RowNone {
		return Classification{}, fmt.Errorf("classify (%v, %v): %w", p.X, p.Y, ErrUnclassified)
	}

	c.Landmark = landmark
	if critical != RegionNone {
		c.Landmark = critical
	}

	c.Location = c.Column
	if c.Landmark != RegionNone {
		c.Location = c.Landmark
	}

	c.Column = remap(c.Column, wallVisible)
	c.Location = remap(c.Location, wallVisible)
	return c, nil
}

// remap resolves the overlap of the wall and the right edge of the play area.
// The generic right edge becomes the wall when the wall is shown. Without the
// wall, the wall regions and the generic right edge all read as the right play
// area. Right edge landmark bands are left alone either way.
func remap(r Region, wallVisible bool) Region {
	if wallVisible && r.InRightEdgeColumn() {
		return Wall
	}
	if !wallVisible && (r.InWallColumn() || r.InRightEdgeColumn()) {
		return RightPlayArea
	}
	return r
}
