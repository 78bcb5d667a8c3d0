package systems

import (
	"math"

	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/tags"
	"github.com/yohamta/donburi"
)

// Read-only queries over a balloon's relation to the scene. None of them
// mutate the world.

func (p *Physics) NearSweater(b *components.BalloonData) bool {
	return p.area.LandmarkContains(playarea.AtNearSweater, b.Center().X)
}

func (p *Physics) NearWall(b *components.BalloonData) bool {
	return p.area.LandmarkContains(playarea.AtNearWall, b.Center().X)
}

func (p *Physics) NearRightEdge(b *components.BalloonData) bool {
	return p.area.LandmarkContains(playarea.AtNearRightEdge, b.Center().X)
}

// VeryCloseToObject reports whether the center is in any of the "very close"
// bands.
func (p *Physics) VeryCloseToObject(b *components.BalloonData) bool {
	x := b.Center().X
	return p.area.LandmarkContains(playarea.AtVeryCloseToSweater, x) ||
		p.area.LandmarkContains(playarea.AtVeryCloseToWall, x) ||
		p.area.LandmarkContains(playarea.AtVeryCloseToRightEdge, x)
}

// RightAtWallLocation reports whether the right side of the balloon is at the
// wall's x, whether or not the wall is visible.
func (p *Physics) RightAtWallLocation(b *components.BalloonData) bool {
	return b.Right() == p.area.WallX()
}

func (p *Physics) AtLeftEdge(b *components.BalloonData) bool {
	return b.Center().X == p.area.LeftEdgeX
}

func (p *Physics) AtRightEdge(b *components.BalloonData) bool {
	return b.Center().X == p.area.RightEdgeX
}

// TouchingWall relies on the clamp snapping the balloon to exactly AtWallX.
func (p *Physics) TouchingWall(w donburi.World, b *components.BalloonData) bool {
	return WallVisible(w) && b.Center().X == p.area.AtWallX
}

// StickingToWall reports whether a charged balloon rests against the wall on
// its own.
func (p *Physics) StickingToWall(w donburi.World, b *components.BalloonData) bool {
	return b.IsCharged() && p.TouchingWall(w, b) && !b.Dragged
}

// CenterInChargedArea reports whether the balloon's center is inside the
// sweater's charged area.
func (p *Physics) CenterInChargedArea(w donburi.World, b *components.BalloonData) bool {
	sweater := sweaterOf(w)
	return sweater != nil && sweater.InChargedArea(b.Center())
}

// StickingToSweater uses the center point and the charged area, a tighter
// test than OnSweater.
func (p *Physics) StickingToSweater(w donburi.World, b *components.BalloonData) bool {
	return b.IsCharged() && p.CenterInChargedArea(w, b)
}

// OnSweater reports whether the balloon's box touches the sweater's box.
// Candidates come from the collision space, the sweater object being one
// pixel larger than the sweater so that boxes sharing an edge share a cell.
func (p *Physics) OnSweater(w donburi.World, entry *donburi.Entry) bool {
	b := components.Balloon.Get(entry)
	sweater := sweaterOf(w)
	if sweater == nil {
		return false
	}
	if !entry.HasComponent(components.Object) {
		return b.Bounds().Intersects(sweater.Bounds)
	}

	obj := components.Object.Get(entry)
	if obj.Object == nil || obj.Space == nil {
		return b.Bounds().Intersects(sweater.Bounds)
	}
	if obj.X != b.Location.X || obj.Y != b.Location.Y {
		obj.MoveTo(b.Location)
	}
	if obj.Check(0, 0, tags.ResolvSweater) == nil {
		return false
	}
	return b.Bounds().Intersects(sweater.Bounds)
}

// DistanceToWall is the horizontal distance from the balloon's center to
// where the center would be when touching the wall.
func (p *Physics) DistanceToWall(b *components.BalloonData) float64 {
	return b.Center().X - p.area.AtWallX
}

// InUpperHalfOfPlayArea reports whether the center is above the lower row.
func (p *Physics) InUpperHalfOfPlayArea(b *components.BalloonData) bool {
	lower, _ := p.area.RowRange(playarea.LowerPlayArea)
	return b.Center().Y < lower.Min
}

// TouchingRightBoundary checks the wall when it is visible, the right edge of
// the play area otherwise.
func (p *Physics) TouchingRightBoundary(w donburi.World, b *components.BalloonData) bool {
	if WallVisible(w) {
		return b.Center().X == p.area.AtWallX
	}
	return b.Center().X == p.area.RightEdgeX
}

func (p *Physics) TouchingLeftBoundary(b *components.BalloonData) bool {
	return b.Center().X == p.area.LeftEdgeX
}

func (p *Physics) TouchingTopBoundary(b *components.BalloonData) bool {
	return b.Center().Y == p.area.TopY
}

func (p *Physics) TouchingBottomBoundary(b *components.BalloonData) bool {
	return b.Center().Y == p.area.BottomY
}

func (p *Physics) TouchingBoundary(w donburi.World, b *components.BalloonData) bool {
	return p.TouchingRightBoundary(w, b) || p.TouchingLeftBoundary(b) ||
		p.TouchingBottomBoundary(b) || p.TouchingTopBoundary(b)
}

func MovingHorizontally(b *components.BalloonData) bool { return b.Direction.Horizontal() }
func MovingVertically(b *components.BalloonData) bool   { return b.Direction.Vertical() }
func MovingDiagonally(b *components.BalloonData) bool   { return b.Direction.Diagonal() }
func MovingLeft(b *components.BalloonData) bool         { return b.Direction.Leftward() }
func MovingRight(b *components.BalloonData) bool        { return b.Direction.Rightward() }

// ProgressThroughRegion returns how far through its current column (moving
// horizontally or diagonally) or row (moving vertically) the balloon is, from
// 0 to 1 in the direction of travel. Open ended regions are cut at the arena.
func (p *Physics) ProgressThroughRegion(b *components.BalloonData) float64 {
	var (
		rng  playarea.Range
		ok   bool
		pos  float64
		size float64
	)
	switch {
	case b.Direction.Horizontal() || b.Direction.Diagonal():
		rng, ok = p.area.ColumnRange(b.Region.Column)
		pos, size = b.Center().X, p.area.Width
	case b.Direction.Vertical():
		rng, ok = p.area.RowRange(b.Region.Row)
		pos, size = b.Center().Y, p.area.Height
	}
	if !ok {
		return 0
	}

	rng.Min = math.Max(rng.Min, 0)
	rng.Max = math.Min(rng.Max, size)
	if rng.Length() <= 0 {
		return 0
	}

	progress := (pos - rng.Min) / rng.Length()
	if b.Direction == gamemath.DirectionLeft || b.Direction == gamemath.DirectionUp {
		progress = 1 - progress
	}
	return progress
}

// ChargeCenter is roughly the middle of the picked up charges.
func ChargeCenter(b *components.BalloonData) gamemath.Vec {
	return gamemath.Vec{X: b.Center().X, Y: b.Location.Y + leveldata.AverageSlotY()}
}

// WallTouchingCenter is the point where the balloon meets the wall.
func WallTouchingCenter(b *components.BalloonData) gamemath.Vec {
	return gamemath.Vec{X: b.Right(), Y: b.Center().Y}
}

// SweaterTouchingCenter is the point where the balloon meets the sweater.
// Right of the sweater that is the balloon's left side.
func (p *Physics) SweaterTouchingCenter(w donburi.World, b *components.BalloonData) gamemath.Vec {
	c := b.Center()
	if sweater := sweaterOf(w); sweater != nil && c.X > sweater.Bounds.MaxX {
		c.X = b.Location.X
	}
	return c
}

// DescribedPoint is the point of the balloon a description should talk about:
// the touching side against the wall or sweater, the wall itself when near it,
// and the center otherwise.
func (p *Physics) DescribedPoint(w donburi.World, entry *donburi.Entry) gamemath.Vec {
	b := components.Balloon.Get(entry)
	rightEdge, _ := p.area.ColumnRange(playarea.RightEdge)
	switch {
	case rightEdge.Contains(b.Right()):
		return WallTouchingCenter(b)
	case p.OnSweater(w, entry):
		return p.SweaterTouchingCenter(w, b)
	case p.NearWall(b):
		return gamemath.Vec{X: p.area.WallX(), Y: b.Center().Y}
	default:
		return b.Center()
	}
}

// DescribedRegion classifies the described point.
func (p *Physics) DescribedRegion(w donburi.World, entry *donburi.Entry) (playarea.Classification, error) {
	return p.area.Classify(p.DescribedPoint(w, entry), WallVisible(w))
}
