package components

import (
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/yohamta/donburi"
)

// ContactFlags are the boolean relations between a balloon and the scene
// that consumers care about when they change.
type ContactFlags struct {
	NearSweater       bool
	NearWall          bool
	NearRightEdge     bool
	StickingToSweater bool
	OnSweater         bool
	TouchingWall      bool
}

// VelocityBuffer is a fixed length ring of squared per-axis velocities.
type VelocityBuffer struct {
	X, Y []float64
	next int
}

// NewVelocityBuffer returns a zeroed buffer with n slots per axis.
func NewVelocityBuffer(n int) VelocityBuffer {
	return VelocityBuffer{X: make([]float64, n), Y: make([]float64, n)}
}

// Push stores the squares of vx and vy, overwriting the oldest sample.
func (b *VelocityBuffer) Push(vx, vy float64) {
	if len(b.X) == 0 {
		return
	}
	b.X[b.next] = vx * vx
	b.Y[b.next] = vy * vy
	b.next = (b.next + 1) % len(b.X)
}

// Mean returns the average of each axis over every slot, including slots
// that were never written.
func (b *VelocityBuffer) Mean() (x, y float64) {
	if len(b.X) == 0 {
		return 0, 0
	}
	for i := range b.X {
		x += b.X[i]
		y += b.Y[i]
	}
	n := float64(len(b.X))
	return x / n, y / n
}

// Reset zeroes every slot.
func (b *VelocityBuffer) Reset() {
	clear(b.X)
	clear(b.Y)
	b.next = 0
}

type BalloonData struct {
	Label  string
	Width  float64
	Height float64

	// Location is the top-left corner.
	Location     gamemath.Vec
	OldLocation  gamemath.Vec
	HasOldLoc    bool
	Velocity     gamemath.Vec
	DragVelocity gamemath.Vec
	Samples      VelocityBuffer

	// Charge is never positive. It equals -len(Claimed).
	Charge  int
	Claimed []int // indices into the sweater's charges, in pickup order

	Dragged   bool
	Visible   bool
	Direction gamemath.Direction

	// milliseconds
	TimeSinceRelease  float64
	LocationOnRelease gamemath.Vec

	InducingCharge     bool
	ChargeDisplacement float64

	Region   playarea.Classification
	Contacts ContactFlags
	Previous ContactFlags

	// Other is the paired balloon. The reference is non-owning.
	Other donburi.Entity

	InitialLocation gamemath.Vec
	InitialVisible  bool
}

// Center returns the center of the balloon's bounding box.
func (b *BalloonData) Center() gamemath.Vec {
	return gamemath.Vec{X: b.Location.X + b.Width/2, Y: b.Location.Y + b.Height/2}
}

// SetCenter moves the balloon so that its center is at c.
func (b *BalloonData) SetCenter(c gamemath.Vec) {
	b.Location = gamemath.Vec{X: c.X - b.Width/2, Y: c.Y - b.Height/2}
}

func (b *BalloonData) Right() float64 {
	return b.Location.X + b.Width
}

func (b *BalloonData) Bounds() gamemath.Rect {
	return gamemath.RectXYWH(b.Location.X, b.Location.Y, b.Width, b.Height)
}

// IsCharged reports whether the balloon carries any picked up charge.
func (b *BalloonData) IsCharged() bool {
	return b.Charge < 0
}

var Balloon = donburi.NewComponentType[BalloonData]()
