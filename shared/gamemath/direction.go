package gamemath

import "math"

// Direction is the discrete heading of a moving balloon.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionUpLeft
	DirectionUpRight
	DirectionDownLeft
	DirectionDownRight
)

var directionNames = [...]string{
	DirectionNone:      "NONE",
	DirectionUp:        "UP",
	DirectionDown:      "DOWN",
	DirectionLeft:      "LEFT",
	DirectionRight:     "RIGHT",
	DirectionUpLeft:    "UP_LEFT",
	DirectionUpRight:   "UP_RIGHT",
	DirectionDownLeft:  "DOWN_LEFT",
	DirectionDownRight: "DOWN_RIGHT",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionUpLeft:
		return DirectionDownRight
	case DirectionDownRight:
		return DirectionUpLeft
	case DirectionUpRight:
		return DirectionDownLeft
	case DirectionDownLeft:
		return DirectionUpRight
	}
	return DirectionNone
}

func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

func (d Direction) Vertical() bool {
	return d == DirectionUp || d == DirectionDown
}

func (d Direction) Diagonal() bool {
	return d == DirectionUpLeft || d == DirectionUpRight || d == DirectionDownLeft || d == DirectionDownRight
}

func (d Direction) Leftward() bool {
	return d == DirectionLeft || d == DirectionUpLeft || d == DirectionDownLeft
}

func (d Direction) Rightward() bool {
	return d == DirectionRight || d == DirectionUpRight || d == DirectionDownRight
}

// diagonalThreshold is the half width of each diagonal band.
const diagonalThreshold = 15 * math.Pi / 180

// Band edges of the folded angle atan2(|dx|, |dy|), zero pointing along the
// y axis. Vertical is [0, diagonalMin), diagonal is [diagonalMin, diagonalMax]
// and horizontal is (diagonalMax, pi/2]. Negating a move leaves |dx| and |dy|
// unchanged, so a move and its reverse always land in the same band.
const (
	diagonalMin = math.Pi/4 - diagonalThreshold
	diagonalMax = math.Pi/4 + diagonalThreshold
)

// ClassifyDirection returns the heading that takes a point from `from` to `to`.
// Positive y is down the screen. The band comes from the folded angle and the
// signs of dx and dy pick the side. Identical points have no direction.
func ClassifyDirection(to, from Vec) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return DirectionNone
	}

	fold := math.Atan2(math.Abs(dx), math.Abs(dy))

	switch {
	case fold < diagonalMin:
		if dy > 0 {
			return DirectionDown
		}
		return DirectionUp
	case fold <= diagonalMax:
		switch {
		case dy > 0 && dx > 0:
			return DirectionDownRight
		case dy > 0:
			return DirectionDownLeft
		case dx > 0:
			return DirectionUpRight
		default:
			return DirectionUpLeft
		}
	default:
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
}
