package leveldata

import "github.com/automoto/balloons-static/shared/gamemath"

// PointChargeRadius offsets the minus half of a neutral pair from its plus
// half.
const PointChargeRadius = 8.0

// BalloonStarterCharges are the neutral pairs every balloon carries, relative
// to its top-left corner. They never move and are never claimed.
var BalloonStarterCharges = []gamemath.Vec{
	{X: 44, Y: 50},
	{X: 88, Y: 50},
	{X: 44, Y: 140},
	{X: 88, Y: 140},
}

// BalloonChargeSlots are the places picked up charges appear on a balloon,
// relative to its top-left corner, in pickup order. They hug the upper left
// edge of the balloon outline.
var BalloonChargeSlots = []gamemath.Vec{
	{X: 14, Y: 70}, {X: 18, Y: 60}, {X: 14, Y: 90}, {X: 24, Y: 130},
	{X: 22, Y: 120}, {X: 14, Y: 79}, {X: 25, Y: 140}, {X: 18, Y: 108},
	{X: 19, Y: 50}, {X: 44, Y: 150}, {X: 16, Y: 100}, {X: 20, Y: 80},
	{X: 50, Y: 160}, {X: 34, Y: 140}, {X: 50, Y: 20}, {X: 30, Y: 30},
	{X: 22, Y: 72}, {X: 24, Y: 105}, {X: 20, Y: 110}, {X: 40, Y: 150},
	{X: 26, Y: 110}, {X: 30, Y: 115}, {X: 24, Y: 87}, {X: 24, Y: 60},
	{X: 24, Y: 40}, {X: 38, Y: 24}, {X: 30, Y: 80}, {X: 30, Y: 50},
	{X: 34, Y: 82}, {X: 32, Y: 130}, {X: 30, Y: 108}, {X: 30, Y: 50},
	{X: 40, Y: 94}, {X: 30, Y: 100}, {X: 35, Y: 90}, {X: 24, Y: 95},
	{X: 34, Y: 100}, {X: 35, Y: 40}, {X: 30, Y: 60}, {X: 32, Y: 72},
	{X: 30, Y: 105}, {X: 34, Y: 140}, {X: 30, Y: 120}, {X: 30, Y: 130},
	{X: 30, Y: 85}, {X: 34, Y: 77}, {X: 35, Y: 90}, {X: 40, Y: 85},
	{X: 34, Y: 90}, {X: 35, Y: 50}, {X: 46, Y: 34}, {X: 32, Y: 72},
	{X: 30, Y: 105}, {X: 34, Y: 140}, {X: 34, Y: 120}, {X: 30, Y: 60},
	{X: 30, Y: 85},
}

// AverageSlotY is the mean y offset of the charge slots. The charge center of
// a balloon sits this far below its top edge.
func AverageSlotY() float64 {
	var sum float64
	for _, s := range BalloonChargeSlots {
		sum += s.Y
	}
	return sum / float64(len(BalloonChargeSlots))
}
