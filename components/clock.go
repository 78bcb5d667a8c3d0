package components

import "github.com/yohamta/donburi"

// ClockData is the singleton carrying the current tick's elapsed time.
type ClockData struct {
	Dt    float64 // seconds, as handed to Step
	Ticks uint64
}

var Clock = donburi.NewComponentType[ClockData]()
