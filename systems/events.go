package systems

import (
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Events are queued while a tick runs and delivered by
// events.ProcessAllEvents once the physics update is complete.

type ChargeTransferred struct {
	Balloon donburi.Entity
	Label   string
	// Index of the claimed sweater charge.
	Index         int
	BalloonCharge int
	SweaterCharge int
}

type LocationChanged struct {
	Balloon   donburi.Entity
	Label     string
	From, To  gamemath.Vec
	Direction gamemath.Direction
	Region    playarea.Classification
}

// ContactChanged fires when any of the balloon's contact flags flips.
type ContactChanged struct {
	Balloon  donburi.Entity
	Label    string
	Previous components.ContactFlags
	Current  components.ContactFlags
}

type BalloonReleased struct {
	Balloon  donburi.Entity
	Label    string
	Location gamemath.Vec
}

type BalloonReset struct {
	Balloon donburi.Entity
	Label   string
}

type WallVisibilityChanged struct {
	Visible bool
}

var (
	ChargeTransferredEvent     = events.NewEventType[ChargeTransferred]()
	LocationChangedEvent       = events.NewEventType[LocationChanged]()
	ContactChangedEvent        = events.NewEventType[ContactChanged]()
	BalloonReleasedEvent       = events.NewEventType[BalloonReleased]()
	BalloonResetEvent          = events.NewEventType[BalloonReset]()
	WallVisibilityChangedEvent = events.NewEventType[WallVisibilityChanged]()
)
