package systems

import (
	"fmt"
	"math"

	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/fonts"
	"github.com/automoto/balloons-static/shared/describe"
	"github.com/automoto/balloons-static/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

const (
	// HUDHeight is the strip below the play area the HUD is drawn in.
	HUDHeight  = 96
	hudMargin  = 8
	hudLineGap = 16
)

var hudDrawOp = &text.DrawOptions{}

// DrawHUD renders the charge readout and the key help below the play area.
func (r *Renderer) DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	area := r.phys.Area()
	top := float32(area.Height)
	vector.FillRect(screen, 0, top, float32(area.Width), HUDHeight, colornames.Darkslategray, false)

	lines := make([]string, 0, 5)
	if sweater := sweaterOf(e.World); sweater != nil {
		lines = append(lines, sweaterLine(sweater))
	}
	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		b := components.Balloon.Get(entry)
		if !b.Visible {
			return
		}
		lines = append(lines, r.balloonLine(e.World, entry, b))
	})
	if r.flags.KeyData {
		lines = append(lines, "drag, or space + arrows (shift: fine)  tab focus  J+W/S/N/M jump  W wall  T two  R reset")
	}
	if !r.flags.HideChargeControls {
		lines = append(lines, fmt.Sprintf("C charges: %s  G grid  A area  X center", r.flags.ShowCharges))
	}

	for i, l := range lines {
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Translate(hudMargin, float64(top)+hudMargin+float64(i*hudLineGap))
		hudDrawOp.ColorScale.Reset()
		hudDrawOp.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, l, fonts.HUD.Get(), hudDrawOp)
	}
}

func (r *Renderer) balloonLine(w donburi.World, entry *donburi.Entry, b *components.BalloonData) string {
	pos, neg := describe.VisibleCharges(r.flags.ShowCharges, b.Charge)
	where := "?"
	if c, err := r.phys.DescribedRegion(w, entry); err == nil {
		where = c.String()
	}
	speed := describe.SpeedFromVelocity(math.Hypot(b.Velocity.X, b.Velocity.Y))
	return fmt.Sprintf("%s: %d (%s)  +%d -%d  %s  speed %s",
		b.Label, b.Charge, describe.RelativeCharge(b.Charge), pos, neg, where, speed)
}

func sweaterLine(sweater *components.SweaterData) string {
	net := sweater.NetCharge()
	return fmt.Sprintf("sweater: +%d (%s)  %d left to pick up", net, describe.RelativeCharge(net), sweater.Remaining())
}
