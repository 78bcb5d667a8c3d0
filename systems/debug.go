package systems

import (
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// DrawDebug draws the optional overlays: the region grid, the charged area
// and each balloon's charge center.
func (r *Renderer) DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if r.flags.ShowGrid {
		r.drawGrid(e, screen)
	}
	if r.flags.ShowChargedArea {
		if sweater := sweaterOf(e.World); sweater != nil {
			drawPolygon(screen, sweater.ChargedArea, colornames.Yellow)
		}
	}
	if r.flags.ShowChargeCenter {
		tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
			b := components.Balloon.Get(entry)
			if !b.Visible {
				return
			}
			c := ChargeCenter(b)
			vector.FillCircle(screen, float32(c.X), float32(c.Y), 3, colornames.Black, true)
		})
	}
}

func (r *Renderer) drawGrid(e *ecs.ECS, screen *ebiten.Image) {
	area := r.phys.Area()
	h := float32(area.Height)
	w := float32(area.Width)

	// Column lines are drawn at the balloon center's x, so they mark where a
	// center has to be to change column.
	for col := playarea.LeftArm; col <= playarea.RightEdge; col++ {
		rng, ok := area.ColumnRange(col)
		if !ok || rng.Min < 0 || rng.Min > area.Width {
			continue
		}
		x := float32(rng.Min)
		vector.StrokeLine(screen, x, 0, x, h, 1, colornames.Gray, false)
	}
	for row := playarea.UpperPlayArea; row <= playarea.LowerPlayArea; row++ {
		rng, ok := area.RowRange(row)
		if !ok || rng.Min < 0 || rng.Min > area.Height {
			continue
		}
		y := float32(rng.Min)
		vector.StrokeLine(screen, 0, y, w, y, 1, colornames.Gray, false)
	}
	for _, loc := range JumpTargets {
		x, ok := area.Location(loc)
		if !ok {
			continue
		}
		vector.StrokeLine(screen, float32(x), 0, float32(x), h, 1, colornames.Orangered, false)
	}
}
