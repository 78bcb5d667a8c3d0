package systems

import (
	"image/color"

	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/automoto/balloons-static/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = colornames.Lightsteelblue
	sweaterColor    = colornames.Mediumpurple
	wallColor       = colornames.Lightgoldenrodyellow
	plusColor       = colornames.Firebrick
	minusColor      = colornames.Royalblue
	stringColor     = colornames.Dimgray
)

var balloonColors = map[string]color.RGBA{
	"yellow": colornames.Gold,
	"green":  colornames.Limegreen,
}

const (
	chargeRadius     = 4
	wallChargeRows   = 8
	wallChargeInset  = 16
	displacementPx   = 6
	displacementTime = 0.25 // seconds to ease towards a new displacement
)

// Renderer draws the scene. Flags is shared with the viewer so that toggles
// take effect on the next frame.
type Renderer struct {
	phys  *Physics
	flags *config.FlagsConfig

	displacement float32
	target       float32
	tween        *gween.Tween
}

func NewRenderer(phys *Physics, flags *config.FlagsConfig) *Renderer {
	return &Renderer{phys: phys, flags: flags}
}

// Register adds every renderer to e in draw order.
func (r *Renderer) Register(e *ecs.ECS) {
	e.AddRenderer(ecs.LayerDefault, r.DrawBackground)
	e.AddRenderer(ecs.LayerDefault, r.DrawSweater)
	e.AddRenderer(ecs.LayerDefault, r.DrawWall)
	e.AddRenderer(ecs.LayerDefault, r.DrawBalloons)
	e.AddRenderer(ecs.LayerDefault, r.DrawDebug)
	e.AddRenderer(ecs.LayerDefault, r.DrawHUD)
}

func (r *Renderer) DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)
}

func (r *Renderer) DrawSweater(e *ecs.ECS, screen *ebiten.Image) {
	sweater := sweaterOf(e.World)
	if sweater == nil {
		return
	}
	b := sweater.Bounds
	vector.FillRect(screen, float32(b.MinX), float32(b.MinY), float32(b.Width()), float32(b.Height()), sweaterColor, false)

	for _, c := range sweater.Charges {
		switch r.flags.ShowCharges {
		case config.ShowChargesAll:
			drawPlus(screen, c.Location)
			if !c.Claimed {
				drawMinus(screen, gamemath.Add(c.Location, gamemath.V(leveldata.PointChargeRadius, 0)))
			}
		case config.ShowChargesDiff:
			if c.Claimed {
				drawPlus(screen, c.Location)
			}
		}
	}
}

// UpdateWallCharges eases the drawn wall displacement towards the strongest
// displacement induced by any visible balloon.
func (r *Renderer) UpdateWallCharges(e *ecs.ECS, dtSeconds float64) {
	var target float32
	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		b := components.Balloon.Get(entry)
		if b.Visible && b.InducingCharge {
			target = max(target, float32(b.ChargeDisplacement))
		}
	})

	if target != r.target {
		r.target = target
		r.tween = gween.New(r.displacement, target, displacementTime, ease.OutQuad)
	}
	if r.tween == nil {
		return
	}
	current, done := r.tween.Update(float32(dtSeconds))
	r.displacement = current
	if done {
		r.tween = nil
	}
}

func (r *Renderer) DrawWall(e *ecs.ECS, screen *ebiten.Image) {
	wall := wallOf(e.World)
	if wall == nil || !wall.Visible {
		return
	}
	b := wall.Bounds
	vector.FillRect(screen, float32(b.MinX), float32(b.MinY), float32(b.Width()), float32(b.Height()), wallColor, false)

	if r.flags.ShowCharges != config.ShowChargesAll {
		return
	}
	step := b.Height() / wallChargeRows
	shift := float64(r.displacement) * displacementPx
	for i := range wallChargeRows {
		y := b.MinY + step*(float64(i)+0.5)
		p := gamemath.V(b.MinX+wallChargeInset, y)
		drawPlus(screen, p)
		drawMinus(screen, gamemath.Add(p, gamemath.V(leveldata.PointChargeRadius+shift, 0)))
	}
}

func (r *Renderer) DrawBalloons(e *ecs.ECS, screen *ebiten.Image) {
	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		b := components.Balloon.Get(entry)
		if !b.Visible {
			return
		}
		r.drawBalloon(screen, b)
	})
}

func (r *Renderer) drawBalloon(screen *ebiten.Image, b *components.BalloonData) {
	clr, ok := balloonColors[b.Label]
	if !ok {
		clr = colornames.Lightcoral
	}
	radius := b.Width / 2
	cx := b.Location.X + radius
	cy := b.Location.Y + radius
	vector.FillCircle(screen, float32(cx), float32(cy), float32(radius), clr, true)
	vector.StrokeLine(screen, float32(cx), float32(cy+radius), float32(cx), float32(b.Location.Y+b.Height), 1, stringColor, true)

	switch r.flags.ShowCharges {
	case config.ShowChargesAll:
		for _, p := range leveldata.BalloonStarterCharges {
			at := gamemath.Add(b.Location, p)
			drawPlus(screen, at)
			drawMinus(screen, gamemath.Add(at, gamemath.V(leveldata.PointChargeRadius, 0)))
		}
		fallthrough
	case config.ShowChargesDiff:
		n := min(-b.Charge, len(leveldata.BalloonChargeSlots))
		for _, p := range leveldata.BalloonChargeSlots[:n] {
			drawMinus(screen, gamemath.Add(b.Location, p))
		}
	}

	if b.Dragged {
		bounds := b.Bounds()
		vector.StrokeRect(screen, float32(bounds.MinX), float32(bounds.MinY), float32(bounds.Width()), float32(bounds.Height()), 1, colornames.White, false)
	}
}

func drawPlus(screen *ebiten.Image, p gamemath.Vec) {
	x, y := float32(p.X), float32(p.Y)
	vector.FillCircle(screen, x, y, chargeRadius, plusColor, true)
	vector.StrokeLine(screen, x-2, y, x+2, y, 1, colornames.White, false)
	vector.StrokeLine(screen, x, y-2, x, y+2, 1, colornames.White, false)
}

func drawMinus(screen *ebiten.Image, p gamemath.Vec) {
	x, y := float32(p.X), float32(p.Y)
	vector.FillCircle(screen, x, y, chargeRadius, minusColor, true)
	vector.StrokeLine(screen, x-2, y, x+2, y, 1, colornames.White, false)
}

func drawPolygon(screen *ebiten.Image, poly []gamemath.Vec, clr color.Color) {
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
	}
}
