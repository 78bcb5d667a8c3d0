package scenes

import (
	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/sim"
	"github.com/automoto/balloons-static/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// jumpKeys are pressed together with J.
var jumpKeys = map[ebiten.Key]playarea.Region{
	ebiten.KeyW: playarea.AtWall,
	ebiten.KeyS: playarea.AtNearSweater,
	ebiten.KeyN: playarea.AtNearWall,
	ebiten.KeyM: playarea.AtCenterPlayArea,
}

var chargeModes = []string{config.ShowChargesAll, config.ShowChargesNone, config.ShowChargesDiff}

func (bs *BalloonScene) handleInput() {
	bs.handlePointer()
	bs.handleKeyboardDrag()
	bs.handleJumps()
	bs.handleToggles()
}

// handlePointer drags the topmost balloon under the cursor.
func (bs *BalloonScene) handlePointer() {
	cx, cy := ebiten.CursorPosition()
	cursor := gamemath.V(float64(cx), float64(cy))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if bs.grabbed != nil {
			bs.release()
		}
		balloons := bs.sim.Balloons()
		for i := len(balloons) - 1; i >= 0; i-- {
			b := balloons[i]
			if !b.Data().Visible || !b.Data().Bounds().Contains(cursor) {
				continue
			}
			bs.grab(b, false)
			bs.focus = i
			bs.grabOffset = gamemath.Sub(cursor, b.Data().Location)
			return
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if bs.grabbed != nil && !bs.keyboard {
			bs.release()
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if bs.grabbed != nil && !bs.keyboard {
			bs.grabbed.DragTo(gamemath.Sub(cursor, bs.grabOffset))
		}
	}
}

// handleKeyboardDrag lets space pick up the focused balloon, tab move focus
// and the arrow keys move a held balloon.
func (bs *BalloonScene) handleKeyboardDrag() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && bs.grabbed == nil {
		bs.cycleFocus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if bs.grabbed != nil {
			bs.release()
		} else if b, ok := bs.focused(); ok {
			bs.grab(b, true)
		}
	}
	if bs.grabbed == nil || !bs.keyboard {
		return
	}
	bs.grabbed.Nudge(systems.KeyState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
	})
}

func (bs *BalloonScene) handleJumps() {
	if !ebiten.IsKeyPressed(ebiten.KeyJ) || bs.grabbed == nil {
		return
	}
	for key, target := range jumpKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := bs.grabbed.Jump(target); err != nil {
			bs.log.Warn("jump failed", zap.Stringer("target", target), zap.Error(err))
		}
	}
}

func (bs *BalloonScene) handleToggles() {
	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		return
	}
	f := &bs.cfg.Flags
	changed := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		f.WallVisible = !f.WallVisible
		bs.sim.SetWallVisible(f.WallVisible)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		if bs.grabbed != nil {
			bs.release()
		}
		bs.sim.SetTwoBalloons(!bs.sim.TwoBalloons())
		bs.focus = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyC) && !f.HideChargeControls:
		f.ShowCharges = nextChargeMode(f.ShowCharges)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		f.ShowGrid = !f.ShowGrid
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		f.ShowChargedArea = !f.ShowChargedArea
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		f.ShowChargeCenter = !f.ShowChargeCenter
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		bs.grabbed = nil
		bs.sim.Reset()
		changed = false
	default:
		changed = false
	}
	if changed {
		bs.saveSettings()
	}
}

func (bs *BalloonScene) grab(b sim.Balloon, keyboard bool) {
	b.Grab()
	bs.grabbed = &b
	bs.keyboard = keyboard
}

func (bs *BalloonScene) release() {
	bs.grabbed.Release()
	bs.grabbed = nil
	bs.keyboard = false
}

func (bs *BalloonScene) focused() (sim.Balloon, bool) {
	balloons := bs.sim.Balloons()
	if bs.focus >= len(balloons) || !balloons[bs.focus].Data().Visible {
		bs.focus = 0
	}
	if len(balloons) == 0 {
		return sim.Balloon{}, false
	}
	return balloons[bs.focus], true
}

func (bs *BalloonScene) cycleFocus() {
	balloons := bs.sim.Balloons()
	for range balloons {
		bs.focus = (bs.focus + 1) % len(balloons)
		if balloons[bs.focus].Data().Visible {
			return
		}
	}
}

func nextChargeMode(mode string) string {
	for i, m := range chargeModes {
		if m == mode {
			return chargeModes[(i+1)%len(chargeModes)]
		}
	}
	return config.ShowChargesAll
}
