package systems

import (
	"testing"

	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap/zaptest"
)

const tick = 1.0 / 60

type fixture struct {
	ecs    *ecs.ECS
	world  donburi.World
	phys   *Physics
	area   *playarea.Map
	scene  factory.SceneEntries
	yellow *donburi.Entry
	green  *donburi.Entry
}

func newFixture(t *testing.T, mutate ...func(*config.Config)) *fixture {
	t.Helper()

	cfg := config.Default()
	cfg.Flags.Assertions = true
	for _, m := range mutate {
		m(cfg)
	}

	scene := leveldata.Default()
	e := ecs.NewECS(donburi.NewWorld())
	entries := factory.CreateScene(e, scene, cfg.Flags.WallVisible, cfg.Physics.VelocitySamples)
	area := playarea.New(scene)
	p := NewPhysics(cfg, area, zaptest.NewLogger(t))
	for _, b := range entries.Balloons {
		p.Refresh(e.World, b)
	}

	return &fixture{
		ecs:    e,
		world:  e.World,
		phys:   p,
		area:   area,
		scene:  entries,
		yellow: entries.Balloons[0],
		green:  entries.Balloons[1],
	}
}

func (f *fixture) balloon(entry *donburi.Entry) *components.BalloonData {
	return components.Balloon.Get(entry)
}

func (f *fixture) sweater() *components.SweaterData {
	return components.Sweater.Get(f.scene.Sweater)
}

func (f *fixture) wall() *components.WallData {
	return components.Wall.Get(f.scene.Wall)
}

// place puts a balloon's corner at (x, y) through the location hook.
func (f *fixture) place(entry *donburi.Entry, x, y float64) {
	f.phys.SetLocation(f.world, entry, gamemath.V(x, y))
}

// charge gives a balloon n charges straight from the sweater.
func (f *fixture) charge(t *testing.T, entry *donburi.Entry, n int) {
	t.Helper()
	sweater := f.sweater()
	b := f.balloon(entry)
	for i := 0; i < n; i++ {
		idx, err := sweater.FindNearestUnclaimed(gamemath.V(0, 0))
		if err != nil {
			t.Fatalf("charge %d: %v", i, err)
		}
		if err := sweater.Claim(idx); err != nil {
			t.Fatalf("claim %d: %v", idx, err)
		}
		b.Claimed = append(b.Claimed, idx)
		b.Charge--
	}
}

func (f *fixture) assertConserved(t *testing.T) {
	t.Helper()
	total := 0
	for _, e := range f.scene.Balloons {
		b := f.balloon(e)
		if b.Charge != -len(b.Claimed) {
			t.Fatalf("%s charge %d but %d claimed", b.Label, b.Charge, len(b.Claimed))
		}
		total += b.Charge
	}
	if got := f.sweater().NetCharge(); got != -total {
		t.Fatalf("sweater charge %d, balloons %d", got, total)
	}
}
