package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/balloons-static/assets"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSceneMatchesDefault(t *testing.T) {
	loaded, err := LoadScene(assets.FS(), assets.DefaultScene)
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), loaded); diff != "" {
		t.Errorf("embedded scene differs from Default() (-want +got):\n%s", diff)
	}
}

func TestLoadSceneMissingWall(t *testing.T) {
	const tmx = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="8" tileheight="8" infinite="0">
 <objectgroup id="1" name="Sweater">
  <object id="1" name="bounds" x="0" y="0" width="40" height="40"/>
  <object id="2" name="chargedArea" x="0" y="0">
   <polygon points="0,0 20,0 20,20"/>
  </object>
 </objectgroup>
</map>`
	fsys := fstest.MapFS{"broken.tmx": &fstest.MapFile{Data: []byte(tmx)}}

	_, err := LoadScene(fsys, "broken.tmx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingObject))
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := LoadScene(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}

func TestChargeGridInsideChargedArea(t *testing.T) {
	s := Default()
	require.Len(t, s.SweaterCharges, SweaterChargeCount)
	for i, c := range s.SweaterCharges {
		assert.True(t, gamemath.PolygonContains(s.ChargedArea, c), "charge %d at %v outside charged area", i, c)
	}
}

func TestSpawnLookup(t *testing.T) {
	s := Default()
	yellow, ok := s.Spawn("yellow")
	require.True(t, ok)
	assert.True(t, yellow.Visible)

	green, ok := s.Spawn("green")
	require.True(t, ok)
	assert.False(t, green.Visible)

	_, ok = s.Spawn("red")
	assert.False(t, ok)
}

func TestSweaterCenter(t *testing.T) {
	assert.Equal(t, gamemath.V(220, 285), Default().SweaterCenter())
}

func TestBalloonChargeLayout(t *testing.T) {
	assert.Len(t, BalloonChargeSlots, SweaterChargeCount)
	assert.Len(t, BalloonStarterCharges, 4)
	assert.InDelta(t, 5139.0/57.0, AverageSlotY(), 1e-9)
}
