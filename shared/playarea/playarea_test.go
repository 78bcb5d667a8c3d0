package playarea

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMap() *Map {
	return New(leveldata.Default())
}

func TestClassifyTotality(t *testing.T) {
	m := defaultMap()
	for _, wallVisible := range []bool{true, false} {
		for x := 0.0; x <= m.Width; x += 0.5 {
			for y := 0.0; y <= m.Height; y += 3 {
				c, err := m.Classify(gamemath.V(x, y), wallVisible)
				require.NoError(t, err, "x=%v y=%v wall=%v", x, y, wallVisible)
				require.NotEqual(t, RegionNone, c.Column)
				require.NotEqual(t, RegionNone, c.Location)
				require.NotEqual(t, RowNone, c.Row)
			}
		}
	}
}

func TestClassifyUnclassified(t *testing.T) {
	_, err := defaultMap().Classify(gamemath.V(math.NaN(), 10), true)
	assert.True(t, errors.Is(err, ErrUnclassified))
}

func TestClassifyColumns(t *testing.T) {
	m := defaultMap()
	tests := []struct {
		x    float64
		want Region
	}{
		{10, LeftArm},
		{200, LeftSideOfSweater},
		{250, RightSideOfSweater},
		{330, RightArm},
		{440, LeftPlayArea},
		{500, CenterPlayArea},
		{545, RightPlayArea},
	}
	for _, tt := range tests {
		c, err := m.Classify(gamemath.V(tt.x, 250), true)
		require.NoError(t, err)
		assert.Equal(t, tt.want, c.Column, "x=%v", tt.x)
		assert.Equal(t, tt.want, c.Location, "x=%v", tt.x)
		assert.Equal(t, RegionNone, c.Landmark, "x=%v", tt.x)
	}
}

func TestClassifyRows(t *testing.T) {
	m := defaultMap()
	for y, want := range map[float64]Row{50: UpperPlayArea, 250: CenterRow, 450: LowerPlayArea} {
		c, err := m.Classify(gamemath.V(500, y), true)
		require.NoError(t, err)
		assert.Equal(t, want, c.Row)
	}
}

func TestClassifyLandmarksOverrideColumns(t *testing.T) {
	m := defaultMap()

	c, err := m.Classify(gamemath.V(375, 250), true)
	require.NoError(t, err)
	assert.Equal(t, AtVeryCloseToSweater, c.Location)
	assert.Equal(t, LeftPlayArea, c.Column)

	c, err = m.Classify(gamemath.V(395, 250), true)
	require.NoError(t, err)
	assert.Equal(t, AtNearSweater, c.Location)

	c, err = m.Classify(gamemath.V(590, 250), true)
	require.NoError(t, err)
	assert.Equal(t, AtNearWall, c.Location)
}

func TestClassifyCriticalLocationsUseExactEquality(t *testing.T) {
	m := defaultMap()
	atWall, ok := m.Location(AtWall)
	require.True(t, ok)
	assert.Equal(t, m.AtWallX, atWall)

	c, err := m.Classify(gamemath.V(atWall, 250), true)
	require.NoError(t, err)
	assert.Equal(t, AtWall, c.Landmark)
	assert.Equal(t, AtWall, c.Location)

	// a hair to the right is no longer the critical location
	c, err = m.Classify(gamemath.V(math.Nextafter(atWall, math.Inf(1)), 250), true)
	require.NoError(t, err)
	assert.Equal(t, RegionNone, c.Landmark)
	assert.Equal(t, Wall, c.Location)

	center, ok := m.Location(AtCenterPlayArea)
	require.True(t, ok)
	c, err = m.Classify(gamemath.V(center, 250), true)
	require.NoError(t, err)
	assert.Equal(t, AtCenterPlayArea, c.Location)
	assert.Equal(t, CenterPlayArea, c.Column)
}

func TestClassifyWallInvisibleRemapsToRightPlayArea(t *testing.T) {
	m := defaultMap()

	c, err := m.Classify(gamemath.V(m.AtWallX, 250), false)
	require.NoError(t, err)
	assert.Equal(t, RightPlayArea, c.Location)
	assert.Equal(t, RightPlayArea, c.Column)
	assert.NotEqual(t, Wall, c.Column)

	c, err = m.Classify(gamemath.V(650, 250), false)
	require.NoError(t, err)
	assert.Equal(t, RightPlayArea, c.Column)

	c, err = m.Classify(gamemath.V(600, 250), false)
	require.NoError(t, err)
	assert.Equal(t, RightPlayArea, c.Location, "near wall band is remapped")
}

func TestClassifyWallVisibleRemapsRightEdge(t *testing.T) {
	m := defaultMap()

	c, err := m.Classify(gamemath.V(m.RightEdgeX, 250), true)
	require.NoError(t, err)
	assert.Equal(t, Wall, c.Location)
	assert.Equal(t, Wall, c.Column)

	c, err = m.Classify(gamemath.V(m.WallX(), 250), true)
	require.NoError(t, err)
	assert.Equal(t, Wall, c.Column)
	assert.Equal(t, AtVeryCloseToRightEdge, c.Landmark)
	assert.Equal(t, AtVeryCloseToRightEdge, c.Location, "right edge bands are not remapped")

	c, err = m.Classify(gamemath.V(m.WallX(), 250), false)
	require.NoError(t, err)
	assert.Equal(t, AtVeryCloseToRightEdge, c.Location)
}

func TestClassifyWallHiddenRightEdgeIsRightPlayArea(t *testing.T) {
	m := defaultMap()

	c, err := m.Classify(gamemath.V(m.RightEdgeX, 250), false)
	require.NoError(t, err)
	assert.Equal(t, RightPlayArea, c.Column)
	assert.Equal(t, RightPlayArea, c.Location)
	assert.Equal(t, AtRightEdge, c.Landmark, "the landmark itself is kept")
	assert.NotEqual(t, Wall, c.Location)

	for _, x := range []float64{m.RightEdgeX - 1, 760} {
		c, err = m.Classify(gamemath.V(x, 250), false)
		require.NoError(t, err)
		assert.NotEqual(t, Wall, c.Column)
		assert.NotEqual(t, RightEdge, c.Column)
	}
}

func TestBoundaryLocations(t *testing.T) {
	m := defaultMap()
	assert.Equal(t, 67.0, m.LeftEdgeX)
	assert.Equal(t, 621.0, m.AtWallX)
	assert.Equal(t, 701.0, m.RightEdgeX)
	assert.Equal(t, 111.0, m.TopY)
	assert.Equal(t, 393.0, m.BottomY)
}

func TestDragBounds(t *testing.T) {
	m := defaultMap()
	assert.Equal(t, gamemath.Rect{MinX: 0, MinY: 0, MaxX: 554, MaxY: 282}, m.DragBounds(true))
	assert.Equal(t, gamemath.Rect{MinX: 0, MinY: 0, MaxX: 634, MaxY: 282}, m.DragBounds(false))
}

func TestInLandmark(t *testing.T) {
	m := defaultMap()
	assert.True(t, m.InLandmark(375))
	assert.True(t, m.InLandmark(m.LeftEdgeX))
	assert.False(t, m.InLandmark(500))
	assert.True(t, m.LandmarkContains(AtNearWall, 590))
	assert.False(t, m.LandmarkContains(AtNearWall, 500))
}

func TestRanges(t *testing.T) {
	m := defaultMap()
	r, ok := m.ColumnRange(LeftSideOfSweater)
	require.True(t, ok)
	assert.Equal(t, Range{Min: 144, Max: 220}, r)
	assert.Equal(t, 76.0, r.Length())

	_, ok = m.ColumnRange(AtWall)
	assert.False(t, ok)

	row, ok := m.RowRange(CenterRow)
	require.True(t, ok)
	assert.Equal(t, Range{Min: 168, Max: 336}, row)
}

func TestRegionNames(t *testing.T) {
	assert.Equal(t, "AT_VERY_CLOSE_TO_WALL", AtVeryCloseToWall.String())
	assert.Equal(t, "LOWER_PLAY_AREA", LowerPlayArea.String())
	assert.True(t, AtNearWall.InWallColumn())
	assert.False(t, RightEdge.InWallColumn())
	assert.True(t, AtRightEdge.InRightEdgeColumn())
	assert.True(t, RightEdge.InRightEdgeColumn())
	assert.False(t, AtNearRightEdge.InRightEdgeColumn())
	assert.False(t, AtVeryCloseToRightEdge.InRightEdgeColumn())
	assert.False(t, Wall.InRightEdgeColumn())
}
