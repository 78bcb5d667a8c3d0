package playarea

// Region names a column, landmark or critical x location of the play area.
// The same values key the description tables of the description layer.
type Region int

const (
	RegionNone Region = iota

	// columns
	LeftArm
	LeftSideOfSweater
	RightSideOfSweater
	RightArm
	LeftPlayArea
	CenterPlayArea
	RightPlayArea
	Wall
	RightEdge

	// landmarks
	AtVeryCloseToSweater
	AtNearSweater
	AtNearWall
	AtVeryCloseToWall
	AtNearRightEdge
	AtVeryCloseToRightEdge

	// critical x locations
	AtLeftEdge
	AtSweater
	AtCenterPlayArea
	AtWall
	AtRightEdge
)

var regionNames = [...]string{
	RegionNone:             "NONE",
	LeftArm:                "LEFT_ARM",
	LeftSideOfSweater:      "LEFT_SIDE_OF_SWEATER",
	RightSideOfSweater:     "RIGHT_SIDE_OF_SWEATER",
	RightArm:               "RIGHT_ARM",
	LeftPlayArea:           "LEFT_PLAY_AREA",
	CenterPlayArea:         "CENTER_PLAY_AREA",
	RightPlayArea:          "RIGHT_PLAY_AREA",
	Wall:                   "WALL",
	RightEdge:              "RIGHT_EDGE",
	AtVeryCloseToSweater:   "AT_VERY_CLOSE_TO_SWEATER",
	AtNearSweater:          "AT_NEAR_SWEATER",
	AtNearWall:             "AT_NEAR_WALL",
	AtVeryCloseToWall:      "AT_VERY_CLOSE_TO_WALL",
	AtNearRightEdge:        "AT_NEAR_RIGHT_EDGE",
	AtVeryCloseToRightEdge: "AT_VERY_CLOSE_TO_RIGHT_EDGE",
	AtLeftEdge:             "AT_LEFT_EDGE",
	AtSweater:              "AT_SWEATER",
	AtCenterPlayArea:       "AT_CENTER_PLAY_AREA",
	AtWall:                 "AT_WALL",
	AtRightEdge:            "AT_RIGHT_EDGE",
}

func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return "UNKNOWN"
	}
	return regionNames[r]
}

// InWallColumn reports whether r names the wall or one of its landmarks.
func (r Region) InWallColumn() bool {
	return r == AtWall || r == AtNearWall || r == Wall || r == AtVeryCloseToWall
}

// InRightEdgeColumn reports whether r names the generic right edge column or
// its critical location. The near and very close bands are not included.
func (r Region) InRightEdgeColumn() bool {
	return r == AtRightEdge || r == RightEdge
}

// Row is one horizontal band of the play area.
type Row int

const (
	RowNone Row = iota
	UpperPlayArea
	CenterRow
	LowerPlayArea
)

var rowNames = [...]string{
	RowNone:       "NONE",
	UpperPlayArea: "UPPER_PLAY_AREA",
	CenterRow:     "CENTER_PLAY_AREA",
	LowerPlayArea: "LOWER_PLAY_AREA",
}

func (r Row) String() string {
	if r < 0 || int(r) >= len(rowNames) {
		return "UNKNOWN"
	}
	return rowNames[r]
}
