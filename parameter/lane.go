package parameter

// Lane Band
// Lateral candidates are offered only inside the band, which keeps base agents off the walls
const (
	// LaneMin is the exclusive lower bound for a diagonal-left candidate (x > LaneMin)
	LaneMin = 2

	// LaneMax is the exclusive upper bound for a diagonal-right candidate (x < LaneMax)
	LaneMax = 5
)

// Walls
const (
	// LeftWallEnd is the first column after the left wall, wall spans [0, LeftWallEnd)
	LeftWallEnd = 2

	// RightWallStart is the first column of the right wall, wall spans [RightWallStart, RightWallEnd)
	RightWallStart = 6

	// RightWallEnd is one past the last wall column
	RightWallEnd = 8

	// MinLayoutWidth is the narrowest grid that holds both walls
	MinLayoutWidth = RightWallEnd
)

// Fault Injection
const (
	// DefaultFaultRate is the probability that a base agent replaces its candidates with
	// the unwrapped (x+1, y+1) move
	DefaultFaultRate = 0.10
)
