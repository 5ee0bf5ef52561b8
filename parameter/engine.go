package parameter

import "time"

// Run Loop Timing
const (
	// StepInterval is the pause between steps when a view or feed is attached
	StepInterval = 200 * time.Millisecond

	// DefaultStepBudget matches the per-run step count of the batch usage pattern
	DefaultStepBudget = 100
)

// Grid Defaults
const (
	// DefaultGridWidth is the width of the classic layout (two 2-cell walls around a 4-lane road)
	DefaultGridWidth = 8

	// DefaultGridHeight is the length of the classic road
	DefaultGridHeight = 20
)
