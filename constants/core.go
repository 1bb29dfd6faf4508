package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the tick interval (~60 FPS), one simulation step per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultSpeed is the distance in virtual pixels moved per axis per tick
	DefaultSpeed = 0.75
)

// Terminal Cell Metrics
// Simulation runs in virtual pixels, each terminal cell covers CellWidth x CellHeight of them
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)
