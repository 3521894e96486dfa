package opening

import "github.com/ChicagoDave/houseplanner/pkg/geo"

// Placement constraints, in meters.
const (
	MinOpeningWidth  = 0.5
	MaxOpeningWidth  = 3.0
	MinOpeningHeight = 0.8
	MaxOpeningHeight = 2.5
	MinSpacing       = 0.1
	MaxSpacing       = 2.0

	EdgeMargin    = 0.2 // reserved at each end of the wall
	MinWallHeight = 1.0

	Depth = 0.05 // generated opening thickness

	// MaxOpenings bounds the row length on a single wall. Walls that would
	// fit more are rejected as too wide.
	MaxOpenings = 10000

	// optimizeSpacingShare is the fraction of available width used as the
	// per-gap spacing when optimizing for a target count.
	optimizeSpacingShare = 0.1
)

// Defaults applied when a caller leaves a parameter unset.
const (
	DefaultOpeningWidth  = 1.5
	DefaultSpacing       = 0.5
	DefaultOpeningHeight = 1.2
)

var (
	WidthRange   = geo.Range{Min: MinOpeningWidth, Max: MaxOpeningWidth}
	HeightRange  = geo.Range{Min: MinOpeningHeight, Max: MaxOpeningHeight}
	SpacingRange = geo.Range{Min: MinSpacing, Max: MaxSpacing}
)
