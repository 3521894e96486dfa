package opening

import (
	"fmt"
	"math"
)

// OptimizeDimensions derives an opening width and spacing for a fixed count.
//
// The spacing is a single per-gap value of 10% of the available width, never
// below MinSpacing. The width then fills what remains:
//
//	width = (available - (count-1)*spacing) / count
//
// capped at MaxOpeningWidth. Uncapped, count openings span the available width
// exactly with no trailing gap, which ComputeMaxCapacity's pitch formula does
// not credit: it may report fewer than count for the result. Place optimized
// rows with ComputePositions.
func OptimizeDimensions(wall Wall, desiredCount int, openingHeight float64) OptimizeResult {
	if desiredCount <= 0 {
		return OptimizeResult{Message: "count must be > 0"}
	}

	available := wall.Available()
	spacing := math.Max(MinSpacing, available*optimizeSpacingShare)
	width := (available - float64(desiredCount-1)*spacing) / float64(desiredCount)

	if !(width >= MinOpeningWidth) {
		return OptimizeResult{Message: fmt.Sprintf("cannot optimize for %d openings", desiredCount)}
	}

	width = math.Min(width, MaxOpeningWidth)
	return OptimizeResult{
		OpeningWidth: width,
		Spacing:      spacing,
		Valid:        true,
		Message:      fmt.Sprintf("dimensions optimized: %.2f × %.2f", width, spacing),
	}
}
