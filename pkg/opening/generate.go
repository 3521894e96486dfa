package opening

import (
	"fmt"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
)

// GenerateOpenings builds count windows on the wall, using the first count
// positions of the full-capacity row. It fails when the capacity check fails
// or when count exceeds the capacity.
func GenerateOpenings(wall Wall, count int, openingWidth, spacing, openingHeight float64, color Color) GenerateResult {
	capacity := ComputeMaxCapacity(wall, openingWidth, spacing, openingHeight)
	if !capacity.Valid {
		return GenerateResult{Openings: []Spec{}, Message: capacity.Message}
	}
	if count > capacity.MaxCount {
		return GenerateResult{
			Openings: []Spec{},
			Message:  fmt.Sprintf("too many openings requested (max: %d)", capacity.MaxCount),
		}
	}
	if count < 0 {
		count = 0
	}

	return GenerateResult{
		Openings: Build(capacity.Positions[:count], openingWidth, openingHeight, color),
		Valid:    true,
		Message:  fmt.Sprintf("%d opening(s) generated successfully", count),
	}
}

// Build materialises a window at each position.
func Build(positions []geo.Vec3, openingWidth, openingHeight float64, color Color) []Spec {
	specs := make([]Spec, len(positions))
	for i, p := range positions {
		specs[i] = Spec{
			Anchor: p,
			Size:   geo.Size3{Width: openingWidth, Height: openingHeight, Depth: Depth},
			Color:  color,
			Kind:   KindWindow,
		}
	}
	return specs
}
