package opening

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
)

// floorEpsilon absorbs representation error in available/pitch so that an
// exact fit such as 8.0/2.0 is not floored to 3 by a trailing 0.999...
const floorEpsilon = 1e-9

// ComputeMaxCapacity validates the request and computes how many openings of
// the given size fit in a single centered row along the wall's width.
//
// The first failing rule determines the message. Capacity is
// floor(available / (openingWidth + spacing)) where available is the wall
// width minus both edge margins.
func ComputeMaxCapacity(wall Wall, openingWidth, spacing, openingHeight float64) CapacityResult {
	if msg, ok := checkCapacityInput(wall, openingWidth, spacing, openingHeight); !ok {
		return invalidCapacity(openingWidth, spacing, msg)
	}

	maxCount := int(fitCount(wall.Available(), openingWidth+spacing))
	used := usedWidth(maxCount, openingWidth, spacing)
	margin := wall.Size.Width - used

	return CapacityResult{
		MaxCount:           maxCount,
		ChosenOpeningWidth: openingWidth,
		ChosenSpacing:      spacing,
		Positions:          ComputePositions(wall, maxCount, openingWidth, spacing, openingHeight),
		UsedWidth:          used,
		RemainingMargin:    margin,
		Valid:              true,
		Message:            fmt.Sprintf("%d opening(s) possible with %.2f m margin", maxCount, margin),
	}
}

// ComputeParams is ComputeMaxCapacity with dimensions taken from p.
func ComputeParams(wall Wall, p Params) CapacityResult {
	return ComputeMaxCapacity(wall, p.Width, p.Spacing, p.Height)
}

// ComputePositions returns the centroid of each of count openings, left to
// right. The row is centered horizontally on the wall anchor and shares the
// wall's depth plane. No validation is performed; a count outside
// 1..MaxOpenings yields no positions.
func ComputePositions(wall Wall, count int, openingWidth, spacing, openingHeight float64) []geo.Vec3 {
	if count <= 0 || count > MaxOpenings {
		return []geo.Vec3{}
	}

	total := usedWidth(count, openingWidth, spacing)
	start := wall.Anchor.X - total/2 + openingWidth/2
	y := wall.Anchor.Y + wall.Size.Height/2 - openingHeight/2
	pitch := openingWidth + spacing

	positions := make([]geo.Vec3, count)
	for i := range positions {
		positions[i] = geo.Vec3{
			X: start + float64(i)*pitch,
			Y: y,
			Z: wall.Anchor.Z,
		}
	}
	return positions
}

func usedWidth(count int, openingWidth, spacing float64) float64 {
	if count <= 0 {
		return 0
	}
	return float64(count)*openingWidth + float64(count-1)*spacing
}

// fitCount is floor(available/pitch), never negative.
func fitCount(available, pitch float64) float64 {
	return math.Max(0, math.Floor(available/pitch+floorEpsilon))
}

func checkCapacityInput(wall Wall, openingWidth, spacing, openingHeight float64) (string, bool) {
	if !finite(openingWidth, spacing, openingHeight, wall.Size.Width, wall.Size.Height) {
		return "dimensions must be finite numbers", false
	}

	for _, c := range []struct {
		name  string
		value float64
		r     geo.Range
	}{
		{"opening width", openingWidth, WidthRange},
		{"opening height", openingHeight, HeightRange},
		{"spacing", spacing, SpacingRange},
	} {
		if msg, ok := checkRange(c.name, c.value, c.r); !ok {
			return msg, false
		}
	}

	switch {
	case wall.Size.Height < MinWallHeight:
		return fmt.Sprintf("wall too short: height %.2f m is below %.2f m", wall.Size.Height, MinWallHeight), false
	case openingHeight > wall.Size.Height:
		return fmt.Sprintf("opening taller than wall: %.2f m > %.2f m", openingHeight, wall.Size.Height), false
	}

	available := wall.Available()
	need := openingWidth + spacing
	if available < need {
		return fmt.Sprintf("not enough space: %.2f m available, %.2f m needed", available, need), false
	}
	if fitCount(available, need) > MaxOpenings {
		return fmt.Sprintf("wall too wide: more than %d openings would fit", MaxOpenings), false
	}
	return "", true
}

func checkRange(name string, v float64, r geo.Range) (string, bool) {
	switch {
	case v < r.Min:
		return fmt.Sprintf("%s %.2f m is too small (min %.2f m)", name, v, r.Min), false
	case v > r.Max:
		return fmt.Sprintf("%s %.2f m is too large (max %.2f m)", name, v, r.Max), false
	}
	return "", true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func invalidCapacity(openingWidth, spacing float64, msg string) CapacityResult {
	return CapacityResult{
		ChosenOpeningWidth: openingWidth,
		ChosenSpacing:      spacing,
		Positions:          []geo.Vec3{},
		Message:            msg,
	}
}
