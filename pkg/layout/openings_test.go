package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/opening"
	"github.com/ChicagoDave/houseplanner/pkg/spec"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

func defaultSpec(t *testing.T) *spec.HouseSpec {
	t.Helper()
	s, err := spec.LoadProject("../spec/testdata/default-house")
	require.NoError(t, err)
	return s
}

func planByWall(plans []WallPlan) map[string]WallPlan {
	m := make(map[string]WallPlan, len(plans))
	for _, p := range plans {
		m[p.Wall] = p
	}
	return m
}

func TestPlanOpeningsDefaultHouse(t *testing.T) {
	plans, report := PlanOpenings(defaultSpec(t))

	require.True(t, report.Valid, "errors: %v", report.Errors)
	require.Len(t, plans, 4)
	assert.Equal(t, 9, TotalOpenings(plans))
	assert.Len(t, report.Info, 3)

	byWall := planByWall(plans)

	front := byWall["front"]
	assert.True(t, front.Valid)
	assert.Equal(t, spec.ModeFixed, front.Mode)
	require.Len(t, front.Openings, 3)
	assert.Equal(t, opening.Color(0x87ceeb), front.Openings[0].Color)
	assert.InDelta(t, 3*1.5*1.2/20, front.GlazingRatio, 1e-9)

	back := byWall["back"]
	assert.Equal(t, spec.ModeMax, back.Mode)
	assert.Equal(t, 4, back.Capacity.MaxCount)
	assert.Len(t, back.Openings, 4)
	assert.Equal(t, opening.Color(0xffffff), back.Openings[0].Color)

	left := byWall["left"]
	assert.Equal(t, spec.ModeOptimize, left.Mode)
	require.Len(t, left.Openings, 2)
	assert.InDelta(t, 2.52, left.OpeningWidth, 1e-9)
	assert.InDelta(t, 0.56, left.Spacing, 1e-9)
	assert.InDelta(t, -5.54, left.Openings[0].Anchor.X, 1e-9)
	assert.InDelta(t, -2.46, left.Openings[1].Anchor.X, 1e-9)
	assert.Equal(t, spec.DefaultColor, left.Openings[0].Color)

	right := byWall["right"]
	assert.True(t, right.Valid)
	assert.Empty(t, right.Openings)
	assert.Zero(t, right.GlazingRatio)
}

func TestPlanOpeningsOpeningsSitOnWallPlane(t *testing.T) {
	plans, _ := PlanOpenings(defaultSpec(t))
	for _, p := range plans {
		for _, o := range p.Openings {
			assert.Equal(t, p.Surface.Anchor.Z, o.Anchor.Z, "wall %s", p.Wall)
			assert.Equal(t, opening.KindWindow, o.Kind)
			assert.Equal(t, opening.Depth, o.Size.Depth)
		}
	}
}

func wallSpec(req spec.OpeningRequest) *spec.HouseSpec {
	return &spec.HouseSpec{
		SpecVersion: "0.1.0",
		Walls: []spec.WallDef{{
			Name:     "w",
			Anchor:   geo.V(0, 1.25, 0),
			Size:     geo.Size3{Width: 8, Height: 2.5, Depth: 0.2},
			Openings: req,
		}},
	}
}

func TestPlanOpeningsFailures(t *testing.T) {
	tests := []struct {
		name     string
		req      spec.OpeningRequest
		path     string
		contains string
	}{
		{"too many", spec.OpeningRequest{Count: 10}, "walls[0].openings.count", "too many openings requested (max: 3)"},
		{"width too large", spec.OpeningRequest{Count: 1, Width: 5}, "walls[0].openings", "too large"},
		{"max mode infeasible", spec.OpeningRequest{Mode: spec.ModeMax, Height: 3}, "walls[0].openings", "too large"},
		{"optimize infeasible", spec.OpeningRequest{Mode: spec.ModeOptimize, Count: 10}, "walls[0].openings.count", "cannot optimize for 10 openings"},
		{"optimize zero", spec.OpeningRequest{Mode: spec.ModeOptimize}, "walls[0].openings.count", "count must be > 0"},
		{"bad color", spec.OpeningRequest{Count: 1, Color: "teal"}, "walls[0].openings.color", "invalid hex color"},
		{"bad mode", spec.OpeningRequest{Mode: "random", Count: 1}, "walls[0].openings.mode", "unknown placement mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans, report := PlanOpenings(wallSpec(tt.req))
			require.Len(t, plans, 1)
			assert.False(t, plans[0].Valid)
			assert.Empty(t, plans[0].Openings)
			assert.Contains(t, plans[0].Message, tt.contains)

			require.False(t, report.Valid)
			require.Len(t, report.Errors, 1)
			e := report.Errors[0]
			assert.Equal(t, validation.LevelCapacity, e.Level)
			assert.Equal(t, "w", e.Wall)
			assert.Equal(t, tt.path, e.SpecPath)
			assert.False(t, report.WallValid("w"))
		})
	}
}

func TestPlanOpeningsFailingWallDoesNotStopOthers(t *testing.T) {
	s := defaultSpec(t)
	s.Walls[0].Openings.Count = 50

	plans, report := PlanOpenings(s)
	require.Len(t, plans, 4)
	assert.False(t, report.Valid)
	assert.False(t, planByWall(plans)["front"].Valid)
	assert.True(t, planByWall(plans)["back"].Valid)
	assert.Equal(t, 6, TotalOpenings(plans))
}

func TestPlanOpeningsOptimizeSpacingWarning(t *testing.T) {
	s := wallSpec(spec.OpeningRequest{Mode: spec.ModeOptimize, Count: 2})
	// available 24.6 gives 2.46 m spacing, above the 2.0 m bound.
	s.Walls[0].Size.Width = 25

	plans, report := PlanOpenings(s)
	require.True(t, report.Valid, "errors: %v", report.Errors)
	assert.Len(t, report.Warnings, 1)
	assert.Len(t, plans[0].Openings, 2)
	assert.False(t, plans[0].Capacity.Valid, "capacity check rejects spacing above the bound")
}
