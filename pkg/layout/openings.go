package layout

import (
	"fmt"

	"github.com/ChicagoDave/houseplanner/pkg/opening"
	"github.com/ChicagoDave/houseplanner/pkg/spec"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// WallPlan is the opening layout chosen for one wall.
type WallPlan struct {
	Wall         string                 `json:"wall"`
	Mode         spec.PlacementMode     `json:"mode"`
	Surface      opening.Wall           `json:"surface"`
	Capacity     opening.CapacityResult `json:"capacity"`
	OpeningWidth float64                `json:"opening_width"`
	Spacing      float64                `json:"spacing"`
	Openings     []opening.Spec         `json:"openings"`
	GlazingRatio float64                `json:"glazing_ratio"` // opening area / wall face area
	Valid        bool                   `json:"valid"`
	Message      string                 `json:"message"`
}

// PlanOpenings lays out the requested openings on every wall of the house.
// Walls are planned independently; a failing wall yields an invalid WallPlan
// and a capacity error but does not stop the others.
func PlanOpenings(s *spec.HouseSpec) ([]WallPlan, *validation.Report) {
	report := validation.NewReport()
	plans := make([]WallPlan, 0, len(s.Walls))

	for i, w := range s.Walls {
		plan := planWall(i, w, report)
		plan.GlazingRatio = glazingRatio(plan.Openings, w.Size.FaceArea())
		plans = append(plans, plan)
	}

	return plans, report
}

// TotalOpenings counts the openings across all plans.
func TotalOpenings(plans []WallPlan) int {
	n := 0
	for _, p := range plans {
		n += len(p.Openings)
	}
	return n
}

func planWall(i int, w spec.WallDef, report *validation.Report) WallPlan {
	req := w.Openings
	params := req.Params()
	plan := WallPlan{
		Wall:         w.Name,
		Mode:         req.EffectiveMode(),
		Surface:      w.Surface(),
		OpeningWidth: params.Width,
		Spacing:      params.Spacing,
		Openings:     []opening.Spec{},
	}

	if plan.Mode == spec.ModeNone {
		plan.Valid = true
		plan.Message = "no openings requested"
		return plan
	}

	color, err := req.PackedColor()
	if err != nil {
		return fail(plan, i, "openings.color", err.Error(), report)
	}

	plan.Capacity = opening.ComputeParams(plan.Surface, params)

	switch plan.Mode {
	case spec.ModeFixed:
		if !plan.Capacity.Valid {
			return fail(plan, i, "openings", plan.Capacity.Message, report)
		}
		gen := opening.GenerateOpenings(plan.Surface, req.Count, params.Width, params.Spacing, params.Height, color)
		if !gen.Valid {
			return fail(plan, i, "openings.count", gen.Message, report)
		}
		plan.Openings = gen.Openings
		plan.Message = gen.Message

	case spec.ModeMax:
		if !plan.Capacity.Valid {
			return fail(plan, i, "openings", plan.Capacity.Message, report)
		}
		gen := opening.GenerateOpenings(plan.Surface, plan.Capacity.MaxCount, params.Width, params.Spacing, params.Height, color)
		plan.Openings = gen.Openings
		plan.Message = gen.Message

	case spec.ModeOptimize:
		opt := opening.OptimizeDimensions(plan.Surface, req.Count, params.Height)
		if !opt.Valid {
			return fail(plan, i, "openings.count", opt.Message, report)
		}
		if !opening.SpacingRange.Contains(opt.Spacing) {
			report.AddWarning(validation.Result{
				Level:       validation.LevelCapacity,
				Wall:        w.Name,
				Message:     fmt.Sprintf("wall %q: optimized spacing %.2f m is outside %.1f-%.1f m", w.Name, opt.Spacing, opening.MinSpacing, opening.MaxSpacing),
				SpecPath:    validation.WallPath(i, "openings"),
				ActualValue: opt.Spacing,
			})
		}
		plan.OpeningWidth = opt.OpeningWidth
		plan.Spacing = opt.Spacing
		plan.Capacity = opening.ComputeMaxCapacity(plan.Surface, opt.OpeningWidth, opt.Spacing, params.Height)
		positions := opening.ComputePositions(plan.Surface, req.Count, opt.OpeningWidth, opt.Spacing, params.Height)
		plan.Openings = opening.Build(positions, opt.OpeningWidth, params.Height, color)
		plan.Message = opt.Message

	default:
		return fail(plan, i, "openings.mode", fmt.Sprintf("unknown placement mode %q", plan.Mode), report)
	}

	plan.Valid = true
	report.AddInfo(validation.Result{
		Level:    validation.LevelCapacity,
		Wall:     w.Name,
		Message:  fmt.Sprintf("wall %q: %s", w.Name, plan.Message),
		SpecPath: validation.WallPath(i, "openings"),
	})
	return plan
}

func fail(plan WallPlan, i int, field, msg string, report *validation.Report) WallPlan {
	plan.Valid = false
	plan.Message = msg
	plan.Openings = []opening.Spec{}
	report.AddError(validation.Result{
		Level:    validation.LevelCapacity,
		Wall:     plan.Wall,
		Message:  fmt.Sprintf("wall %q: %s", plan.Wall, msg),
		SpecPath: validation.WallPath(i, field),
	})
	return plan
}

func glazingRatio(openings []opening.Spec, faceArea float64) float64 {
	if faceArea <= 0 {
		return 0
	}
	var area float64
	for _, o := range openings {
		area += o.Size.FaceArea()
	}
	return area / faceArea
}
