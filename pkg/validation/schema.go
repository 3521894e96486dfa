package validation

import (
	"fmt"
	"math"
	"slices"

	"github.com/ChicagoDave/houseplanner/pkg/spec"
)

// ValidateSchema checks the structure of a parsed HouseSpec before any
// opening is computed. Dimension ranges are left to the opening calculator.
func ValidateSchema(s *spec.HouseSpec) *Report {
	r := NewReport()

	if s.SpecVersion == "" {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "spec_version is not set",
			SpecPath: "spec_version",
			Expected: "a version string such as 0.1.0",
		})
	}

	if len(s.Walls) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "walls must contain at least one wall",
			SpecPath: "walls",
			Expected: "at least 1 wall",
		})
		return r
	}

	seen := make(map[string]int, len(s.Walls))
	for i, w := range s.Walls {
		validateWallName(i, w, seen, r)
		validateWallSize(i, w, r)
		validateOpeningRequest(i, w, r)
	}

	return r
}

func validateWallName(i int, w spec.WallDef, seen map[string]int, r *Report) {
	if w.Name == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("walls[%d] has no name", i),
			SpecPath: WallPath(i, "name"),
			Expected: "non-empty name",
		})
		return
	}
	if first, dup := seen[w.Name]; dup {
		r.AddError(Result{
			Level:       LevelSchema,
			Wall:        w.Name,
			Message:     fmt.Sprintf("wall name %q is used by walls[%d] and walls[%d]", w.Name, first, i),
			SpecPath:    WallPath(i, "name"),
			ActualValue: w.Name,
			Suggestions: []string{"Give every wall a unique name"},
		})
		return
	}
	seen[w.Name] = i
}

func validateWallSize(i int, w spec.WallDef, r *Report) {
	if w.Size.Positive() && w.Size.Finite() {
		return
	}
	dims := []struct {
		field string
		value float64
	}{
		{"width", w.Size.Width},
		{"height", w.Size.Height},
		{"depth", w.Size.Depth},
	}
	for _, d := range dims {
		if d.value <= 0 || math.IsNaN(d.value) || math.IsInf(d.value, 0) {
			r.AddError(Result{
				Level:       LevelSchema,
				Wall:        w.Name,
				Message:     fmt.Sprintf("wall %q: %s must be a finite number > 0", w.Name, d.field),
				SpecPath:    WallPath(i, "size."+d.field),
				ActualValue: d.value,
				Expected:    "finite, > 0",
			})
		}
	}
}

func validateOpeningRequest(i int, w spec.WallDef, r *Report) {
	req := w.Openings
	mode := req.EffectiveMode()

	if !slices.Contains(spec.Modes, mode) {
		r.AddError(Result{
			Level:       LevelSchema,
			Wall:        w.Name,
			Message:     fmt.Sprintf("wall %q: unknown placement mode %q", w.Name, req.Mode),
			SpecPath:    WallPath(i, "openings.mode"),
			ActualValue: string(req.Mode),
			Expected:    fmt.Sprintf("one of %v", spec.Modes),
		})
		return
	}
	if mode == spec.ModeNone {
		return
	}

	switch {
	case req.Count < 0:
		r.AddError(Result{
			Level:       LevelSchema,
			Wall:        w.Name,
			Message:     fmt.Sprintf("wall %q: openings.count must be >= 0", w.Name),
			SpecPath:    WallPath(i, "openings.count"),
			ActualValue: req.Count,
			Expected:    ">= 0",
		})
	case req.Count == 0 && mode != spec.ModeMax:
		r.AddError(Result{
			Level:       LevelSchema,
			Wall:        w.Name,
			Message:     fmt.Sprintf("wall %q: openings.count must be > 0 in %s mode", w.Name, mode),
			SpecPath:    WallPath(i, "openings.count"),
			ActualValue: req.Count,
			Expected:    "> 0",
			Suggestions: []string{"Set a count, or use mode: max to fill the wall"},
		})
	}

	dims := []struct {
		field string
		value float64
	}{
		{"width", req.Width},
		{"spacing", req.Spacing},
		{"height", req.Height},
	}
	for _, d := range dims {
		if d.value < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Wall:        w.Name,
				Message:     fmt.Sprintf("wall %q: openings.%s must not be negative", w.Name, d.field),
				SpecPath:    WallPath(i, "openings."+d.field),
				ActualValue: d.value,
				Expected:    ">= 0 (0 selects the default)",
			})
		}
	}

	if _, err := req.PackedColor(); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Wall:        w.Name,
			Message:     fmt.Sprintf("wall %q: %v", w.Name, err),
			SpecPath:    WallPath(i, "openings.color"),
			ActualValue: req.Color,
			Expected:    "#rrggbb, #rgb or 0xrrggbb",
		})
	}
}
