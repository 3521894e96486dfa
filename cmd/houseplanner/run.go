package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/opening"
	"github.com/ChicagoDave/houseplanner/pkg/spec"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// loadAndValidate loads house.yaml and runs schema validation.
func loadAndValidate(projectPath string) (*spec.HouseSpec, *validation.Report, error) {
	houseSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	return houseSpec, validation.ValidateSchema(houseSpec), nil
}

func runValidate(projectPath, wallName string) error {
	houseSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	if report.Valid {
		_, planReport := layout.PlanOpenings(houseSpec)
		report.Merge(planReport)
	}

	if wallName != "" {
		return reportWall(os.Stdout, houseSpec, report, wallName)
	}

	printValidationReport(os.Stdout, report)

	if !report.Valid {
		return fmt.Errorf("%s is invalid", projectPath)
	}
	return nil
}

// reportWall prints only the findings attached to one wall.
func reportWall(w io.Writer, houseSpec *spec.HouseSpec, report *validation.Report, name string) error {
	if houseSpec.WallByName(name) == nil {
		return fmt.Errorf("no wall named %q", name)
	}
	printWallFindings(w, name, report)
	if !report.WallValid(name) {
		return fmt.Errorf("wall %q is invalid", name)
	}
	return nil
}

func runPlan(projectPath string) error {
	houseSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(os.Stderr, report)
		return errors.New("house.yaml has validation errors")
	}

	plans, planReport := layout.PlanOpenings(houseSpec)
	report.Merge(planReport)

	output := map[string]any{
		"house":      houseSpec.House,
		"walls":      plans,
		"total":      layout.TotalOpenings(plans),
		"validation": report,
	}
	return writeJSON(os.Stdout, output)
}

func runCapacity(wall opening.Wall, params opening.Params, asJSON bool) error {
	result := opening.ComputeParams(wall, params)
	if asJSON {
		return writeJSON(os.Stdout, result)
	}
	printCapacity(os.Stdout, wall, result)
	return nil
}

func runGenerate(wall opening.Wall, params opening.Params, count int, colorFlag string) error {
	color, err := opening.ParseColor(colorFlag)
	if err != nil {
		return err
	}
	result := opening.GenerateOpenings(wall, count, params.Width, params.Spacing, params.Height, color)
	if err := writeJSON(os.Stdout, result); err != nil {
		return err
	}
	if !result.Valid {
		return errors.New(result.Message)
	}
	return nil
}

func runOptimize(wall opening.Wall, count int, height float64, asJSON bool) error {
	result := opening.OptimizeDimensions(wall, count, height)
	if asJSON {
		return writeJSON(os.Stdout, result)
	}
	printOptimize(os.Stdout, wall, count, height, result)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
