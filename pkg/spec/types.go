package spec

import (
	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/opening"
)

// HouseSpec is the top-level specification for a parametric house.
type HouseSpec struct {
	SpecVersion string    `yaml:"spec_version" json:"spec_version"`
	House       HouseDef  `yaml:"house" json:"house"`
	Walls       []WallDef `yaml:"walls" json:"walls"`
}

type HouseDef struct {
	Name  string `yaml:"name" json:"name"`
	Units string `yaml:"units" json:"units"`
}

// WallByName returns the wall definition with the given name, or nil if not found.
func (h *HouseSpec) WallByName(name string) *WallDef {
	for i := range h.Walls {
		if h.Walls[i].Name == name {
			return &h.Walls[i]
		}
	}
	return nil
}

// WallDef places one wall face and the openings requested on it.
type WallDef struct {
	Name     string         `yaml:"name" json:"name"`
	Anchor   geo.Vec3       `yaml:"anchor" json:"anchor"`
	Size     geo.Size3      `yaml:"size" json:"size"`
	Openings OpeningRequest `yaml:"openings" json:"openings"`
}

// Surface returns the wall face handed to the opening calculator.
func (w WallDef) Surface() opening.Wall {
	return opening.Wall{Anchor: w.Anchor, Size: w.Size}
}

// PlacementMode selects how a wall's openings are laid out.
type PlacementMode string

const (
	// ModeFixed places Count openings at the requested dimensions.
	ModeFixed PlacementMode = "fixed"
	// ModeMax fills the wall with as many openings as fit.
	ModeMax PlacementMode = "max"
	// ModeOptimize derives width and spacing for Count openings.
	ModeOptimize PlacementMode = "optimize"
	// ModeNone leaves the wall without openings.
	ModeNone PlacementMode = "none"
)

// Modes lists every accepted placement mode.
var Modes = []PlacementMode{ModeFixed, ModeMax, ModeOptimize, ModeNone}

// OpeningRequest describes the row of windows wanted on a wall. Zero
// dimensions fall back to the calculator defaults.
type OpeningRequest struct {
	Mode    PlacementMode `yaml:"mode" json:"mode"`
	Count   int           `yaml:"count" json:"count"`
	Width   float64       `yaml:"width" json:"width"`
	Spacing float64       `yaml:"spacing" json:"spacing"`
	Height  float64       `yaml:"height" json:"height"`
	Color   string        `yaml:"color" json:"color"`
}

// EffectiveMode returns the mode, defaulting to ModeFixed.
func (r OpeningRequest) EffectiveMode() PlacementMode {
	if r.Mode == "" {
		return ModeFixed
	}
	return r.Mode
}

// Params returns the requested dimensions with defaults applied.
func (r OpeningRequest) Params() opening.Params {
	return opening.Params{
		Width:   r.Width,
		Spacing: r.Spacing,
		Height:  r.Height,
	}.WithDefaults()
}

// DefaultColor is used when a request names no color.
const DefaultColor = opening.Color(0x87ceeb)

// PackedColor parses Color, or returns DefaultColor when it is empty.
func (r OpeningRequest) PackedColor() (opening.Color, error) {
	if r.Color == "" {
		return DefaultColor, nil
	}
	return opening.ParseColor(r.Color)
}
