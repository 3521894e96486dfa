// Package opening computes how many same-size windows fit along a wall and
// where they go.
//
// Every function in this package is pure. Invalid geometry is never reported
// through an error or a panic: results carry Valid and Message fields that an
// interactive caller can branch on and show to the user directly.
package opening

import "github.com/ChicagoDave/houseplanner/pkg/geo"

// Kind tags an opening. Only windows are generated here.
type Kind string

const KindWindow Kind = "window"

// Wall is the rectangular face of a wall available for opening placement.
// Anchor is the world-space centroid.
type Wall struct {
	Anchor geo.Vec3  `json:"anchor"`
	Size   geo.Size3 `json:"size"`
}

// Available returns the width left for openings once both edge margins are
// reserved. It may be negative for narrow walls.
func (w Wall) Available() float64 {
	return w.Size.Width - 2*EdgeMargin
}

// Spec is a single placed opening.
type Spec struct {
	Anchor geo.Vec3  `json:"anchor"`
	Size   geo.Size3 `json:"size"`
	Color  Color     `json:"color"`
	Kind   Kind      `json:"kind"`
}

// Params are the opening dimensions requested by a caller.
type Params struct {
	Width   float64 `json:"opening_width"`
	Spacing float64 `json:"spacing"`
	Height  float64 `json:"opening_height"`
}

// DefaultParams returns the default opening dimensions.
func DefaultParams() Params {
	return Params{
		Width:   DefaultOpeningWidth,
		Spacing: DefaultSpacing,
		Height:  DefaultOpeningHeight,
	}
}

// WithDefaults replaces zero fields with their defaults.
func (p Params) WithDefaults() Params {
	if p.Width == 0 {
		p.Width = DefaultOpeningWidth
	}
	if p.Spacing == 0 {
		p.Spacing = DefaultSpacing
	}
	if p.Height == 0 {
		p.Height = DefaultOpeningHeight
	}
	return p
}

// CapacityResult is the outcome of a feasibility computation.
type CapacityResult struct {
	MaxCount           int        `json:"max_count"`
	ChosenOpeningWidth float64    `json:"chosen_opening_width"`
	ChosenSpacing      float64    `json:"chosen_spacing"`
	Positions          []geo.Vec3 `json:"positions"`
	UsedWidth          float64    `json:"used_width"`
	RemainingMargin    float64    `json:"remaining_margin"`
	Valid              bool       `json:"valid"`
	Message            string     `json:"message"`
}

// GenerateResult is the outcome of GenerateOpenings.
type GenerateResult struct {
	Openings []Spec `json:"openings"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message"`
}

// OptimizeResult is the outcome of OptimizeDimensions.
type OptimizeResult struct {
	OpeningWidth float64 `json:"opening_width"`
	Spacing      float64 `json:"spacing"`
	Valid        bool    `json:"valid"`
	Message      string  `json:"message"`
}
