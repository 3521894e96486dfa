package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/spec"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

const defaultProject = "../../pkg/spec/testdata/default-house"

func plannedReport(t *testing.T, mutate func(*spec.HouseSpec)) (*spec.HouseSpec, *validation.Report) {
	t.Helper()
	s, err := spec.LoadProject(defaultProject)
	require.NoError(t, err)
	if mutate != nil {
		mutate(s)
	}
	r := validation.ValidateSchema(s)
	_, planReport := layout.PlanOpenings(s)
	r.Merge(planReport)
	return s, r
}

func TestReportWall(t *testing.T) {
	s, r := plannedReport(t, nil)

	var buf bytes.Buffer
	require.NoError(t, reportWall(&buf, s, r, "front"))

	out := buf.String()
	assert.Contains(t, out, `Wall "front"`)
	assert.Contains(t, out, "3 opening(s) generated successfully")
	assert.NotContains(t, out, `"back"`)
	assert.NotContains(t, out, "INVALID")
}

func TestReportWallInvalid(t *testing.T) {
	s, r := plannedReport(t, func(s *spec.HouseSpec) {
		s.WallByName("front").Openings.Count = 10
	})

	var buf bytes.Buffer
	err := reportWall(&buf, s, r, "front")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `wall "front" is invalid`)

	out := buf.String()
	assert.Contains(t, out, "too many openings requested (max: 3)")
	assert.Contains(t, out, "INVALID")

	// Other walls are unaffected.
	buf.Reset()
	assert.NoError(t, reportWall(&buf, s, r, "back"))
}

func TestReportWallUnknown(t *testing.T) {
	s, r := plannedReport(t, nil)

	var buf bytes.Buffer
	err := reportWall(&buf, s, r, "attic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no wall named "attic"`)
	assert.Empty(t, buf.String())
}
