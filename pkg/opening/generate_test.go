package opening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOpenings(t *testing.T) {
	wall := wallAt(0, 8, 2.5)
	r := GenerateOpenings(wall, 2, 1.5, 0.5, 1.2, 0x87ceeb)

	require.True(t, r.Valid, r.Message)
	assert.Equal(t, "2 opening(s) generated successfully", r.Message)
	require.Len(t, r.Openings, 2)

	positions := ComputePositions(wall, 3, 1.5, 0.5, 1.2)
	for i, o := range r.Openings {
		assert.Equal(t, positions[i], o.Anchor)
		assert.Equal(t, 1.5, o.Size.Width)
		assert.Equal(t, 1.2, o.Size.Height)
		assert.Equal(t, Depth, o.Size.Depth)
		assert.Equal(t, KindWindow, o.Kind)
		assert.Equal(t, Color(0x87ceeb), o.Color)
	}
}

func TestGenerateOpeningsMatchesCapacityPositions(t *testing.T) {
	wall := wallAt(3, 12, 3)
	capacity := ComputeMaxCapacity(wall, 1.2, 0.4, 1.5)
	require.True(t, capacity.Valid)

	for n := 0; n <= capacity.MaxCount; n++ {
		r := GenerateOpenings(wall, n, 1.2, 0.4, 1.5, 0xffffff)
		require.True(t, r.Valid, r.Message)
		require.Len(t, r.Openings, n)
		for i, o := range r.Openings {
			assert.Equal(t, capacity.Positions[i], o.Anchor)
		}
	}
}

func TestGenerateOpeningsTooMany(t *testing.T) {
	r := GenerateOpenings(wallAt(0, 8, 2.5), 10, 1.5, 0.5, 1.2, 0xff0000)

	assert.False(t, r.Valid)
	assert.Empty(t, r.Openings)
	assert.NotNil(t, r.Openings)
	assert.Equal(t, "too many openings requested (max: 3)", r.Message)
}

func TestGenerateOpeningsPropagatesCapacityFailure(t *testing.T) {
	wall := wallAt(0, 8, 0.5)
	r := GenerateOpenings(wall, 1, 1.5, 0.5, 1.2, 0xff0000)

	assert.False(t, r.Valid)
	assert.Empty(t, r.Openings)
	assert.Equal(t, ComputeMaxCapacity(wall, 1.5, 0.5, 1.2).Message, r.Message)
}

func TestGenerateOpeningsNegativeCount(t *testing.T) {
	r := GenerateOpenings(wallAt(0, 8, 2.5), -1, 1.5, 0.5, 1.2, 0)
	assert.True(t, r.Valid)
	assert.Empty(t, r.Openings)
	assert.Equal(t, "0 opening(s) generated successfully", r.Message)
}

func TestBuild(t *testing.T) {
	assert.Empty(t, Build(nil, 1, 1, 0))

	specs := Build(ComputePositions(wallAt(0, 8, 2.5), 2, 1, 0.5, 1), 1, 1, RGB(1, 2, 3))
	require.Len(t, specs, 2)
	assert.Equal(t, Color(0x010203), specs[1].Color)
}
