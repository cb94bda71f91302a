package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshline/mesh"
)

func TestApply_ReachesExactTarget(t *testing.T) {
	m, err := mesh.Uniform(10, 1)
	require.NoError(t, err)

	refined, err := Apply(m, []Spec{{Cells: 5, X: 0.3}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 15, refined.NumCells())
}

func TestApply_MonotonicCellCount(t *testing.T) {
	m, err := mesh.Uniform(10, 1)
	require.NoError(t, err)

	var counts []int
	_, err = Apply(m, []Spec{{Cells: 5, X: 0.3}}, func(_ Spec, _, bisected, cells int) {
		assert.Positive(t, bisected)
		counts = append(counts, cells)
	})
	require.NoError(t, err)

	require.NotEmpty(t, counts)
	prev := m.NumCells()
	for _, c := range counts {
		assert.Greater(t, c, prev, "cell count must never decrease")
		prev = c
	}
	assert.Equal(t, 15, counts[len(counts)-1])
}

func TestApply_ConcentratesLeftOfPoint(t *testing.T) {
	m, err := mesh.Uniform(10, 1)
	require.NoError(t, err)

	refined, err := Apply(m, []Spec{{Cells: 5, X: 0.3}}, nil)
	require.NoError(t, err)

	minLeft, minRight := 1.0, 1.0
	for i := 0; i < refined.NumCells(); i++ {
		lo, hi := refined.CellBounds(i)
		width := hi - lo
		if refined.Midpoint(i) < 0.3 {
			if width < minLeft {
				minLeft = width
			}
		} else if width < minRight {
			minRight = width
		}
	}

	assert.Less(t, minLeft, minRight, "bisected cells should sit left of the refinement point")
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	m, err := mesh.Uniform(10, 1)
	require.NoError(t, err)

	refined, err := Apply(m, []Spec{{Cells: 5, X: 0.3}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, m.NumCells(), "input mesh must stay untouched")
	assert.NotSame(t, m, refined)
}

func TestApply_SequentialSpecs(t *testing.T) {
	m, err := mesh.Uniform(10, 1)
	require.NoError(t, err)

	refined, err := Apply(m, []Spec{{Cells: 2, X: 0.5}, {Cells: 3, X: 0.5}}, nil)
	require.NoError(t, err)

	// Each spec's target is relative to the count left by the previous one.
	assert.Equal(t, 15, refined.NumCells())
}

func TestApply_NoSpecsIsIdentity(t *testing.T) {
	m, err := mesh.Uniform(4, 2)
	require.NoError(t, err)

	refined, err := Apply(m, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, refined.NumCells())
}

func TestApply_PointOutsideDomainFails(t *testing.T) {
	m, err := mesh.Uniform(10, 1)
	require.NoError(t, err)

	_, err = Apply(m, []Spec{{Cells: 5, X: 0}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot make progress")

	_, err = Apply(m, []Spec{{Cells: 5, X: -2}}, nil)
	require.Error(t, err)
}

func TestApply_DegenerateMeshFails(t *testing.T) {
	m, err := mesh.FromVertices([]float64{0.5})
	require.NoError(t, err)
	require.Equal(t, 0, m.NumCells())

	_, err = Apply(m, []Spec{{Cells: 1, X: 1}}, nil)
	require.Error(t, err)
}

func TestApply_PreservesDomainBounds(t *testing.T) {
	m, err := mesh.Uniform(8, 2)
	require.NoError(t, err)

	refined, err := Apply(m, []Spec{{Cells: 6, X: 0.5}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, refined.Min())
	assert.Equal(t, 2.0, refined.Max())
}
