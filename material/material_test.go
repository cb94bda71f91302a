package material

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBorders(t *testing.T) {
	cases := []struct {
		name      string
		size      float64
		materials []Material
		wantErr   string
	}{
		{
			name: "exact partition",
			size: 2,
			materials: []Material{
				{ID: 1, Borders: [2]float64{0, 1}},
				{ID: 2, Borders: [2]float64{1, 2}},
			},
		},
		{
			name: "unsorted input is sorted before checking",
			size: 3,
			materials: []Material{
				{ID: 2, Borders: [2]float64{1, 3}},
				{ID: 1, Borders: [2]float64{0, 1}},
			},
		},
		{
			name: "gap between borders",
			size: 2,
			materials: []Material{
				{ID: 1, Borders: [2]float64{0, 1}},
				{ID: 2, Borders: [2]float64{1.5, 2}},
			},
			wantErr: "borders don't match",
		},
		{
			name: "overlapping borders",
			size: 2,
			materials: []Material{
				{ID: 1, Borders: [2]float64{0, 1.2}},
				{ID: 2, Borders: [2]float64{1, 2}},
			},
			wantErr: "borders don't match",
		},
		{
			name: "does not begin at zero",
			size: 2,
			materials: []Material{
				{ID: 1, Borders: [2]float64{0.1, 1}},
				{ID: 2, Borders: [2]float64{1, 2}},
			},
			wantErr: "borders don't begin at zero",
		},
		{
			name: "does not end at size",
			size: 2,
			materials: []Material{
				{ID: 1, Borders: [2]float64{0, 1}},
				{ID: 2, Borders: [2]float64{1, 1.8}},
			},
			wantErr: "borders don't match with size",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckBorders(tc.size, tc.materials)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)

			var perr *PartitionError
			assert.True(t, errors.As(err, &perr), "expected a *PartitionError, got %T", err)
		})
	}
}

func TestCheckBorders_SingleMaterialSkipsValidation(t *testing.T) {
	// A lone material covers everything; its borders are never inspected.
	err := CheckBorders(2, []Material{{ID: 5, Borders: [2]float64{0.3, 0.7}}})
	assert.NoError(t, err)

	assert.NoError(t, CheckBorders(2, nil))
}

func TestMaterial_Contains(t *testing.T) {
	m := Material{ID: 1, Borders: [2]float64{0.5, 1.5}}

	assert.True(t, m.Contains(1.0))
	assert.True(t, m.Contains(0.5), "lower border is inclusive")
	assert.True(t, m.Contains(1.5), "upper border is inclusive")
	assert.False(t, m.Contains(0.49))
	assert.False(t, m.Contains(1.51))
}
