package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshline/mesh"
)

func TestResolve_SourcePrecedence(t *testing.T) {
	prebuilt, err := mesh.Uniform(2, 1)
	require.NoError(t, err)

	cases := []struct {
		name string
		cfg  MeshConfig
		want SourceKind
	}{
		{
			name: "file wins over everything",
			cfg:  MeshConfig{MeshFile: "mesh.xdmf", Mesh: prebuilt, Vertices: []float64{0, 1}, InitialCells: 4, Size: 1},
			want: SourceFile,
		},
		{
			name: "prebuilt mesh wins over vertices",
			cfg:  MeshConfig{Mesh: prebuilt, Vertices: []float64{0, 1}, InitialCells: 4, Size: 1},
			want: SourcePrebuilt,
		},
		{
			name: "vertices win over generation",
			cfg:  MeshConfig{Vertices: []float64{0, 1}, InitialCells: 4, Size: 1},
			want: SourceVertices,
		},
		{
			name: "generation is the fallback",
			cfg:  MeshConfig{InitialCells: 4, Size: 1},
			want: SourceGenerated,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.cfg.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Source)
		})
	}
}

func TestResolve_NoSourceConfigured(t *testing.T) {
	cfg := MeshConfig{}

	_, err := cfg.Resolve()
	require.Error(t, err)

	var cerr *Error
	require.True(t, errors.As(err, &cerr), "expected a *Error, got %T", err)
	assert.Contains(t, cerr.Reason, "no mesh source configured")
}

func TestResolve_GeneratedMeshParameterErrors(t *testing.T) {
	_, err := (&MeshConfig{Size: 1}).Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial_number_of_cells")

	_, err = (&MeshConfig{InitialCells: 10}).Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size")

	_, err = (&MeshConfig{InitialCells: 10, Size: -1}).Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size")
}

func TestResolve_MarkerPrecedence(t *testing.T) {
	base := MeshConfig{InitialCells: 4, Size: 1}

	cfg := base
	cfg.CellsFile, cfg.FacetsFile = "cells.xdmf", "facets.xdmf"
	cfg.CellMarkers, cfg.FacetMarkers = mesh.NewMarker(4), mesh.NewMarker(5)
	res, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, MarkersFromFiles, res.Markers)

	cfg = base
	cfg.CellMarkers, cfg.FacetMarkers = mesh.NewMarker(4), mesh.NewMarker(5)
	res, err = cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, MarkersPrebuilt, res.Markers)

	res, err = base.Resolve()
	require.NoError(t, err)
	assert.Equal(t, MarkersComputed, res.Markers)
}

func TestResolve_MarkerFieldPairsRequired(t *testing.T) {
	cfg := MeshConfig{InitialCells: 4, Size: 1, CellsFile: "cells.xdmf"}
	_, err := cfg.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "facets_file")

	cfg = MeshConfig{InitialCells: 4, Size: 1, CellMarkers: mesh.NewMarker(4)}
	_, err = cfg.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marker")
}

func TestDomainSize(t *testing.T) {
	m, err := mesh.Uniform(2, 3)
	require.NoError(t, err)

	// Explicit vertices dominate: size is the largest vertex.
	cfg := MeshConfig{Vertices: []float64{0.5, 2.5, 1.0}, Size: 9}
	assert.Equal(t, 2.5, cfg.DomainSize(m))

	cfg = MeshConfig{Size: 9}
	assert.Equal(t, 9.0, cfg.DomainSize(m))

	cfg = MeshConfig{}
	assert.Equal(t, 3.0, cfg.DomainSize(m))
}
