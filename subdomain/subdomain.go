package subdomain

import (
	"math"

	"meshline/material"
	"meshline/mesh"
)

// near reports coincidence of two coordinates within mesh.Tolerance.
func near(a, b float64) bool { return math.Abs(a-b) <= mesh.Tolerance }

// TagCells assigns a material id to every cell based on its midpoint.
//
// With exactly one material every cell gets that material's id, no border
// check involved. With several, a cell gets the id of the material whose
// border interval contains its midpoint, inclusive on both ends within
// mesh.Tolerance. A midpoint covered by no interval leaves the cell at the
// default tag 0; this cannot happen once CheckBorders has passed, but an
// uncovered cell must degrade to "untagged" rather than fail here.
func TagCells(m *mesh.Mesh, materials []material.Material) mesh.Marker {
	cells := mesh.NewMarker(m.NumCells())

	if len(materials) == 1 {
		for i := range cells {
			cells[i] = materials[0].ID
		}
		return cells
	}

	for i := range cells {
		mid := m.Midpoint(i)
		for _, mat := range materials {
			if mat.Contains(mid) {
				cells[i] = mat.ID
				break
			}
		}
	}

	return cells
}

// TagFacets assigns boundary tags to every facet (vertex). The facet
// coinciding with the domain's left endpoint (x=0) gets tag 1, the one
// coinciding with the right endpoint (x=size) gets tag 2. Interior facets
// stay at 0; only endpoint facets matter for Dirichlet-type boundary
// application downstream.
func TagFacets(m *mesh.Mesh, size float64) mesh.Marker {
	facets := mesh.NewMarker(m.NumVertices())

	for i := range facets {
		x := m.Vertex(i)
		if near(x, 0) {
			facets[i] = 1
		}
		if near(x, size) {
			facets[i] = 2
		}
	}

	return facets
}

// Tag runs both tagging passes and returns the cell and facet markers.
func Tag(m *mesh.Mesh, materials []material.Material, size float64) (cells, facets mesh.Marker) {
	return TagCells(m, materials), TagFacets(m, size)
}
