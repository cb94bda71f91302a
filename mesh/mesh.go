package mesh

import (
	"fmt"
	"sort"
)

// Tolerance is the absolute tolerance used for floating-point coincidence
// checks throughout the pipeline (facet-at-endpoint detection, border
// containment, partition validation). Two coordinates closer than Tolerance
// are treated as the same point.
const Tolerance = 1e-12

// Mesh is a one-dimensional interval mesh: a strictly increasing sequence of
// vertex coordinates. Cells are implicit; cell i joins vertex i and vertex
// i+1, so a mesh with N vertices has N-1 cells covering
// [vertices[0], vertices[N-1]] with no gaps or overlaps.
//
// A Mesh is immutable after construction and is handed linearly through the
// pipeline stages; refinement produces a new Mesh rather than mutating one in
// place.
type Mesh struct {
	verts []float64
}

// New constructs a Mesh from an already strictly increasing vertex slice.
// It returns an error if the slice is empty or not strictly increasing.
// Callers with unordered or duplicated input should use FromVertices instead.
func New(vertices []float64) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh: at least one vertex is required")
	}

	for i := 1; i < len(vertices); i++ {
		if vertices[i] <= vertices[i-1] {
			return nil, fmt.Errorf("mesh: vertices must be strictly increasing (vertex %d: %g <= %g)", i, vertices[i], vertices[i-1])
		}
	}

	vs := make([]float64, len(vertices))
	copy(vs, vertices)

	return &Mesh{verts: vs}, nil
}

// FromVertices builds a Mesh from an unordered, possibly duplicated vertex
// list. The input is sorted ascending and de-duplicated; N unique vertices
// yield N-1 cells. A single unique vertex yields a degenerate mesh with zero
// cells, which downstream consumers must tolerate.
func FromVertices(vertices []float64) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh: at least one vertex is required")
	}

	vs := make([]float64, len(vertices))
	copy(vs, vertices)
	sort.Float64s(vs)

	unique := vs[:1]
	for _, v := range vs[1:] {
		if v != unique[len(unique)-1] {
			unique = append(unique, v)
		}
	}

	return &Mesh{verts: unique}, nil
}

// Uniform builds a mesh with cells+1 evenly spaced vertices over [0, size],
// i.e. the given number of equal-length cells. Both parameters must be
// positive.
func Uniform(cells int, size float64) (*Mesh, error) {
	if cells <= 0 {
		return nil, fmt.Errorf("mesh: initial number of cells must be positive, got %d", cells)
	}

	if size <= 0 {
		return nil, fmt.Errorf("mesh: domain size must be positive, got %g", size)
	}

	vs := make([]float64, cells+1)
	for i := range vs {
		vs[i] = size * float64(i) / float64(cells)
	}
	// Pin the right endpoint so it compares exactly equal to size.
	vs[cells] = size

	return &Mesh{verts: vs}, nil
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.verts) }

// NumCells returns the number of cells (vertices minus one).
func (m *Mesh) NumCells() int { return len(m.verts) - 1 }

// Vertex returns the coordinate of vertex i.
func (m *Mesh) Vertex(i int) float64 { return m.verts[i] }

// Vertices returns a copy of the vertex coordinates. The copy preserves the
// linear-ownership model: callers may not alias the mesh's internal storage.
func (m *Mesh) Vertices() []float64 {
	vs := make([]float64, len(m.verts))
	copy(vs, m.verts)
	return vs
}

// Cell returns the vertex indices joined by cell i, always (i, i+1).
func (m *Mesh) Cell(i int) (int, int) { return i, i + 1 }

// CellBounds returns the left and right coordinates of cell i.
func (m *Mesh) CellBounds(i int) (float64, float64) {
	return m.verts[i], m.verts[i+1]
}

// Midpoint returns the midpoint of cell i, used for spatial classification
// during refinement and material tagging.
func (m *Mesh) Midpoint(i int) float64 {
	return (m.verts[i] + m.verts[i+1]) / 2
}

// Min returns the leftmost vertex coordinate.
func (m *Mesh) Min() float64 { return m.verts[0] }

// Max returns the rightmost vertex coordinate.
func (m *Mesh) Max() float64 { return m.verts[len(m.verts)-1] }
