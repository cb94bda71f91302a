package refine

import (
	"fmt"

	"meshline/mesh"
)

// maxPasses bounds the number of bisection passes per spec. The budget-capped
// loop below always terminates when at least one cell is markable, so this is
// a backstop against unforeseen degenerate inputs, not a tuning knob.
const maxPasses = 1000

// Spec requests additional cells near a point: refinement runs until the mesh
// has its current count plus Cells cells, bisecting only cells whose midpoint
// lies strictly left of X.
type Spec struct {
	Cells uint    `yaml:"cells"`
	X     float64 `yaml:"x"`
}

// PassFunc observes a completed refinement pass: which spec it belongs to,
// the pass number within that spec, how many cells were bisected, and the
// resulting cell count. Used by callers to emit progress logs or events
// without coupling this package to any output mechanism.
type PassFunc func(spec Spec, pass, bisected, cells int)

// Apply runs each spec in order against the mesh state left by the previous
// one and returns the refined mesh. The input mesh is never modified.
//
// For each spec the target count is the current count plus spec.Cells. Every
// pass marks all cells with midpoint left of spec.X and bisects them, except
// that the last pass bisects only as many marked cells (leftmost first) as
// the remaining budget allows, so the final count lands exactly on the
// target.
//
// If a pass marks no cells while the target is unmet (the refinement point
// lies at or left of the domain start), Apply fails rather than looping
// forever.
func Apply(m *mesh.Mesh, specs []Spec, onPass PassFunc) (*mesh.Mesh, error) {
	for _, spec := range specs {
		target := m.NumCells() + int(spec.Cells)

		for pass := 1; m.NumCells() < target; pass++ {
			if pass > maxPasses {
				return nil, fmt.Errorf("refine: giving up after %d passes at x=%g (target %d cells, have %d)", maxPasses, spec.X, target, m.NumCells())
			}

			marked := markCells(m, spec.X)
			if len(marked) == 0 {
				return nil, fmt.Errorf("refine: no cell midpoint lies left of x=%g, refinement cannot make progress", spec.X)
			}

			if budget := target - m.NumCells(); len(marked) > budget {
				marked = marked[:budget]
			}

			m = bisect(m, marked)

			if onPass != nil {
				onPass(spec, pass, len(marked), m.NumCells())
			}
		}
	}

	return m, nil
}

// markCells returns the indices, ascending, of all cells whose midpoint lies
// strictly left of x.
func markCells(m *mesh.Mesh, x float64) []int {
	var marked []int
	for i := 0; i < m.NumCells(); i++ {
		if m.Midpoint(i) < x {
			marked = append(marked, i)
		}
	}
	return marked
}

// bisect builds a new mesh in which every marked cell is replaced by two
// cells of half its length. marked must be sorted ascending.
func bisect(m *mesh.Mesh, marked []int) *mesh.Mesh {
	verts := make([]float64, 0, m.NumVertices()+len(marked))

	next := 0
	for i := 0; i < m.NumCells(); i++ {
		verts = append(verts, m.Vertex(i))
		if next < len(marked) && marked[next] == i {
			verts = append(verts, m.Midpoint(i))
			next++
		}
	}
	verts = append(verts, m.Max())

	// Midpoints are strictly between their cell bounds, so the new slice is
	// strictly increasing and construction cannot fail.
	refined, err := mesh.New(verts)
	if err != nil {
		panic(fmt.Sprintf("refine: bisection produced an invalid mesh: %v", err))
	}
	return refined
}
