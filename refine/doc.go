// Package refine implements local adaptive refinement of 1D meshes by
// repeated bisection. Cells whose midpoint lies left of a refinement point
// are bisected pass after pass until a target cell count is reached,
// concentrating resolution near a region of interest (typically a flux
// boundary at the left of the domain) without refining the whole mesh.
//
// Refinement never mutates its input: each pass builds a new mesh, and the
// final mesh is returned to the caller. Tags are not touched; tagging always
// runs after refinement.
package refine
