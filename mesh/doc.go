// Package mesh provides the foundational domain types for one-dimensional
// interval meshes. It defines:
//
//   - Mesh (an immutable sorted vertex sequence with implicit cell topology)
//   - Marker (per-entity unsigned integer tags, default 0)
//   - Builders for uniform meshes and meshes from explicit vertex lists
//
// A 1D mesh is fully determined by its vertex coordinates: cell i always joins
// vertex i and vertex i+1, so cells cover the domain with no gaps or overlaps
// by construction. The package intentionally keeps refinement, validation and
// tagging out of scope; those live in their own packages and consume Mesh
// through its read-only accessors.
package mesh
