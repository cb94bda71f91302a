// Package xdmf reads externally stored meshes and entity tag arrays from the
// XML subset of the XDMF format that 1D simulation pipelines typically write:
// a Grid with inline Geometry/Topology DataItems for the mesh, and a Grid
// with a cell- or facet-centered Attribute for tag arrays.
//
// The tag attribute must be literally named "f"; any other name is a fatal
// FormatError naming the offending file. Heavy data referenced from external
// HDF5 files is not supported and fails with a clear error.
package xdmf
