package config

import (
	"fmt"

	"meshline/material"
	"meshline/mesh"
	"meshline/refine"
)

// Error reports an invalid or unresolvable meshing configuration, naming the
// field (or field group) at fault.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string { return fmt.Sprintf("mesh config: %s: %s", e.Field, e.Reason) }

func errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// MeshConfig is the full meshing configuration. All mesh-source and
// marker-source fields are optional; which ones are set decides the
// construction strategy (see Resolve). It is built once from user input,
// resolved once, then discarded.
type MeshConfig struct {
	// Mesh sources, in resolution precedence order.
	MeshFile     string     `yaml:"mesh_file,omitempty"`
	Mesh         *mesh.Mesh `yaml:"-"`
	Vertices     []float64  `yaml:"vertices,flow,omitempty"`
	InitialCells uint       `yaml:"initial_number_of_cells,omitempty"`
	Size         float64    `yaml:"size,omitempty"`

	// Refinements apply only to generated meshes, in order.
	Refinements []refine.Spec `yaml:"refinements,omitempty"`

	// Marker sources, in resolution precedence order.
	CellsFile    string      `yaml:"cells_file,omitempty"`
	FacetsFile   string      `yaml:"facets_file,omitempty"`
	CellMarkers  mesh.Marker `yaml:"-"`
	FacetMarkers mesh.Marker `yaml:"-"`

	Materials []material.Material `yaml:"materials,omitempty"`
}

// SourceKind discriminates how the mesh itself is obtained.
type SourceKind int

const (
	// SourceFile loads the mesh from an external XDMF file.
	SourceFile SourceKind = iota
	// SourcePrebuilt uses a mesh object supplied by the caller as-is.
	SourcePrebuilt
	// SourceVertices builds the mesh from an explicit vertex list.
	SourceVertices
	// SourceGenerated builds a uniform mesh and optionally refines it.
	SourceGenerated
)

// String returns the mesh source name for logs and events.
func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourcePrebuilt:
		return "prebuilt"
	case SourceVertices:
		return "vertices"
	case SourceGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// MarkerKind discriminates how the entity tag arrays are obtained.
type MarkerKind int

const (
	// MarkersFromFiles loads cell and facet tags from external XDMF files.
	MarkersFromFiles MarkerKind = iota
	// MarkersPrebuilt uses tag arrays supplied by the caller.
	MarkersPrebuilt
	// MarkersComputed validates the material partition and tags entities.
	MarkersComputed
)

// String returns the marker source name for logs and events.
func (k MarkerKind) String() string {
	switch k {
	case MarkersFromFiles:
		return "files"
	case MarkersPrebuilt:
		return "prebuilt"
	case MarkersComputed:
		return "computed"
	default:
		return "unknown"
	}
}

// Resolution is the fully validated outcome of resolving a MeshConfig: one
// mesh strategy, one marker strategy, no leftover ambiguity.
type Resolution struct {
	Source  SourceKind
	Markers MarkerKind
}

// Resolve picks exactly one mesh construction strategy and one marker
// strategy, first match wins:
//
//	mesh:    mesh_file > prebuilt mesh > vertices > generate-and-refine
//	markers: cells/facets files > prebuilt markers > compute from materials
//
// The generate-and-refine fallback requires positive initial_number_of_cells
// and size; with neither field usable and no other source present the
// configuration is unresolvable and Resolve fails.
func (c *MeshConfig) Resolve() (Resolution, error) {
	res := Resolution{}

	switch {
	case c.MeshFile != "":
		res.Source = SourceFile
	case c.Mesh != nil:
		res.Source = SourcePrebuilt
	case len(c.Vertices) > 0:
		res.Source = SourceVertices
	default:
		res.Source = SourceGenerated
		if c.InitialCells == 0 && c.Size == 0 {
			return res, errorf("mesh source", "no mesh source configured: set mesh_file, a mesh object, vertices, or initial_number_of_cells and size")
		}
		if c.InitialCells == 0 {
			return res, errorf("initial_number_of_cells", "must be a positive integer for a generated mesh")
		}
		if c.Size <= 0 {
			return res, errorf("size", "must be a positive scalar for a generated mesh, got %g", c.Size)
		}
	}

	switch {
	case c.CellsFile != "" || c.FacetsFile != "":
		if c.CellsFile == "" || c.FacetsFile == "" {
			return res, errorf("cells_file/facets_file", "both files are required to load markers, got cells_file=%q facets_file=%q", c.CellsFile, c.FacetsFile)
		}
		res.Markers = MarkersFromFiles
	case c.CellMarkers != nil || c.FacetMarkers != nil:
		if c.CellMarkers == nil || c.FacetMarkers == nil {
			return res, errorf("markers", "both cell and facet marker arrays are required, got one of the two")
		}
		res.Markers = MarkersPrebuilt
	default:
		res.Markers = MarkersComputed
	}

	return res, nil
}

// DomainSize returns the domain length used for border validation and facet
// tagging: the largest explicit vertex when vertices are given, the size
// field when set, and otherwise the mesh's rightmost vertex.
func (c *MeshConfig) DomainSize(m *mesh.Mesh) float64 {
	if len(c.Vertices) > 0 {
		size := c.Vertices[0]
		for _, v := range c.Vertices[1:] {
			if v > size {
				size = v
			}
		}
		return size
	}
	if c.Size > 0 {
		return c.Size
	}
	return m.Max()
}
