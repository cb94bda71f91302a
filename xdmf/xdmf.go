package xdmf

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"meshline/mesh"
)

// FormatError reports a structural problem in an XDMF file: a missing or
// misnamed attribute, absent geometry, unsupported heavy data, or a tag array
// whose length disagrees with the mesh.
type FormatError struct {
	File string
	Msg  string
}

func (e *FormatError) Error() string { return fmt.Sprintf("%s in %s", e.Msg, e.File) }

func formatErrorf(file, format string, args ...any) *FormatError {
	return &FormatError{File: file, Msg: fmt.Sprintf(format, args...)}
}

// document mirrors the XDMF XML subset this package consumes.
type document struct {
	XMLName xml.Name `xml:"Xdmf"`
	Domain  struct {
		Grids []grid `xml:"Grid"`
	} `xml:"Domain"`
}

type grid struct {
	Name       string      `xml:"Name,attr"`
	Geometry   *element    `xml:"Geometry"`
	Topology   *element    `xml:"Topology"`
	Attributes []attribute `xml:"Attribute"`
}

type element struct {
	Type      string     `xml:"GeometryType,attr"`
	DataItems []dataItem `xml:"DataItem"`
}

type attribute struct {
	Name      string     `xml:"Name,attr"`
	Center    string     `xml:"Center,attr"`
	DataItems []dataItem `xml:"DataItem"`
}

type dataItem struct {
	Format string `xml:"Format,attr"`
	Text   string `xml:",chardata"`
}

func parse(path string) (*document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xdmf: reading %s: %w", path, err)
	}

	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, formatErrorf(path, "malformed XML (%v)", err)
	}

	if len(doc.Domain.Grids) == 0 {
		return nil, formatErrorf(path, "no Grid element found")
	}

	return &doc, nil
}

// inlineValues extracts the whitespace-separated scalar values of the first
// inline DataItem. External (HDF) heavy data is rejected.
func inlineValues(path string, items []dataItem) ([]string, error) {
	if len(items) == 0 {
		return nil, formatErrorf(path, "missing DataItem")
	}

	item := items[0]
	if item.Format != "" && !strings.EqualFold(item.Format, "XML") {
		return nil, formatErrorf(path, "unsupported DataItem format %q (only inline XML data is supported)", item.Format)
	}

	fields := strings.Fields(item.Text)
	if len(fields) == 0 {
		return nil, formatErrorf(path, "empty DataItem")
	}
	return fields, nil
}

// ReadMesh loads a 1D mesh from the file's Geometry data. Vertex coordinates
// are read as scalars in file order; the mesh is rebuilt through
// mesh.FromVertices, so ordering in the file does not matter.
func ReadMesh(path string) (*mesh.Mesh, error) {
	doc, err := parse(path)
	if err != nil {
		return nil, err
	}

	var geo *element
	for i := range doc.Domain.Grids {
		if g := doc.Domain.Grids[i].Geometry; g != nil {
			geo = g
			break
		}
	}
	if geo == nil {
		return nil, formatErrorf(path, "no Geometry element found")
	}

	fields, err := inlineValues(path, geo.DataItems)
	if err != nil {
		return nil, err
	}

	verts := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, formatErrorf(path, "invalid vertex coordinate %q", f)
		}
		verts[i] = v
	}

	m, err := mesh.FromVertices(verts)
	if err != nil {
		return nil, formatErrorf(path, "%v", err)
	}
	return m, nil
}

// ReadMarkers loads a tag array for entities (cells or facets) of one kind.
// The file must carry an Attribute literally named "f"; entities is the
// expected entity count, and a length mismatch is a FormatError.
func ReadMarkers(path string, entities int) (mesh.Marker, error) {
	doc, err := parse(path)
	if err != nil {
		return nil, err
	}

	var attr *attribute
	for i := range doc.Domain.Grids {
		g := &doc.Domain.Grids[i]
		if len(g.Attributes) > 0 {
			attr = &g.Attributes[0]
			break
		}
	}
	if attr == nil {
		return nil, formatErrorf(path, `attribute should be named "f" (no Attribute element found)`)
	}
	if attr.Name != "f" {
		return nil, formatErrorf(path, `attribute should be named "f" (found %q)`, attr.Name)
	}

	fields, err := inlineValues(path, attr.DataItems)
	if err != nil {
		return nil, err
	}

	if len(fields) != entities {
		return nil, formatErrorf(path, "tag array has %d entries, mesh has %d entities", len(fields), entities)
	}

	marker := mesh.NewMarker(entities)
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, formatErrorf(path, "invalid tag value %q", f)
		}
		marker[i] = uint(v)
	}

	return marker, nil
}
