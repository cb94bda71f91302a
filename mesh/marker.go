package mesh

// Marker assigns an unsigned integer tag to every entity of one kind (cells
// or facets), indexed by entity id. The zero value of an entry means
// "untagged". Length always equals the entity count of the mesh it was built
// for.
type Marker []uint

// NewMarker returns a Marker for n entities, all tagged 0.
func NewMarker(n int) Marker { return make(Marker, n) }

// Clone returns an independent copy of the marker.
func (mk Marker) Clone() Marker {
	out := make(Marker, len(mk))
	copy(out, mk)
	return out
}
