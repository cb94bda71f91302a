// Package config defines the typed meshing configuration and resolves it
// into concrete construction strategies.
//
// MeshConfig carries optional fields for every way a mesh and its tag arrays
// can be obtained (external file, pre-built objects, explicit vertices,
// generate-and-refine). Resolution happens exactly once, up front, turning
// key-presence dispatch into two small discriminated unions (SourceKind,
// MarkerKind) so the pipeline never re-checks field presence. Validation is a
// single pass producing either a usable strategy or a descriptive *Error,
// never a partially valid structure.
//
// Load and LoadFile decode the YAML surface with strict field checking.
package config
