// Package subdomain assigns material and boundary tags to mesh entities.
//
// Cell tags carry the id of the material whose border interval contains the
// cell midpoint. Facet tags mark the domain endpoints: 1 at x=0, 2 at x=size,
// 0 everywhere else. Both passes are deterministic single sweeps and can be
// re-run on the same inputs with identical results.
package subdomain
