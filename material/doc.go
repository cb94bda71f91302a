// Package material defines simulation materials (subdomains) and validates
// that a multi-material configuration exactly partitions the domain.
//
// Each material owns a contiguous border interval [low, high]. When more than
// one material is configured, the sorted intervals must start at zero, chain
// without gaps or overlaps, and end at the domain size. A single material
// trivially covers everything and is never validated.
package material
