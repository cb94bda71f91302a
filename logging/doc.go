// Package logging provides a minimal logging interface and adapters for the
// meshing pipeline.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the pipeline uses for progress output. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, library embedding)
//   - MeshLogger with contextual helpers (component, build id) and domain
//     helpers for refinement passes and tagging summaries
//
// The interface is deliberately minimal so the core stays side-effect-free
// with respect to output: callers plug in whatever structured logger their
// application already uses, or nothing at all.
package logging
