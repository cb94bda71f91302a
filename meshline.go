// Package meshline provides a high-level façade over the 1D mesh
// construction pipeline used by finite-element-style simulations. Most
// applications interact with this package by:
//  1. Creating a Mesher via New() (optionally injecting a logger and hooks)
//  2. Describing the mesh in a config.MeshConfig (directly or from YAML)
//  3. Calling Build() to obtain the mesh plus its cell and facet tag arrays
//
// The façade delegates to the domain packages (mesh, refine, material,
// subdomain, config, xdmf) while keeping setup ergonomics concise. The
// pipeline is fully synchronous: ownership of the mesh moves linearly
// through resolve → build/load → refine → validate → tag, and Build either
// returns a complete Result or fails at the first detected error.
package meshline

import (
	"github.com/google/uuid"

	"meshline/config"
	"meshline/logging"
	"meshline/material"
	"meshline/mesh"
	"meshline/refine"
	"meshline/subdomain"
	"meshline/xdmf"
)

// Options configures a Mesher instance.
type Options struct {
	// Logger receives pipeline progress output. Defaults to NoOpLogger so
	// the core stays silent unless a logger is injected.
	Logger logging.Logger

	// Hooks observe pipeline lifecycle events (see hooks.go). They fire
	// synchronously in registration order.
	Hooks []Hook
}

// Mesher builds tagged meshes from configurations. It is stateless between
// Build calls and safe to reuse.
type Mesher struct {
	opts Options
}

// New creates a Mesher with optional overrides.
func New(optFns ...func(o *Options)) *Mesher {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Mesher{opts: opts}
}

// Result is the output of a pipeline run: the mesh topology and the two
// entity tag arrays consumed by the solver. BuildID uniquely identifies the
// run and is attached to every log line and hook event it produced.
type Result struct {
	BuildID      string
	Mesh         *mesh.Mesh
	CellMarkers  mesh.Marker
	FacetMarkers mesh.Marker
}

// Build runs the full pipeline for one configuration: resolve the
// construction strategy, build or load the mesh, refine it when generated,
// then validate the material partition and produce the tag arrays.
//
// Errors are returned at the point of detection and no partial result is
// ever produced.
func (m *Mesher) Build(cfg *config.MeshConfig) (*Result, error) {
	buildID := uuid.NewString()
	log := m.opts.Logger

	res, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	log.Debug("resolved mesh configuration", "build_id", buildID, "source", res.Source.String(), "markers", res.Markers.String())
	m.fire(Event{BuildID: buildID, Stage: StageResolve, Detail: "source=" + res.Source.String() + " markers=" + res.Markers.String()})

	msh, err := m.acquireMesh(buildID, cfg, res)
	if err != nil {
		return nil, err
	}

	log.Info("mesh ready", "build_id", buildID, "cells", msh.NumCells(), "source", res.Source.String())
	m.fire(Event{BuildID: buildID, Stage: StageBuild, Cells: msh.NumCells(), Detail: res.Source.String()})

	cells, facets, err := m.acquireMarkers(buildID, cfg, res, msh)
	if err != nil {
		return nil, err
	}

	m.fire(Event{BuildID: buildID, Stage: StageComplete, Cells: msh.NumCells()})

	return &Result{
		BuildID:      buildID,
		Mesh:         msh,
		CellMarkers:  cells,
		FacetMarkers: facets,
	}, nil
}

// acquireMesh produces the mesh topology for the resolved source strategy.
func (m *Mesher) acquireMesh(buildID string, cfg *config.MeshConfig, res config.Resolution) (*mesh.Mesh, error) {
	log := m.opts.Logger

	switch res.Source {
	case config.SourceFile:
		msh, err := xdmf.ReadMesh(cfg.MeshFile)
		if err != nil {
			return nil, err
		}
		log.Info("loaded mesh", "build_id", buildID, "file", cfg.MeshFile, "cells", msh.NumCells())
		return msh, nil

	case config.SourcePrebuilt:
		return cfg.Mesh, nil

	case config.SourceVertices:
		return mesh.FromVertices(cfg.Vertices)

	default:
		msh, err := mesh.Uniform(int(cfg.InitialCells), cfg.Size)
		if err != nil {
			return nil, err
		}

		if len(cfg.Refinements) == 0 {
			log.Debug("no refinement parameters found", "build_id", buildID)
			return msh, nil
		}

		return refine.Apply(msh, cfg.Refinements, func(spec refine.Spec, pass, bisected, cells int) {
			log.Info("refinement pass completed", "build_id", buildID, "x", spec.X, "pass", pass, "bisected", bisected, "cells", cells)
			m.fire(Event{BuildID: buildID, Stage: StageRefinePass, Cells: cells})
		})
	}
}

// acquireMarkers produces the cell and facet tag arrays for the resolved
// marker strategy.
func (m *Mesher) acquireMarkers(buildID string, cfg *config.MeshConfig, res config.Resolution, msh *mesh.Mesh) (mesh.Marker, mesh.Marker, error) {
	log := m.opts.Logger

	switch res.Markers {
	case config.MarkersFromFiles:
		cells, err := xdmf.ReadMarkers(cfg.CellsFile, msh.NumCells())
		if err != nil {
			return nil, nil, err
		}
		facets, err := xdmf.ReadMarkers(cfg.FacetsFile, msh.NumVertices())
		if err != nil {
			return nil, nil, err
		}
		log.Info("loaded markers", "build_id", buildID, "cells_file", cfg.CellsFile, "facets_file", cfg.FacetsFile, "cells", len(cells))
		return cells, facets, nil

	case config.MarkersPrebuilt:
		if len(cfg.CellMarkers) != msh.NumCells() {
			return nil, nil, &config.Error{Field: "markers", Reason: "cell marker length does not match the mesh"}
		}
		if len(cfg.FacetMarkers) != msh.NumVertices() {
			return nil, nil, &config.Error{Field: "markers", Reason: "facet marker length does not match the mesh"}
		}
		return cfg.CellMarkers, cfg.FacetMarkers, nil

	default:
		size := cfg.DomainSize(msh)

		if len(cfg.Materials) > 1 {
			if err := material.CheckBorders(size, cfg.Materials); err != nil {
				return nil, nil, err
			}
			m.fire(Event{BuildID: buildID, Stage: StageValidate, Cells: msh.NumCells()})
		}

		cells, facets := subdomain.Tag(msh, cfg.Materials, size)
		log.Info("tagged mesh entities", "build_id", buildID, "materials", len(cfg.Materials), "cells", len(cells), "facets", len(facets))
		m.fire(Event{BuildID: buildID, Stage: StageTag, Cells: msh.NumCells()})

		return cells, facets, nil
	}
}
