package meshline

// Stage identifies a lifecycle point of the meshing pipeline where hooks are
// fired. Hooks provide a structured event stream over the pipeline without
// coupling the core to any output mechanism: progress reporting, metrics and
// test instrumentation all attach the same way.
type Stage string

const (
	// StageResolve fires after the configuration has been resolved into a
	// mesh and marker strategy.
	StageResolve Stage = "resolve"

	// StageBuild fires after mesh topology has been constructed or loaded.
	StageBuild Stage = "build"

	// StageRefinePass fires after each bisection pass of the refinement
	// loop.
	StageRefinePass Stage = "refine_pass"

	// StageValidate fires after the material partition has been validated.
	StageValidate Stage = "validate"

	// StageTag fires after cell and facet markers have been produced.
	StageTag Stage = "tag"

	// StageComplete fires once the pipeline has produced its result.
	StageComplete Stage = "complete"
)

// Event is the record delivered to hooks. Cells carries the mesh's cell
// count at the time the event fired; Detail is a short human-readable
// elaboration (chosen strategy, refinement point, marker counts).
type Event struct {
	BuildID string
	Stage   Stage
	Cells   int
	Detail  string
}

// Hook observes pipeline events. Hooks run synchronously in registration
// order on the pipeline goroutine, so they must be fast and must not retain
// the Event's mesh-derived data beyond the call.
type Hook func(Event)

// fire delivers an event to every registered hook in order.
func (m *Mesher) fire(ev Event) {
	for _, h := range m.opts.Hooks {
		h(ev)
	}
}
