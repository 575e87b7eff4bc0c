// Package trace holds the pieces shared by every step-trace engine: the Action
// tag type and a generic append-only Recorder that numbers steps.
//
// A trace is an ordered sequence of steps whose sequence numbers start at 0 and
// increase by one. Engines own the step types; Recorder only guarantees the
// numbering and that the slice it hands out cannot be used to rewrite history.
package trace

// Action tags the state transition a step records. Each engine defines its own
// closed set of values.
type Action string

// Actions shared by all engines.
const (
	ActionInitialize Action = "initialize"
	ActionComplete   Action = "complete"
)

// Recorder accumulates steps of type S.
//
// Usage:
//
//	var rec trace.Recorder[Step]
//	rec.Append(Step{Step: rec.Next(), Action: trace.ActionInitialize})
//
// The zero value is ready to use.
type Recorder[S any] struct {
	steps []S
}

// Next returns the sequence number the next appended step must carry.
func (r *Recorder[S]) Next() int { return len(r.steps) }

// Append adds s to the trace. The caller is responsible for s owning every
// collection it embeds.
func (r *Recorder[S]) Append(s S) {
	r.steps = append(r.steps, s)
}

// Len returns the number of recorded steps.
func (r *Recorder[S]) Len() int { return len(r.steps) }

// Steps returns a copy of the recorded steps.
func (r *Recorder[S]) Steps() []S {
	out := make([]S, len(r.steps))
	copy(out, r.steps)

	return out
}
