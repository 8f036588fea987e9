package animation

// State is the per-entity animation state.
// Requested and Held are driven by gameplay; the rest is owned by the Animator.
type State[S comparable] struct {
	Time      float64 // seconds until the next frame event
	Frame     int     // keyframe index in the current play node
	Node      NodeID  // node that produced the last frame update
	Stack     LogicStack
	Requested S
	Held      float64 // seconds since Requested last changed
}

// NewState creates the state of a freshly spawned animated entity
func NewState[S comparable](initial S) *State[S] {
	return &State[S]{Frame: FrameUnset, Requested: initial}
}

// Request sets the requested state, resetting Held only on change.
// Returns true if the state changed.
func (s *State[S]) Request(next S) bool {
	if s.Requested == next {
		return false
	}
	s.Requested = next
	s.Held = 0
	return true
}

// Cursor returns the playback position read by play nodes
func (s *State[S]) Cursor() Cursor {
	return Cursor{Time: s.Time, Frame: s.Frame, Last: s.Node}
}
