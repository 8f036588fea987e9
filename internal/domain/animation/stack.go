package animation

// StackEntry records which child a composite node is playing
type StackEntry struct {
	Node  NodeID
	Child int
}

// LogicStack is a LIFO of composite positions, persisted per entity between ticks.
// Operations return the updated stack instead of mutating in place.
type LogicStack []StackEntry

// Clone returns a copy that shares no memory with s
func (s LogicStack) Clone() LogicStack {
	if s == nil {
		return nil
	}
	out := make(LogicStack, len(s))
	copy(out, s)
	return out
}

// Push returns the stack with e on top
func (s LogicStack) Push(e StackEntry) LogicStack {
	return append(s, e)
}

// Pop returns the top entry and the remaining stack
func (s LogicStack) Pop() (StackEntry, LogicStack, bool) {
	if len(s) == 0 {
		return StackEntry{}, s, false
	}
	last := len(s) - 1
	return s[last], s[:last], true
}

// Top returns the top entry without removing it
func (s LogicStack) Top() (StackEntry, bool) {
	if len(s) == 0 {
		return StackEntry{}, false
	}
	return s[len(s)-1], true
}

// Clear returns an empty stack
func (s LogicStack) Clear() LogicStack {
	return s[:0]
}
