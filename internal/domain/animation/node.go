package animation

import "fmt"

// Node is one unit of the animation graph.
// The variant set is closed: *PlayNode, *MatchNode[S] and *AllNode.
type Node interface {
	ID() NodeID
	// References returns every node id this node can hand evaluation to
	References() []NodeID
	setID(id NodeID)
}

// FrameUnset is the keyframe index before the first frame of a sequence.
// Advancing from it displays keyframe 0.
const FrameUnset = -1

// Cursor is the per-entity playback position a play node reads
type Cursor struct {
	Time  float64 // seconds left on the displayed frame, <= 0 means elapsed
	Frame int     // stored keyframe index
	Last  NodeID  // node that produced the last frame update
}

// PlayNode steps through a keyframe sequence.
// Speed scales delta time; 0 pauses the countdown.
type PlayNode struct {
	id           NodeID
	Sequence     Sequence
	Speed        float64
	Loop         bool
	ResetOnEntry bool // restart from the first frame when another node was active
}

// NewPlayNode creates a play node with a fresh id and speed 1
func NewPlayNode(seq Sequence, loop bool) *PlayNode {
	return &PlayNode{
		id:       NewNodeID(),
		Sequence: seq,
		Speed:    1,
		Loop:     loop,
	}
}

// WithID replaces the node id
func (n *PlayNode) WithID(id NodeID) *PlayNode {
	n.id = id
	return n
}

// WithSpeed sets the speed multiplier
func (n *PlayNode) WithSpeed(speed float64) *PlayNode {
	n.Speed = speed
	return n
}

// WithReset sets the reset-on-entry flag
func (n *PlayNode) WithReset(reset bool) *PlayNode {
	n.ResetOnEntry = reset
	return n
}

// ID returns the node id
func (n *PlayNode) ID() NodeID { return n.id }

// References returns nil; play nodes are leaves
func (n *PlayNode) References() []NodeID { return nil }

func (n *PlayNode) setID(id NodeID) { n.id = id }

// Step advances playback for one tick
func (n *PlayNode) Step(c Cursor, dt float64) StepResult {
	length := n.Sequence.Len()
	if length == 0 {
		return StepNoUpdate{}
	}

	index := c.Frame
	switch {
	case n.ResetOnEntry && c.Last != n.id:
		index = FrameUnset
	case c.Last != n.id && index >= length:
		// another node's finished marker or an index past this sequence
		index = FrameUnset
	case index < FrameUnset || index > length:
		// length itself is this node's finished marker and is kept as is
		index = ((index % length) + length) % length
	}

	if c.Time > 0 {
		return StepSprite{
			Delay:  c.Time - dt*n.Speed,
			Frame:  index,
			Sprite: KeepSprite,
			Node:   n.id,
		}
	}

	// Overshoot (c.Time <= 0) is carried into the next delay
	next := index + 1
	if f, ok := n.Sequence.At(next); ok {
		return StepSprite{Delay: f.Delay + c.Time, Frame: next, Sprite: f.Sprite, Node: n.id}
	}
	if n.Loop {
		f, _ := n.Sequence.At(0)
		return StepSprite{Delay: f.Delay + c.Time, Frame: 0, Sprite: f.Sprite, Node: n.id}
	}
	if next == length {
		return StepFinished{}
	}
	return StepNoUpdate{}
}

// MatchNode routes evaluation by the entity's requested state
type MatchNode[S comparable] struct {
	id       NodeID
	Targets  map[S]NodeID
	Fallback NodeID // NilID for none
}

// NewMatchNode creates a match node with a fresh id
func NewMatchNode[S comparable](fallback NodeID) *MatchNode[S] {
	return &MatchNode[S]{
		id:       NewNodeID(),
		Targets:  make(map[S]NodeID),
		Fallback: fallback,
	}
}

// WithID replaces the node id
func (n *MatchNode[S]) WithID(id NodeID) *MatchNode[S] {
	n.id = id
	return n
}

// On maps a state to a target node
func (n *MatchNode[S]) On(state S, target NodeID) *MatchNode[S] {
	if n.Targets == nil {
		n.Targets = make(map[S]NodeID)
	}
	n.Targets[state] = target
	return n
}

// ID returns the node id
func (n *MatchNode[S]) ID() NodeID { return n.id }

// References returns all mapped targets and the fallback
func (n *MatchNode[S]) References() []NodeID {
	refs := make([]NodeID, 0, len(n.Targets)+1)
	for _, id := range n.Targets {
		refs = append(refs, id)
	}
	if n.Fallback != NilID {
		refs = append(refs, n.Fallback)
	}
	return refs
}

func (n *MatchNode[S]) setID(id NodeID) { n.id = id }

// Lookup returns the target mapped for state
func (n *MatchNode[S]) Lookup(state S) (NodeID, bool) {
	id, ok := n.Targets[state]
	return id, ok
}

// Step picks the branch for the requested state.
// An unmapped state without fallback finishes instead of failing.
func (n *MatchNode[S]) Step(requested S) StepResult {
	if id, ok := n.Targets[requested]; ok {
		return StepRedirect{Target: id}
	}
	if n.Fallback != NilID {
		return StepRedirect{Target: n.Fallback}
	}
	return StepFinished{}
}

// AllNode plays its children one after another, optionally looping
type AllNode struct {
	id       NodeID
	Children []NodeID
	Loop     bool
}

// NewAllNode creates a composite node with a fresh id
func NewAllNode(loop bool, children ...NodeID) *AllNode {
	return &AllNode{
		id:       NewNodeID(),
		Children: children,
		Loop:     loop,
	}
}

// WithID replaces the node id
func (n *AllNode) WithID(id NodeID) *AllNode {
	n.id = id
	return n
}

// ID returns the node id
func (n *AllNode) ID() NodeID { return n.id }

// References returns the children
func (n *AllNode) References() []NodeID {
	refs := make([]NodeID, len(n.Children))
	copy(refs, n.Children)
	return refs
}

func (n *AllNode) setID(id NodeID) { n.id = id }

// Step pops this node's position off the stack and descends into that child.
// The returned stack no longer holds the popped entry.
func (n *AllNode) Step(stack LogicStack) (StepResult, LogicStack) {
	self := StackEntry{Node: n.id}

	top, rest, ok := stack.Pop()
	if !ok {
		top = self
	}

	var entry StackEntry
	switch {
	case top.Node != n.id || top.Child < 0:
		// position belongs to another composite or is stale
		rest = rest.Clear()
		entry = self
	case top.Child >= len(n.Children):
		if n.Loop {
			rest = rest.Clear()
			entry = self
		} else {
			entry = StackEntry{Node: n.id, Child: len(n.Children) - 1}
		}
	default:
		entry = top
	}

	if entry.Child < 0 || entry.Child >= len(n.Children) {
		return StepFailure{
			Message: fmt.Sprintf("all node %s has no child at index %d (children: %d)", n.id, entry.Child, len(n.Children)),
		}, rest
	}

	return StepDescend{Target: n.Children[entry.Child], Return: entry}, rest
}
