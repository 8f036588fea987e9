// Package animation implements the sprite animation tree: a graph of play,
// match and composite nodes evaluated once per tick for every animated entity.
//
// A Tree is assembled at startup, frozen, and then shared read-only by all
// entities. Per-entity progress lives in State, which the Animator updates
// from each evaluation result.
package animation

import (
	"fmt"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Tree owns every node of an animation graph and the start node
type Tree[S comparable] struct {
	nodes  map[NodeID]Node
	start  NodeID
	frozen bool
	logger zerolog.Logger
}

// NewTree creates a tree whose start node is root.
// A root without id gets a fresh one.
func NewTree[S comparable](root Node) *Tree[S] {
	if root == nil {
		panic("animation: NewTree called with nil root")
	}
	t := &Tree[S]{
		nodes:  make(map[NodeID]Node),
		logger: zerolog.Nop(),
	}
	if err := t.checkVariant(root); err != nil {
		panic(err)
	}
	if root.ID() == NilID {
		root.setID(NewNodeID())
	}
	t.nodes[root.ID()] = root
	t.start = root.ID()
	return t
}

// SetLogger sets the logger used for fallback diagnostics
func (t *Tree[S]) SetLogger(logger zerolog.Logger) *Tree[S] {
	t.logger = logger
	return t
}

// Insert adds a node and returns its id.
// A node without id gets a fresh one; an existing id leaves the tree unchanged.
func (t *Tree[S]) Insert(node Node) (NodeID, error) {
	if t.frozen {
		return NilID, ErrTreeFrozen
	}
	if err := t.checkVariant(node); err != nil {
		return NilID, err
	}
	if node.ID() == NilID {
		node.setID(NewNodeID())
	}
	id := node.ID()
	if _, exists := t.nodes[id]; exists {
		return NilID, eris.Wrapf(ErrDuplicateNode, "node %s", id)
	}
	t.nodes[id] = node
	return id, nil
}

// MustInsert is Insert that panics on error
func (t *Tree[S]) MustInsert(node Node) NodeID {
	id, err := t.Insert(node)
	if err != nil {
		panic(err)
	}
	return id
}

// SetStart changes the root used for evaluation
func (t *Tree[S]) SetStart(id NodeID) error {
	if t.frozen {
		return ErrTreeFrozen
	}
	if _, ok := t.nodes[id]; !ok {
		return eris.Wrapf(ErrNodeNotFound, "start node %s", id)
	}
	t.start = id
	return nil
}

// Start returns the root id
func (t *Tree[S]) Start() NodeID { return t.start }

// Len returns the number of nodes
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Lookup returns the node with id
func (t *Tree[S]) Lookup(id NodeID) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Nodes returns all nodes ordered by id
func (t *Tree[S]) Nodes() []Node {
	out := make([]Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

// Frozen reports whether the tree rejects further mutation
func (t *Tree[S]) Frozen() bool { return t.frozen }

// Freeze stops all further mutation and returns a read-only view.
// The view may be shared by goroutines evaluating different entities.
func (t *Tree[S]) Freeze() *View[S] {
	t.frozen = true
	return &View[S]{tree: t}
}

// Validate checks that every reference resolves, that every all node has
// children and that no cycle exists between match and composite nodes.
func (t *Tree[S]) Validate() error {
	if _, ok := t.nodes[t.start]; !ok {
		return eris.Wrapf(ErrNodeNotFound, "start node %s", t.start)
	}
	for _, n := range t.Nodes() {
		if all, ok := n.(*AllNode); ok && len(all.Children) == 0 {
			return eris.Wrapf(ErrEmptyComposite, "node %s", n.ID())
		}
		for _, ref := range n.References() {
			if _, ok := t.nodes[ref]; !ok {
				return eris.Wrapf(ErrNodeNotFound, "node %s references %s", n.ID(), ref)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	marks := make(map[NodeID]int, len(t.nodes))
	var walk func(id NodeID) error
	walk = func(id NodeID) error {
		switch marks[id] {
		case visiting:
			return eris.Wrapf(ErrCycle, "through node %s", id)
		case done:
			return nil
		}
		marks[id] = visiting
		for _, ref := range t.nodes[id].References() {
			if err := walk(ref); err != nil {
				return err
			}
		}
		marks[id] = done
		return nil
	}
	for _, n := range t.Nodes() {
		if err := walk(n.ID()); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate walks the tree from the start node for one entity and one tick.
// The given stack is not modified; the updated stack is returned.
// On error the returned stack is nil and nothing should be committed.
// A reference to a missing node panics.
func (t *Tree[S]) Evaluate(st State[S], dt float64, stack LogicStack) (Result, LogicStack, error) {
	res, out, err := t.visit(t.start, &st, dt, stack.Clone(), 0)
	if err != nil {
		return Result{}, nil, err
	}
	return res, out, nil
}

func (t *Tree[S]) visit(id NodeID, st *State[S], dt float64, stack LogicStack, depth int) (Result, LogicStack, error) {
	if depth > len(t.nodes) {
		panic(eris.Wrapf(ErrCycle, "evaluation passed %d nodes, last %s", depth, id))
	}

	var step StepResult
	switch n := t.mustNode(id).(type) {
	case *PlayNode:
		step = n.Step(st.Cursor(), dt)
	case *MatchNode[S]:
		step = n.Step(st.Requested)
		if _, mapped := n.Lookup(st.Requested); !mapped {
			t.logFallback(n, st.Requested)
		}
	case *AllNode:
		step, stack = n.Step(stack)
	default:
		panic(eris.Wrapf(ErrUnsupportedNode, "node %s (%T)", id, n))
	}

	switch s := step.(type) {
	case StepRedirect:
		return t.visit(s.Target, st, dt, stack, depth+1)
	case StepDescend:
		res, out, err := t.visit(s.Target, st, dt, stack, depth+1)
		if err != nil {
			return res, out, err
		}
		if res.Kind == KindFinished {
			// the next child starts on the following tick
			return res, out.Push(StackEntry{Node: s.Return.Node, Child: s.Return.Child + 1}), nil
		}
		return res, out.Push(s.Return), nil
	case StepSprite:
		return Result{
			Kind:          KindUpdate,
			Time:          s.Delay,
			KeyframeIndex: s.Frame,
			AtlasIndex:    s.Sprite,
			CurrentNode:   s.Node,
		}, stack, nil
	case StepFinished:
		return Result{Kind: KindFinished}, stack, nil
	case StepNoUpdate:
		return Result{Kind: KindNoUpdate}, stack, nil
	case StepFailure:
		return Result{}, stack, eris.Wrap(ErrEvaluation, s.Message)
	default:
		panic(fmt.Sprintf("animation: unknown step result %T", s))
	}
}

func (t *Tree[S]) mustNode(id NodeID) Node {
	n, ok := t.nodes[id]
	if !ok {
		var zero S
		panic(eris.Wrapf(ErrNodeNotFound, "node %s in tree of state %T", id, zero))
	}
	return n
}

func (t *Tree[S]) checkVariant(node Node) error {
	switch node.(type) {
	case *PlayNode, *MatchNode[S], *AllNode:
		return nil
	default:
		return eris.Wrapf(ErrUnsupportedNode, "%T", node)
	}
}

func (t *Tree[S]) logFallback(n *MatchNode[S], requested S) {
	if n.Fallback == NilID {
		t.logger.Debug().
			Str("node", n.ID().String()).
			Interface("state", requested).
			Msg("state not mapped and no fallback, finishing")
		return
	}
	t.logger.Debug().
		Str("node", n.ID().String()).
		Interface("state", requested).
		Str("fallback", n.Fallback.String()).
		Msg("state not mapped, falling back")
}

// View is a read-only handle on a frozen tree
type View[S comparable] struct {
	tree *Tree[S]
}

// Evaluate is Tree.Evaluate
func (v *View[S]) Evaluate(st State[S], dt float64, stack LogicStack) (Result, LogicStack, error) {
	return v.tree.Evaluate(st, dt, stack)
}

// Start returns the root id
func (v *View[S]) Start() NodeID { return v.tree.start }

// Len returns the number of nodes
func (v *View[S]) Len() int { return len(v.tree.nodes) }

// Lookup returns the node with id
func (v *View[S]) Lookup(id NodeID) (Node, bool) { return v.tree.Lookup(id) }
