package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quarter-second frames keep the float arithmetic exact
func quarterSeq(sprites ...int) Sequence {
	return SequenceFromIndices(4, sprites...)
}

func TestPlayNode_EmptySequence(t *testing.T) {
	n := NewPlayNode(NewSequence(0.25), true)

	assert.Equal(t, StepNoUpdate{}, n.Step(Cursor{}, 0.1))
}

func TestPlayNode_TimeRemaining(t *testing.T) {
	n := NewPlayNode(quarterSeq(10, 11, 12), false).WithSpeed(2)

	res := n.Step(Cursor{Time: 0.5, Frame: 1, Last: n.ID()}, 0.125)

	assert.Equal(t, StepSprite{Delay: 0.25, Frame: 1, Sprite: KeepSprite, Node: n.ID()}, res)
}

func TestPlayNode_AdvanceCarriesOvershoot(t *testing.T) {
	n := NewPlayNode(quarterSeq(10, 11, 12), false)

	res := n.Step(Cursor{Time: -0.125, Frame: 0, Last: n.ID()}, 0.5)

	assert.Equal(t, StepSprite{Delay: 0.125, Frame: 1, Sprite: 11, Node: n.ID()}, res)
}

func TestPlayNode_FirstFrameFromUnset(t *testing.T) {
	n := NewPlayNode(quarterSeq(10, 11), false)

	res := n.Step(Cursor{Frame: FrameUnset}, 0.1)

	assert.Equal(t, StepSprite{Delay: 0.25, Frame: 0, Sprite: 10, Node: n.ID()}, res)
}

func TestPlayNode_FinishedOnce(t *testing.T) {
	n := NewPlayNode(quarterSeq(10, 11), false)

	assert.Equal(t, StepFinished{}, n.Step(Cursor{Frame: 1, Last: n.ID()}, 0.1))
	// the driver bumps the index to the finished marker
	assert.Equal(t, StepNoUpdate{}, n.Step(Cursor{Frame: 2, Last: n.ID()}, 0.1))
	assert.Equal(t, StepNoUpdate{}, n.Step(Cursor{Frame: 2, Time: -3, Last: n.ID()}, 0.1))
}

func TestPlayNode_LoopWrapsWithOvershoot(t *testing.T) {
	n := NewPlayNode(quarterSeq(10, 11, 12), true)

	res := n.Step(Cursor{Time: -0.125, Frame: 2, Last: n.ID()}, 0.5)

	assert.Equal(t, StepSprite{Delay: 0.125, Frame: 0, Sprite: 10, Node: n.ID()}, res)
}

func TestPlayNode_ResetOnEntry(t *testing.T) {
	other := NewNodeID()

	t.Run("restarts when another node was active", func(t *testing.T) {
		n := NewPlayNode(quarterSeq(10, 11, 12), false).WithReset(true)
		res := n.Step(Cursor{Frame: 2, Last: other}, 0.1)
		assert.Equal(t, StepSprite{Delay: 0.25, Frame: 0, Sprite: 10, Node: n.ID()}, res)
	})

	t.Run("keeps position while active", func(t *testing.T) {
		n := NewPlayNode(quarterSeq(10, 11, 12), false).WithReset(true)
		res := n.Step(Cursor{Frame: 1, Last: n.ID()}, 0.1)
		assert.Equal(t, StepSprite{Delay: 0.25, Frame: 2, Sprite: 12, Node: n.ID()}, res)
	})

	t.Run("without reset the stored index is used", func(t *testing.T) {
		n := NewPlayNode(quarterSeq(10, 11, 12), false)
		res := n.Step(Cursor{Frame: 1, Last: other}, 0.1)
		assert.Equal(t, StepSprite{Delay: 0.25, Frame: 2, Sprite: 12, Node: n.ID()}, res)
	})

	t.Run("without reset another node's finished marker restarts", func(t *testing.T) {
		n := NewPlayNode(quarterSeq(10, 11), false)
		res := n.Step(Cursor{Frame: 2, Last: other}, 0.1)
		assert.Equal(t, StepSprite{Delay: 0.25, Frame: 0, Sprite: 10, Node: n.ID()}, res)

		res = n.Step(Cursor{Frame: 5, Last: other}, 0.1)
		assert.Equal(t, StepSprite{Delay: 0.25, Frame: 0, Sprite: 10, Node: n.ID()}, res)
	})
}

func TestPlayNode_StaleIndexWraps(t *testing.T) {
	n := NewPlayNode(quarterSeq(10, 11, 12), false)

	// 7 % 3 == 1, so the next frame is 2
	res := n.Step(Cursor{Frame: 7, Last: n.ID()}, 0.1)

	assert.Equal(t, StepSprite{Delay: 0.25, Frame: 2, Sprite: 12, Node: n.ID()}, res)
}

func TestMatchNode_Step(t *testing.T) {
	x, y := NewNodeID(), NewNodeID()

	t.Run("mapped", func(t *testing.T) {
		n := NewMatchNode[string](y).On("A", x)
		assert.Equal(t, StepRedirect{Target: x}, n.Step("A"))
	})

	t.Run("fallback", func(t *testing.T) {
		n := NewMatchNode[string](y).On("A", x)
		assert.Equal(t, StepRedirect{Target: y}, n.Step("B"))
	})

	t.Run("no fallback finishes", func(t *testing.T) {
		n := NewMatchNode[string](NilID).On("A", x)
		assert.Equal(t, StepFinished{}, n.Step("B"))
	})
}

func TestMatchNode_References(t *testing.T) {
	x, y := NewNodeID(), NewNodeID()

	assert.ElementsMatch(t, []NodeID{x, y}, NewMatchNode[int](y).On(1, x).References())
	assert.ElementsMatch(t, []NodeID{x}, NewMatchNode[int](NilID).On(1, x).References())
}

func TestAllNode_Step(t *testing.T) {
	c0, c1 := NewNodeID(), NewNodeID()
	outer := NewNodeID()

	tests := []struct {
		name      string
		loop      bool
		stack     func(self NodeID) LogicStack
		wantChild int
	}{
		{"empty stack starts at first child", false, func(NodeID) LogicStack { return nil }, 0},
		{"own entry is resumed", false, func(self NodeID) LogicStack { return LogicStack{{Node: self, Child: 1}} }, 1},
		{"foreign entry resets", false, func(NodeID) LogicStack { return LogicStack{{Node: outer}, {Node: outer, Child: 1}} }, 0},
		{"past the end clamps", false, func(self NodeID) LogicStack { return LogicStack{{Node: self, Child: 2}} }, 1},
		{"past the end loops", true, func(self NodeID) LogicStack { return LogicStack{{Node: self, Child: 2}} }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewAllNode(tt.loop, c0, c1)

			res, rest := n.Step(tt.stack(n.ID()))

			want := StepDescend{
				Target: []NodeID{c0, c1}[tt.wantChild],
				Return: StackEntry{Node: n.ID(), Child: tt.wantChild},
			}
			assert.Equal(t, want, res)
			assert.Empty(t, rest)
		})
	}
}

func TestAllNode_KeepsOuterEntries(t *testing.T) {
	c0 := NewNodeID()
	n := NewAllNode(false, c0)
	outer := StackEntry{Node: NewNodeID(), Child: 3}

	_, rest := n.Step(LogicStack{outer, {Node: n.ID(), Child: 0}})

	require.Len(t, rest, 1)
	assert.Equal(t, outer, rest[0])
}

func TestAllNode_NoChildren(t *testing.T) {
	n := NewAllNode(false)

	res, _ := n.Step(nil)

	failure, ok := res.(StepFailure)
	require.True(t, ok, "expected StepFailure, got %T", res)
	assert.Contains(t, failure.Message, "no child")
}
