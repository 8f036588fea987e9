package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogicStack_PushPop(t *testing.T) {
	a := StackEntry{Node: NewNodeID(), Child: 0}
	b := StackEntry{Node: NewNodeID(), Child: 2}

	var s LogicStack
	s = s.Push(a).Push(b)
	require.Len(t, s, 2)

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, b, top)

	got, s, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, b, got)

	got, s, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, a, got)

	_, _, ok = s.Pop()
	assert.False(t, ok)
}

func TestLogicStack_Clone(t *testing.T) {
	s := LogicStack{{Node: NewNodeID(), Child: 1}}
	c := s.Clone()

	c[0].Child = 5
	assert.Equal(t, 1, s[0].Child)

	assert.Nil(t, LogicStack(nil).Clone())
}

func TestLogicStack_Clear(t *testing.T) {
	s := LogicStack{{Node: NewNodeID()}, {Node: NewNodeID()}}
	assert.Empty(t, s.Clear())
}
