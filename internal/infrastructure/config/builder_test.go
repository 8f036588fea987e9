package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingC1402/Spider-game/internal/domain/animation"
)

func parseName(s string) (string, error) { return s, nil }

func buildYAML(t *testing.T, data string) (*Built[string], error) {
	t.Helper()
	file, err := ParseAnimations([]byte(data))
	require.NoError(t, err)
	return Build(file, parseName)
}

func TestBuild(t *testing.T) {
	b, err := buildYAML(t, jumpYAML)
	require.NoError(t, err)

	assert.Equal(t, 5, b.Tree.Len())
	assert.Equal(t, b.IDs["root"], b.Tree.Start())
	assert.Equal(t, NodeIDFor("rise"), b.IDs["rise"])
	assert.Equal(t, "rise", b.Names[b.IDs["rise"]])

	n, ok := b.Tree.Lookup(b.IDs["air"])
	require.True(t, ok)
	air, ok := n.(*animation.PlayNode)
	require.True(t, ok)
	assert.Equal(t, 3, air.Sequence.Len())
	f, _ := air.Sequence.At(0)
	assert.Equal(t, animation.Frame{Sprite: 9, Delay: 0.125}, f)
	f, _ = air.Sequence.At(2)
	assert.Equal(t, 7, f.Sprite)
	assert.Equal(t, 2.0, air.Speed)
	assert.True(t, air.Loop)
	assert.False(t, air.ResetOnEntry)

	n, _ = b.Tree.Lookup(b.IDs["stand"])
	assert.True(t, n.(*animation.PlayNode).ResetOnEntry, "reset defaults to true")
}

func TestBuild_Evaluates(t *testing.T) {
	b, err := buildYAML(t, jumpYAML)
	require.NoError(t, err)
	a := animation.NewAnimator[string](b.Tree.Freeze())

	st := animation.NewState("Jumping")
	res, err := a.Tick(st, nil, 0.05)
	require.NoError(t, err)
	assert.Equal(t, b.IDs["rise"], res.CurrentNode)
	assert.Equal(t, 5, res.AtlasIndex)
	assert.InDelta(t, 0.1, res.Time, 1e-12)

	st.Request("Walking")
	res, err = a.Tick(st, nil, 0.05)
	require.NoError(t, err)
	assert.Equal(t, b.IDs["stand"], res.CurrentNode)
	assert.Equal(t, 0, res.AtlasIndex)
}

func TestBuild_IDsAreStable(t *testing.T) {
	first, err := buildYAML(t, jumpYAML)
	require.NoError(t, err)
	second, err := buildYAML(t, jumpYAML)
	require.NoError(t, err)

	assert.Equal(t, first.IDs, second.IDs)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name  string
		nodes string
		want  error
	}{
		{"missing start", "  other:\n    play: {frames: [1]}\n", ErrInvalidTree},
		{"undefined reference", "  root:\n    all: {children: [ghost]}\n", ErrInvalidTree},
		{"two variants", "  root:\n    play: {frames: [1]}\n    all: {children: [root]}\n", ErrInvalidTree},
		{"no variant", "  root: {}\n", ErrInvalidTree},
		{"empty composite", "  root:\n    all: {children: []}\n", ErrInvalidTree},
		{"frames and range", "  root:\n    play: {frames: [1], range: [1, 2]}\n", ErrInvalidTree},
		{"short range", "  root:\n    play: {range: [1]}\n", ErrInvalidTree},
		{"no frames", "  root:\n    play: {fps: 4}\n", ErrInvalidTree},
		{"cycle", "  root:\n    match: {default: loop}\n  loop:\n    all: {children: [root]}\n", animation.ErrCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildYAML(t, "version: 1\nstart: root\nnodes:\n"+tt.nodes)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_StateParseError(t *testing.T) {
	errBadState := errors.New("bad state")
	file, err := ParseAnimations([]byte(jumpYAML))
	require.NoError(t, err)

	_, err = Build(file, func(string) (int, error) { return 0, errBadState })

	assert.ErrorIs(t, err, errBadState)
}

func TestBuild_NilFile(t *testing.T) {
	_, err := Build[string](nil, parseName)
	assert.ErrorIs(t, err, ErrInvalidTree)
}
