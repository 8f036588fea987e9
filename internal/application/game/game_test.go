package game

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingC1402/Spider-game/internal/application/scene"
)

// stubScene is a test double for the Scene interface
type stubScene struct {
	updates   int
	draws     int
	enters    int
	exits     int
	lastDT    float64
	next      scene.Scene
	updateErr error
}

func (s *stubScene) Update(dt float64) (scene.Scene, error) {
	s.updates++
	s.lastDT = dt
	return s.next, s.updateErr
}

func (s *stubScene) Draw(*ebiten.Image) { s.draws++ }
func (s *stubScene) OnEnter()           { s.enters++ }
func (s *stubScene) OnExit()            { s.exits++ }

func TestNew(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 320, 240)

	require.NotNil(t, g)
	assert.Equal(t, 1, initial.enters, "OnEnter runs on the initial scene")
	assert.Same(t, initial, g.Current())
}

func TestGame_UpdateDelegates(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 320, 240)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, 2, initial.updates)
	assert.Equal(t, uint64(2), g.Ticks())
	assert.Equal(t, 1.0/60.0, initial.lastDT)
}

func TestGame_WithDT(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"custom", 1.0 / 30.0, 1.0 / 30.0},
		{"zero keeps default", 0, 1.0 / 60.0},
		{"negative keeps default", -1, 1.0 / 60.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &stubScene{}
			g := New(s, 320, 240, WithDT(tt.dt))
			require.NoError(t, g.Update())
			assert.Equal(t, tt.want, s.lastDT)
		})
	}
}

func TestGame_DrawDelegates(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 320, 240)

	g.Draw(ebiten.NewImage(320, 240))

	assert.Equal(t, 1, initial.draws)
}

func TestGame_Layout(t *testing.T) {
	g := New(&stubScene{}, 320, 240)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	var logs bytes.Buffer
	second := &stubScene{}
	first := &stubScene{next: second}
	g := New(first, 320, 240, WithLogger(zerolog.New(&logs)))

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.exits)
	assert.Equal(t, 1, second.enters)
	assert.Same(t, second, g.Current())
	assert.Contains(t, logs.String(), "scene transition")

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 1, second.updates)
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	s := &stubScene{}
	g := New(s, 320, 240)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}

	assert.Equal(t, 5, s.updates)
	assert.Equal(t, 0, s.exits)
}

func TestGame_Quit(t *testing.T) {
	s := &stubScene{updateErr: scene.ErrQuit}
	g := New(s, 320, 240)

	err := g.Update()

	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 1, s.exits, "quitting exits the scene")
}

func TestGame_UpdateError(t *testing.T) {
	s := &stubScene{updateErr: assert.AnError}
	g := New(s, 320, 240)

	err := g.Update()

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ebiten.Termination)
	assert.Contains(t, err.Error(), "scene failed at tick 1")
	assert.Equal(t, 1, s.exits)
}
