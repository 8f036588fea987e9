package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_String(t *testing.T) {
	tests := []struct {
		state    Player
		expected string
	}{
		{PlayerStanding, "Standing"},
		{PlayerIdle, "Idle"},
		{PlayerWalking, "Walking"},
		{PlayerMidAir, "MidAir"},
		{PlayerJumping, "Jumping"},
		{PlayerLanding, "Landing"},
		{PlayerHurt, "Hurt"},
		{PlayerNone, "None"},
		{Player(99), "Unknown"},
		{Player(-1), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestPlayerConstants(t *testing.T) {
	// Standing must stay the zero value
	var zero Player
	assert.Equal(t, PlayerStanding, zero)
	assert.Equal(t, Player(7), PlayerNone)
}

func TestParsePlayer(t *testing.T) {
	for _, p := range Players() {
		got, err := ParsePlayer(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePlayer("midair")
	require.NoError(t, err)
	assert.Equal(t, PlayerMidAir, got)

	_, err = ParsePlayer("Swinging")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestPlayer_Grounded(t *testing.T) {
	assert.True(t, PlayerWalking.Grounded())
	assert.True(t, PlayerLanding.Grounded())
	assert.False(t, PlayerMidAir.Grounded())
	assert.False(t, PlayerJumping.Grounded())
	assert.False(t, PlayerNone.Grounded())
}
