package state

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Player is the animation state requested by the spider's gameplay
type Player int

const (
	PlayerStanding Player = iota // default
	PlayerIdle
	PlayerWalking
	PlayerMidAir
	PlayerJumping
	PlayerLanding
	PlayerHurt
	PlayerNone
)

// ErrUnknownPlayer is returned when a name matches no player state
var ErrUnknownPlayer = eris.New("unknown player state")

var playerNames = [...]string{
	PlayerStanding: "Standing",
	PlayerIdle:     "Idle",
	PlayerWalking:  "Walking",
	PlayerMidAir:   "MidAir",
	PlayerJumping:  "Jumping",
	PlayerLanding:  "Landing",
	PlayerHurt:     "Hurt",
	PlayerNone:     "None",
}

// String returns the string representation of the player state
func (p Player) String() string {
	if p < 0 || int(p) >= len(playerNames) {
		return "Unknown"
	}
	return playerNames[p]
}

// Grounded reports whether the state belongs on the ground
func (p Player) Grounded() bool {
	switch p {
	case PlayerStanding, PlayerIdle, PlayerWalking, PlayerLanding, PlayerHurt:
		return true
	default:
		return false
	}
}

// ParsePlayer converts a state name (case-insensitive) to a Player
func ParsePlayer(name string) (Player, error) {
	for i, n := range playerNames {
		if strings.EqualFold(n, name) {
			return Player(i), nil
		}
	}
	return 0, eris.Wrapf(ErrUnknownPlayer, "%q", name)
}

// Players lists every player state in declaration order
func Players() []Player {
	out := make([]Player, len(playerNames))
	for i := range out {
		out[i] = Player(i)
	}
	return out
}
