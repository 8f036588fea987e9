package state

// DefaultIdleAfter is how long the spider stands still before idling
const DefaultIdleAfter = 3.0

// Machine maps gameplay events to the requested animation state
type Machine struct {
	IdleAfter float64 // seconds; <= 0 disables idling
}

// NewMachine creates a machine that idles after idleAfter seconds
func NewMachine(idleAfter float64) Machine {
	return Machine{IdleAfter: idleAfter}
}

// Apply returns the state that follows current after e.
// PlayerNone is terminal.
func (m Machine) Apply(current Player, e Event) Player {
	if current == PlayerNone {
		return current
	}

	switch ev := e.(type) {
	case Died:
		return PlayerNone
	case Hurt:
		return PlayerHurt
	case Jumped:
		return PlayerJumping
	case Airborne:
		// a jump already plays its rise into mid-air
		if current == PlayerJumping {
			return current
		}
		return PlayerMidAir
	case Grounded:
		if current == PlayerMidAir || current == PlayerJumping {
			return PlayerLanding
		}
		return current
	case Moving:
		if !current.Grounded() {
			return current
		}
		if ev.Axis == 0 {
			return m.stand(current)
		}
		return PlayerWalking
	case Standing:
		if !current.Grounded() {
			return current
		}
		return m.stand(current)
	default:
		return current
	}
}

// ApplyAll folds events into current in order
func (m Machine) ApplyAll(current Player, events ...Event) Player {
	for _, e := range events {
		current = m.Apply(current, e)
	}
	return current
}

// Promote turns Standing into Idle once it has been held for IdleAfter seconds
func (m Machine) Promote(current Player, held float64) Player {
	if current == PlayerStanding && m.IdleAfter > 0 && held >= m.IdleAfter {
		return PlayerIdle
	}
	return current
}

func (m Machine) stand(current Player) Player {
	if current == PlayerIdle {
		return current
	}
	return PlayerStanding
}
