package state

import (
	"github.com/rotisserie/eris"
)

// Event is something that happened to the spider during a tick
type Event interface {
	isEvent()
	Name() string
}

// Airborne is sent when the spider leaves the ground without jumping
type Airborne struct{}

func (Airborne) isEvent()     {}
func (Airborne) Name() string { return "airborne" }

// Jumped is sent when a jump starts
type Jumped struct{}

func (Jumped) isEvent()     {}
func (Jumped) Name() string { return "jumped" }

// Grounded is sent when the spider touches the ground
type Grounded struct{}

func (Grounded) isEvent()     {}
func (Grounded) Name() string { return "grounded" }

// Moving carries the horizontal input axis, -1 (left) to 1 (right)
type Moving struct {
	Axis float64
}

func (Moving) isEvent()     {}
func (Moving) Name() string { return "moving" }

// Standing is sent when horizontal input is released
type Standing struct{}

func (Standing) isEvent()     {}
func (Standing) Name() string { return "standing" }

// Hurt is sent when the spider takes damage
type Hurt struct{}

func (Hurt) isEvent()     {}
func (Hurt) Name() string { return "hurt" }

// Died is sent once when the spider dies
type Died struct{}

func (Died) isEvent()     {}
func (Died) Name() string { return "died" }

// ErrUnknownEvent is returned when a name matches no event
var ErrUnknownEvent = eris.New("unknown event")

// ParseEvent rebuilds an event from its name; axis is used by Moving only
func ParseEvent(name string, axis float64) (Event, error) {
	switch name {
	case "airborne":
		return Airborne{}, nil
	case "jumped":
		return Jumped{}, nil
	case "grounded":
		return Grounded{}, nil
	case "moving":
		return Moving{Axis: axis}, nil
	case "standing":
		return Standing{}, nil
	case "hurt":
		return Hurt{}, nil
	case "died":
		return Died{}, nil
	default:
		return nil, eris.Wrapf(ErrUnknownEvent, "%q", name)
	}
}
