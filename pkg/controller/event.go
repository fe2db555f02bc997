package controller

import (
	"fmt"
)

// EventKind tells which control produced an event.
type EventKind int

const (
	// ModeSelected is sent when the user picks a task.
	ModeSelected EventKind = iota
	// AngleChanged is sent by the angle slider.
	AngleChanged
	// ScaleChanged is sent by the scale slider.
	ScaleChanged
)

func (k EventKind) String() string {
	switch k {
	case ModeSelected:
		return "mode"
	case AngleChanged:
		return "angle"
	case ScaleChanged:
		return "scale"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single user interaction.
type Event struct {
	Kind  EventKind
	Mode  Mode
	Value float64
}

// SelectMode creates the event for choosing a mode.
func SelectMode(m Mode) Event {
	return Event{Kind: ModeSelected, Mode: m}
}

// SetAngle creates the event for moving the angle slider to deg degrees.
func SetAngle(deg float64) Event {
	return Event{Kind: AngleChanged, Value: deg}
}

// SetScale creates the event for moving the scale slider to s.
func SetScale(s float64) Event {
	return Event{Kind: ScaleChanged, Value: s}
}

func (e Event) String() string {
	if e.Kind == ModeSelected {
		return fmt.Sprintf("%v=%v", e.Kind, e.Mode)
	}
	return fmt.Sprintf("%v=%g", e.Kind, e.Value)
}
