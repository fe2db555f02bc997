package controller

import (
	"fmt"
	"strings"
)

// Mode is the task selected in the viewer.
type Mode int

const (
	// LeadingEdgeTwist rotates the profile about the leading edge (0, 0).
	LeadingEdgeTwist Mode = iota
	// Scale resizes the profile about its centroid.
	Scale
	// CentroidTwist rotates the profile about its centroid.
	CentroidTwist
)

// Modes lists all modes in the order they are offered to the user.
var Modes = []Mode{LeadingEdgeTwist, Scale, CentroidTwist}

var modeNames = map[Mode]string{
	LeadingEdgeTwist: "leading-edge-twist",
	Scale:            "scale",
	CentroidTwist:    "centroid-twist",
}

var modeLabels = map[Mode]string{
	LeadingEdgeTwist: "Task 1: Twist by Leading Edge",
	Scale:            "Task 2: Scale",
	CentroidTwist:    "Task 3: Twist by Centroid",
}

func (m Mode) String() string {
	name, ok := modeNames[m]
	if !ok {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return name
}

// Label is the long, human readable name of the mode.
func (m Mode) Label() string {
	return modeLabels[m]
}

// Valid tells if m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// IsTwist tells if the mode is controlled by the angle.
func (m Mode) IsTwist() bool {
	return m == LeadingEdgeTwist || m == CentroidTwist
}

// Next returns the mode that follows m in Modes, wrapping around.
func (m Mode) Next() Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// ParseMode looks up a mode by its short name or its label.
// Unknown names are an error.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) || s == m.Label() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
