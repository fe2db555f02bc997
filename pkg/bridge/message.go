package bridge

import (
	"fmt"

	"github.com/akeil/foiltool/pkg/controller"
)

// Message types sent by the client.
const (
	TypeMode  = "mode"
	TypeAngle = "angle"
	TypeScale = "scale"
	TypeReset = "reset"
)

// Request is an event sent by a browser UI.
type Request struct {
	Type  string  `json:"type"`
	Mode  string  `json:"mode,omitempty"`
	Value float64 `json:"value,omitempty"`
}

// Event converts the request to a controller event.
func (r Request) Event() (controller.Event, error) {
	switch r.Type {
	case TypeMode:
		m, err := controller.ParseMode(r.Mode)
		if err != nil {
			return controller.Event{}, err
		}
		return controller.SelectMode(m), nil
	case TypeAngle:
		return controller.SetAngle(r.Value), nil
	case TypeScale:
		return controller.SetScale(r.Value), nil
	default:
		return controller.Event{}, fmt.Errorf("unknown message type %q", r.Type)
	}
}

// Response is sent for every request.
// Exactly one of Frame, Ignored and Error is set.
type Response struct {
	Frame   *controller.RenderCommand `json:"frame,omitempty"`
	Ignored bool                      `json:"ignored,omitempty"`
	Error   string                    `json:"error,omitempty"`
}
