// Package term is an interactive terminal front end for the controller.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/akeil/foiltool/internal/logging"
	"github.com/akeil/foiltool/pkg/controller"
)

// Step sizes for a single key press.
const (
	DefaultAngleStep = 1.0
	DefaultScaleStep = 0.05
)

const helpText = "1/2/3,Tab:mode  ←/→:angle  ↑/↓:scale  r:reset  s:snapshot  q:quit"

// Viewer draws the frames produced by a controller on a terminal screen
// and turns key presses into controller events.
type Viewer struct {
	screen tcell.Screen
	ctrl   *controller.Controller

	// AngleStep and ScaleStep are added per key press;
	// Shift multiplies them by 10.
	AngleStep float64
	ScaleStep float64
	// OnSnapshot is called with the current frame when 's' is pressed.
	OnSnapshot func(*controller.RenderCommand) error

	frame   *controller.RenderCommand
	message string
}

// NewViewer creates a viewer. The screen must already be initialized.
func NewViewer(s tcell.Screen, c *controller.Controller) *Viewer {
	return &Viewer{
		screen:    s,
		ctrl:      c,
		AngleStep: DefaultAngleStep,
		ScaleStep: DefaultScaleStep,
	}
}

// Run shows the first frame and processes events until the user quits.
func (v *Viewer) Run() error {
	frame, err := v.ctrl.Render()
	if err != nil {
		v.message = err.Error()
	}
	v.frame = frame
	v.draw()

	for {
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// screen was finalized
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
			v.handleKey(ev)
			v.draw()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'r', 'R':
			v.apply(v.ctrl.Reset())
			return
		case 's', 'S':
			v.snapshot()
			return
		}
	}

	e, ok := v.eventFor(ev)
	if !ok {
		return
	}
	v.apply(v.ctrl.HandleEvent(e))
}

// eventFor maps a key press to a controller event.
//
// Arrow keys always produce an event for their slider, even if it is
// inactive in the current mode; the controller ignores those.
func (v *Viewer) eventFor(ev *tcell.EventKey) (controller.Event, bool) {
	angleStep := v.AngleStep
	scaleStep := v.ScaleStep
	if ev.Modifiers()&tcell.ModShift != 0 {
		angleStep *= 10
		scaleStep *= 10
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		return controller.SetAngle(v.ctrl.Angle() - angleStep), true
	case tcell.KeyRight:
		return controller.SetAngle(v.ctrl.Angle() + angleStep), true
	case tcell.KeyUp:
		return controller.SetScale(v.ctrl.Scale() + scaleStep), true
	case tcell.KeyDown:
		return controller.SetScale(v.ctrl.Scale() - scaleStep), true
	case tcell.KeyTab:
		return controller.SelectMode(v.ctrl.Mode().Next()), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case '1', '2', '3':
			return controller.SelectMode(controller.Modes[ev.Rune()-'1']), true
		case '+', '=':
			return controller.SetScale(v.ctrl.Scale() + scaleStep), true
		case '-', '_':
			return controller.SetScale(v.ctrl.Scale() - scaleStep), true
		}
	}
	return controller.Event{}, false
}

// apply keeps the previous frame on errors and ignored events.
func (v *Viewer) apply(frame *controller.RenderCommand, err error) {
	if err != nil {
		v.message = err.Error()
		return
	}
	v.message = ""
	if frame != nil {
		v.frame = frame
	}
}

func (v *Viewer) snapshot() {
	if v.OnSnapshot == nil || v.frame == nil {
		return
	}
	err := v.OnSnapshot(v.frame)
	if err != nil {
		logging.Warning("Snapshot failed: %v", err)
		v.message = fmt.Sprintf("snapshot failed: %v", err)
		return
	}
	v.message = "snapshot saved"
}

// Frame is the frame currently on screen.
func (v *Viewer) Frame() *controller.RenderCommand {
	return v.frame
}

// Message is the error or info text shown in the status line.
func (v *Viewer) Message() string {
	return v.message
}

func (v *Viewer) draw() {
	s := v.screen
	s.Clear()
	w, h := s.Size()

	plain := tcell.StyleDefault
	dim := plain.Foreground(tcell.ColorGray)

	title := "foiltool"
	if v.frame != nil {
		title = v.frame.Title
	}
	drawText(s, 1, 0, plain.Bold(true), title)

	// rows 1 .. h-4 for the plot
	if v.frame != nil && w > 4 && h > 6 {
		c := newCanvas(w-2, h-5)
		p := newProjection(c.w, c.h, v.frame.Original, v.frame.Transformed)
		c.polyline(p, v.frame.Original, layerOriginal)
		c.polyline(p, v.frame.Transformed, layerTransformed)
		rx, ry := p.cell(v.frame.Reference)
		c.set(rx, ry, layerReference)

		styles := map[layer]tcell.Style{
			layerOriginal:    plain.Foreground(tcell.ColorBlue),
			layerTransformed: plain.Foreground(tcell.ColorRed),
			layerReference:   plain.Foreground(tcell.ColorWhite).Bold(true),
		}
		runes := map[layer]rune{
			layerOriginal:    runeOriginal,
			layerTransformed: runeTransformed,
			layerReference:   runeReference,
		}
		for y := 0; y < c.h; y++ {
			for x := 0; x < c.w; x++ {
				l := c.at(x, y)
				if l == layerNone {
					continue
				}
				s.SetContent(x+1, y+1, runes[l], nil, styles[l])
			}
		}
	}

	drawText(s, 1, h-3, plain, v.status())
	if v.message != "" {
		drawText(s, 1, h-2, plain.Foreground(tcell.ColorYellow), v.message)
	}
	drawText(s, 1, h-1, dim, helpText)

	s.Show()
}

func (v *Viewer) status() string {
	marker := func(active bool) string {
		if active {
			return "*"
		}
		return " "
	}
	return fmt.Sprintf("%s  %sangle %7.2f°  %sscale %5.2f  |  %d points",
		v.ctrl.Mode().Label(),
		marker(v.ctrl.AngleActive()), v.ctrl.Angle(),
		marker(v.ctrl.ScaleActive()), v.ctrl.Scale(),
		len(v.ctrl.Points()))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
