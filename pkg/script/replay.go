package script

import (
	"fmt"

	"github.com/akeil/foiltool/internal/logging"
	"github.com/akeil/foiltool/pkg/controller"
)

// SnapshotFunc receives the frame that is on screen when a snapshot
// statement is reached. n counts snapshots from 0.
type SnapshotFunc func(n int, cmd *controller.RenderCommand) error

// Replay feeds the statements of the script to the controller, in order,
// and calls fn for every snapshot.
//
// The frame passed to fn is the most recent one the controller produced.
// Ignored events do not change it. An error from the controller or from
// fn stops the replay.
func Replay(c *controller.Controller, s *Script, fn SnapshotFunc) error {
	current, err := c.Render()
	if err != nil {
		return err
	}

	n := 0
	for _, st := range s.Statements {
		if st.Snapshot {
			err = fn(n, current)
			if err != nil {
				return err
			}
			n++
			continue
		}

		e, _ := st.Event()
		cmd, err := c.HandleEvent(e)
		if err != nil {
			return fmt.Errorf("%v: %w", st.Pos, err)
		}
		if cmd == nil {
			logging.Info("%v: %v has no effect in mode %v", st.Pos, e, c.Mode())
			continue
		}
		current = cmd
	}

	return nil
}
