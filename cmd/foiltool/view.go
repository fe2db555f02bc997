package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/akeil/foiltool/internal/logging"
	"github.com/akeil/foiltool/pkg/controller"
	"github.com/akeil/foiltool/pkg/term"
)

func doView(s settings, path, snapshotDir, formatName string) error {
	points, err := s.load(path)
	if err != nil {
		return err
	}

	format, err := s.format(formatName, "")
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	err = screen.Init()
	if err != nil {
		return err
	}
	defer screen.Fini()

	// log output would end up on top of the plot
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	rc := s.renderContext()
	n := 0

	v := term.NewViewer(screen, s.controller(points))
	v.AngleStep = s.cfg.AngleStep
	v.ScaleStep = s.cfg.ScaleStep
	v.OnSnapshot = func(cmd *controller.RenderCommand) error {
		n++
		name := fmt.Sprintf("%v-%03d%v", cmd.Mode, n, format.Ext())
		return writeFrame(rc, cmd, format, filepath.Join(snapshotDir, name))
	}

	return v.Run()
}
