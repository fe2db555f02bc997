package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/foiltool/pkg/controller"
	"github.com/akeil/foiltool/pkg/script"
)

func doReplay(s settings, path, scriptPath, outDir, formatName, prefix string) error {
	points, err := s.load(path)
	if err != nil {
		return err
	}

	sc, err := script.ParseFile(scriptPath)
	if err != nil {
		return err
	}
	if sc.Snapshots() == 0 {
		fmt.Printf("Script %q contains no snapshots\n", scriptPath)
		return nil
	}

	format, err := s.format(formatName, "")
	if err != nil {
		return err
	}

	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return err
	}

	// Frames are collected first; the controller is not safe for
	// concurrent use but the render commands are immutable.
	frames := make([]*controller.RenderCommand, 0, sc.Snapshots())
	err = script.Replay(s.controller(points), sc, func(n int, cmd *controller.RenderCommand) error {
		frames = append(frames, cmd)
		return nil
	})
	if err != nil {
		return err
	}

	rc := s.renderContext()
	sem := make(chan struct{}, s.cfg.Workers)

	var group errgroup.Group
	for i, cmd := range frames {
		name := filepath.Join(outDir, fmt.Sprintf("%v-%03d%v", prefix, i+1, format.Ext()))
		group.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			err := writeFrame(rc, cmd, format, name)
			if err != nil {
				fmt.Printf("%v Failed to render %q: %v\n", crossmark, name, err)
				return err
			}
			fmt.Printf("%v %v saved as %q.\n", checkmark, cmd.Title, name)
			return nil
		})
	}

	return group.Wait()
}
