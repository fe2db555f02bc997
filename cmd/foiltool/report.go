package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akeil/foiltool/internal/fs"
	"github.com/akeil/foiltool/pkg/controller"
	"github.com/akeil/foiltool/pkg/render"
)

func doReport(s settings, path, out, title string, check bool) error {
	points, err := s.load(path)
	if err != nil {
		return err
	}

	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	cmds := make([]*controller.RenderCommand, 0, len(controller.Modes))
	for _, m := range controller.Modes {
		cmd, err := frameFor(s.controller(points), m)
		if err != nil {
			return err
		}
		cmds = append(cmds, cmd)
	}

	fmt.Printf("%v render %q\n", ellipsis, title)
	err = writeReport(s.renderContext(), title, cmds, out)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, title, err)
		return err
	}

	if check {
		err = checkReport(out)
		if err != nil {
			fmt.Printf("%v Validation failed for %q: %v\n", crossmark, out, err)
			return err
		}
	}

	fmt.Printf("%v report %q saved as %q.\n", checkmark, title, out)
	return nil
}

func writeReport(rc *render.Context, title string, cmds []*controller.RenderCommand, path string) error {
	return fs.WriteFile(path, func(w io.Writer) error {
		return rc.PDF(title, cmds, w)
	})
}

func checkReport(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return render.ValidatePDF(f)
}

// frameFor switches a fresh controller to the given mode and returns the
// resulting frame.
func frameFor(c *controller.Controller, m controller.Mode) (*controller.RenderCommand, error) {
	if c.Mode() == m {
		return c.Render()
	}
	return c.HandleEvent(controller.SelectMode(m))
}
