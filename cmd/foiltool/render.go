package main

import (
	"fmt"
	"io"

	"github.com/akeil/foiltool/internal/fs"
	"github.com/akeil/foiltool/pkg/controller"
	"github.com/akeil/foiltool/pkg/render"
)

func doRender(s settings, path, modeName, out, formatName string) error {
	points, err := s.load(path)
	if err != nil {
		return err
	}

	mode, err := controller.ParseMode(modeName)
	if err != nil {
		return err
	}
	format, err := s.format(formatName, out)
	if err != nil {
		return err
	}

	cmd, err := frameFor(s.controller(points), mode)
	if err != nil {
		return err
	}

	fmt.Printf("%v render %v\n", ellipsis, cmd.Title)
	err = writeFrame(s.renderContext(), cmd, format, out)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, out, err)
		return err
	}

	fmt.Printf("%v frame saved as %q.\n", checkmark, out)
	return nil
}

func writeFrame(rc *render.Context, cmd *controller.RenderCommand, f render.Format, path string) error {
	return fs.WriteFile(path, func(w io.Writer) error {
		return rc.Frame(cmd, f, w)
	})
}
