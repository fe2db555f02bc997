package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akeil/foiltool"
)

func doInfo(s settings, path string) error {
	points, err := s.load(path)
	if err != nil {
		return err
	}

	showInfo(os.Stdout, path, points)
	return nil
}

func showInfo(w io.Writer, path string, points foiltool.PointSet) {
	fmt.Fprintln(w, path)
	fmt.Fprintln(w, "--------------------")
	fmt.Fprintf(w, "Points:   %d\n", points.Len())

	centroid, err := points.Centroid()
	if err != nil {
		fmt.Fprintf(w, "Centroid: %v\n", err)
		return
	}
	min, max := points.Bounds()

	fmt.Fprintf(w, "Centroid: %v\n", centroid)
	fmt.Fprintf(w, "Bounds:   %v - %v\n", min, max)
	fmt.Fprintf(w, "Chord:    %g\n", points.Chord())
}
