package main

import (
	"fmt"
	"net/http"

	"github.com/akeil/foiltool/internal/logging"
	"github.com/akeil/foiltool/pkg/bridge"
)

func doServe(s settings, path, addr, route string, origins []string) error {
	points, err := s.load(path)
	if err != nil {
		return err
	}

	h := bridge.NewHandler(points).
		WithDefaults(*s.cfg.Angle, *s.cfg.Scale).
		AllowOrigins(origins...)

	mux := http.NewServeMux()
	mux.Handle(route, h)

	fmt.Printf("Serving %q on ws://%v%v\n", path, addr, route)
	logging.Info("Listen on %v", addr)
	return http.ListenAndServe(addr, mux)
}
