// Package foiltool reads airfoil coordinate tables and computes the
// twisted and scaled profiles shown by the viewer.
package foiltool

import (
	"github.com/akeil/foiltool/internal/logging"
)

// SetLogLevel sets the log level by name.
// Unknown names switch logging off.
func SetLogLevel(level string) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
