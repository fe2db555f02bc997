// Package script reads event scripts that replay a viewer session.
//
// A script is a list of statements, one per line or separated by ';':
//
//	# comment
//	mode scale
//	scale 1.5
//	snapshot
//	mode "Task 3: Twist by Centroid"
//	angle -30; snapshot
package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/akeil/foiltool/pkg/controller"
)

// Script is a parsed event script.
type Script struct {
	Statements []*Statement `( @@ ";"? )*`
}

// Statement is a single line of a script.
// Exactly one of the fields is set.
type Statement struct {
	Pos lexer.Position

	Mode     *string  `  "mode" @( Ident | String )`
	Angle    *float64 `| "angle" @Number`
	Scale    *float64 `| "scale" @Number`
	Snapshot bool     `| @"snapshot"`
}

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse reads a script from the given reader.
// name is used in error messages.
func Parse(name string, r io.Reader) (*Script, error) {
	s, err := parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	err = s.validate()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ParseString reads a script from a string.
func ParseString(src string) (*Script, error) {
	return Parse("", strings.NewReader(src))
}

// ParseFile reads the script at path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// validate checks the mode names, which the grammar accepts as any word.
func (s *Script) validate() error {
	for _, st := range s.Statements {
		if st.Mode == nil {
			continue
		}
		_, err := controller.ParseMode(*st.Mode)
		if err != nil {
			return fmt.Errorf("%v: %w", st.Pos, err)
		}
	}
	return nil
}

// Event converts the statement to a controller event.
// The second return value is false for snapshots.
func (st *Statement) Event() (controller.Event, bool) {
	switch {
	case st.Mode != nil:
		// checked in validate
		m, _ := controller.ParseMode(*st.Mode)
		return controller.SelectMode(m), true
	case st.Angle != nil:
		return controller.SetAngle(*st.Angle), true
	case st.Scale != nil:
		return controller.SetScale(*st.Scale), true
	default:
		return controller.Event{}, false
	}
}

// Snapshots counts the snapshot statements.
func (s *Script) Snapshots() int {
	n := 0
	for _, st := range s.Statements {
		if st.Snapshot {
			n++
		}
	}
	return n
}
