package foiltool

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/akeil/foiltool/internal/logging"
)

// Default settings for coordinate tables.
const (
	DefaultSeparator = ';'
	DefaultXColumn   = "X"
	DefaultYColumn   = "Y"
)

// ReadOptions controls how a coordinate table is parsed.
// Zero values are replaced with the defaults.
type ReadOptions struct {
	Separator rune
	XColumn   string
	YColumn   string
}

func (o ReadOptions) withDefaults() ReadOptions {
	if o.Separator == 0 {
		o.Separator = DefaultSeparator
	}
	if o.XColumn == "" {
		o.XColumn = DefaultXColumn
	}
	if o.YColumn == "" {
		o.YColumn = DefaultYColumn
	}
	return o
}

// ReadFile reads the coordinate table at path.
func ReadFile(path string, opts ReadOptions) (PointSet, error) {
	logging.Debug("Read coordinates from %q", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadPoints(bufio.NewReader(f), opts)
}

// ReadPoints reads a delimited coordinate table.
//
// The first row is a header that must name the X and Y columns; other
// columns are ignored. Every following row is one point, in file order.
// Blank lines are skipped.
//
// Returns an "input format" error if the header lacks a column or if a row
// cannot be parsed.
func ReadPoints(r io.Reader, opts ReadOptions) (PointSet, error) {
	opts = opts.withDefaults()

	cr := csv.NewReader(r)
	cr.Comma = opts.Separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, NewInputFormatError(0, "missing header row")
	} else if err != nil {
		return nil, asInputFormat(err)
	}

	xIdx, yIdx := -1, -1
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch name {
		case opts.XColumn:
			xIdx = i
		case opts.YColumn:
			yIdx = i
		}
	}
	if xIdx < 0 {
		return nil, NewInputFormatError(1, "missing column %q", opts.XColumn)
	}
	if yIdx < 0 {
		return nil, NewInputFormatError(1, "missing column %q", opts.YColumn)
	}

	points := make(PointSet, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, asInputFormat(err)
		}
		line, _ := cr.FieldPos(0)

		if len(record) <= xIdx || len(record) <= yIdx {
			return nil, NewInputFormatError(line, "expected at least %d fields, got %d", max(xIdx, yIdx)+1, len(record))
		}

		x, err := parseCoordinate(record[xIdx])
		if err != nil {
			return nil, NewInputFormatError(line, "column %q: %v", opts.XColumn, err)
		}
		y, err := parseCoordinate(record[yIdx])
		if err != nil {
			return nil, NewInputFormatError(line, "column %q: %v", opts.YColumn, err)
		}

		points = append(points, Point{X: x, Y: y})
	}

	logging.Info("Read %d points", len(points))
	return points, nil
}

func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return v, nil
}

func asInputFormat(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return NewInputFormatError(parseErr.Line, "%v", parseErr.Err)
	}
	return NewInputFormatError(0, "%v", err)
}
