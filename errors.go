package foiltool

import (
	"errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type inputFormatError struct {
	message string
	line    int
}

// NewInputFormatError creates an error for a coordinate table that cannot
// be read. line is the 1-based line in the input, or 0 if unknown.
func NewInputFormatError(line int, msg string, v ...interface{}) error {
	return inputFormatError{
		message: fmt.Sprintf(msg, v...),
		line:    line,
	}
}

func (i inputFormatError) Error() string {
	if i.line > 0 {
		return fmt.Sprintf("Invalid input (line %d): %v", i.line, i.message)
	}
	return fmt.Sprintf("Invalid input: %v", i.message)
}

// IsInputFormat checks if the given error is an "input format" error.
func IsInputFormat(err error) bool {
	var target inputFormatError
	return errors.As(err, &target)
}

type emptyInputError struct {
	op string
}

// NewEmptyInputError creates the error returned when a centroid based
// operation is applied to an empty point set.
func NewEmptyInputError(op string) error {
	return emptyInputError{op}
}

func (e emptyInputError) Error() string {
	return fmt.Sprintf("%v: point set is empty", e.op)
}

// IsEmptyInput checks if the given error is an "empty input" error.
func IsEmptyInput(err error) bool {
	var target emptyInputError
	return errors.As(err, &target)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidation checks if the given error is a validation error.
func IsValidation(err error) bool {
	var target validationError
	return errors.As(err, &target)
}
