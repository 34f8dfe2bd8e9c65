// Package apperr holds the error taxonomy shared by the import pipeline.
// Callers match with errors.Is against the sentinels and use errors.As to
// reach the typed details.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDecode          = errors.New("no encoding could decode the input")
	ErrContextMismatch = errors.New("file does not match the import context")
	ErrSchema          = errors.New("missing required columns")
	ErrCompanyNotFound = errors.New("company not found")
	ErrPersistence     = errors.New("persistence failure")
	ErrMalformed       = errors.New("malformed input")
	ErrVigencyExists   = errors.New("an active vigency already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
)

// ContextMismatchError reports a section of the file that disagrees with the
// company or period the import was requested for.
type ContextMismatchError struct {
	Field    string
	Expected string
	Got      string
}

func (e *ContextMismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: expected %q, file has %q", e.Field, e.Expected, e.Got)
}

func (e *ContextMismatchError) Is(target error) bool { return target == ErrContextMismatch }

type SchemaError struct {
	Missing []string
	Columns []string
	// Hints maps a missing canonical field to the closest unrecognized header.
	Hints map[string]string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder

	sb.WriteString(ErrSchema.Error())
	sb.WriteString(": ")
	sb.WriteString(strings.Join(e.Missing, ", "))

	for _, m := range e.Missing {
		if hint, ok := e.Hints[m]; ok {
			fmt.Fprintf(&sb, " (%s: did you mean %q?)", m, hint)
		}
	}

	fmt.Fprintf(&sb, "; columns found: %s", strings.Join(e.Columns, ", "))

	return sb.String()
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
func (e *PersistenceError) Unwrap() error        { return e.Err }

// Persist wraps err as a PersistenceError. A nil err stays nil.
func Persist(op string, err error) error {
	if err == nil {
		return nil
	}

	return &PersistenceError{Op: op, Err: err}
}

// FormatError points at the line of an input file that could not be read.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *FormatError) Is(target error) bool { return target == ErrMalformed }
