// Package cubegen turns a natural language request into a data cube
// definition by prompting a generative model with the schema of a data
// source and normalizing what comes back.
package cubegen

import (
	"fmt"

	"github.com/pkg/errors"
)

// TableDescriptor describes a table or view the model is allowed to query.
type TableDescriptor struct {
	Name        string
	Schema      string
	Columns     []ColumnDescriptor
	RowCount    int64
	Description string
}

type ColumnDescriptor struct {
	Name        string
	Type        string
	PrimaryKey  bool
	Description string
}

// SourceDescriptor identifies the data source in the prompt.
type SourceDescriptor struct {
	Name     string
	Type     string
	Database string
}

// CubeStructure is the generated cube definition. It is never persisted by
// this package.
type CubeStructure struct {
	Name        string         `json:"name" mapstructure:"name"`
	Description string         `json:"description" mapstructure:"description"`
	Query       string         `json:"query" mapstructure:"query"`
	Dimensions  []string       `json:"dimensions" mapstructure:"dimensions"`
	Measures    []string       `json:"measures" mapstructure:"measures"`
	Metadata    map[string]any `json:"metadata,omitempty" mapstructure:"metadata"`
}

// ErrGenerationFailed matches every failure returned by Generator.Generate
// once the model has been involved.
var ErrGenerationFailed = errors.New("generation failed")

// ErrMissingInput is returned when a required prompt input is empty.
var ErrMissingInput = errors.New("missing required input")

type FailureKind int

const (
	TransportFailure FailureKind = iota + 1
	ParseFailure
	ValidationFailure
)

func (k FailureKind) String() string {
	switch k {
	case TransportFailure:
		return "transport"
	case ParseFailure:
		return "parse"
	case ValidationFailure:
		return "validation"
	}

	return "unknown"
}

// Error is a generation failure.
type Error struct {
	Kind FailureKind
	// Field is the offending field of a ValidationFailure.
	Field string
	// Excerpt is the truncated raw model output of a ParseFailure.
	Excerpt string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ParseFailure:
		return fmt.Sprintf("%s: failed to parse JSON from model output: %v. Model output: %s", ErrGenerationFailed, e.Err, e.Excerpt)
	case ValidationFailure:
		return fmt.Sprintf("%s: invalid data cube structure, field %q: %v", ErrGenerationFailed, e.Field, e.Err)
	}

	return fmt.Sprintf("%s: %v", ErrGenerationFailed, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrGenerationFailed
}

// KindOf returns the failure kind of err, or zero if err is not a
// generation failure.
func KindOf(err error) FailureKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
