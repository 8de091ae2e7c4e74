package analysis

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindClassifier
	KindCompletion
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindClassifier:
		return "classifier"
	case KindCompletion:
		return "completion"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

var ErrTextRequired = errors.New("text required")

// Error tags a failure with the stage of the analysis that produced it.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the stage tag of err, or KindUnknown.
func KindOf(err error) Kind {
	var analysisErr *Error
	if errors.As(err, &analysisErr) {
		return analysisErr.Kind
	}
	return KindUnknown
}

// ParseError is returned when completion content is not a JSON object.
type ParseError struct {
	Preview string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("completion content is not a JSON object: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
