package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue = errors.New("invalid value")
	ErrRead         = errors.New("cannot read scenario file")
	ErrParse        = errors.New("cannot parse scenario file")
	ErrMixedLayout  = errors.New("top-level scenario fields cannot be combined with a scenarios list")
)

// FieldError locates a scenario problem by file and field path.
type FieldError struct {
	Path  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	switch {
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }
