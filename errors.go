package featmat

import (
	"errors"
	"fmt"

	"github.com/hupe1980/featmat/pattern"
)

var (
	// ErrConflictingArgument is returned when mutually exclusive options are
	// supplied, e.g. an explicit WithMode passed to Keep or Remove.
	ErrConflictingArgument = errors.New("conflicting argument")
)

// ErrInvalidPattern indicates a glob or regex pattern that failed to compile.
//
// The original compile error (if any) can be accessed via errors.Unwrap.
type ErrInvalidPattern struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidPattern) Error() string {
	return fmt.Sprintf("invalid pattern: %q", e.Pattern)
}

func (e *ErrInvalidPattern) Unwrap() error { return e.cause }

// ErrUnsupportedType indicates a matrix or pattern source of an unrecognized
// shape. Supported pattern sources are nil, []string, *dict.Dictionary and
// *dfm.DFM.
type ErrUnsupportedType struct {
	Value any
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type: %T", e.Value)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ip *pattern.ErrInvalidPattern
	if errors.As(err, &ip) {
		return &ErrInvalidPattern{Pattern: ip.Pattern, cause: err}
	}

	return err
}
