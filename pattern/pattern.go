package pattern

import (
	"fmt"
)

// MatchMode selects the matching semantics applied to each pattern.
type MatchMode int

const (
	// MatchGlob treats patterns as wildcard expressions (* matches any run
	// of characters, ? matches a single character), anchored to the full
	// vocabulary entry. This is the default.
	MatchGlob MatchMode = iota
	// MatchFixed requires exact string equality.
	MatchFixed
	// MatchRegex treats patterns as Go regular expressions, anchored to the
	// full vocabulary entry.
	MatchRegex
)

// String returns a stable name for the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchGlob:
		return "glob"
	case MatchFixed:
		return "fixed"
	case MatchRegex:
		return "regex"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ErrInvalidPattern indicates a pattern that failed to compile under glob or
// regex semantics.
//
// The original compile error can be accessed via errors.Unwrap.
type ErrInvalidPattern struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidPattern) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.cause)
}

func (e *ErrInvalidPattern) Unwrap() error { return e.cause }
