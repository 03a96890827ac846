package pattern

import (
	"regexp"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
)

// matcher tests one compiled pattern against a vocabulary entry. For fixed
// and glob semantics under case-insensitive matching, the entry is already
// case-folded by the resolver.
type matcher interface {
	match(entry string) bool
}

type fixedMatcher string

func (m fixedMatcher) match(entry string) bool { return string(m) == entry }

type globMatcher struct {
	g glob.Glob
}

func (m globMatcher) match(entry string) bool { return m.g.Match(entry) }

type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) match(entry string) bool { return m.re.MatchString(entry) }

// compile builds a matcher for a single pattern. The fold caser is non-nil
// when fixed/glob matching is case-insensitive; it must only be used from a
// single goroutine.
func compile(p string, mode MatchMode, caseInsensitive bool, folder cases.Caser) (matcher, error) {
	switch mode {
	case MatchFixed:
		if caseInsensitive {
			p = folder.String(p)
		}
		return fixedMatcher(p), nil
	case MatchGlob:
		if caseInsensitive {
			p = folder.String(p)
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, &ErrInvalidPattern{Pattern: p, cause: err}
		}
		return globMatcher{g: g}, nil
	case MatchRegex:
		expr := "^(?:" + p + ")$"
		if caseInsensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &ErrInvalidPattern{Pattern: p, cause: err}
		}
		return regexMatcher{re: re}, nil
	default:
		return nil, &ErrInvalidPattern{Pattern: p, cause: errUnknownMode(mode)}
	}
}

type errUnknownMode MatchMode

func (e errUnknownMode) Error() string { return "unknown match mode " + MatchMode(e).String() }
