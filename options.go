package featmat

import (
	"log/slog"

	"github.com/hupe1980/featmat/pattern"
)

// Mode selects keep-vs-remove semantics for a selection.
type Mode int

const (
	// ModeKeep retains the matched features. This is the default.
	ModeKeep Mode = iota
	// ModeRemove retains everything except the matched features.
	ModeRemove
)

// String returns a stable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeKeep:
		return "keep"
	case ModeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// MatchMode selects the pattern matching semantics. Alias of
// pattern.MatchMode.
type MatchMode = pattern.MatchMode

const (
	// MatchGlob is the default matching semantics (* and ? wildcards).
	MatchGlob = pattern.MatchGlob
	// MatchFixed requires exact string equality.
	MatchFixed = pattern.MatchFixed
	// MatchRegex treats patterns as anchored Go regular expressions.
	MatchRegex = pattern.MatchRegex
)

const (
	// DefaultMinFeatureLen is the default lower bound of the feature length
	// filter, in characters.
	DefaultMinFeatureLen = 1
	// DefaultMaxFeatureLen is the default upper bound of the feature length
	// filter. Generous for natural-language tokens; pass
	// WithLenRange(min, 0) for unbounded.
	DefaultMaxFeatureLen = 79
)

type options struct {
	mode             Mode
	modeSet          bool
	matchMode        MatchMode
	caseInsensitive  bool
	minLen           int
	maxLen           int // 0 means unbounded
	verbose          bool
	parallelism      int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a selection call.
type Option func(*options)

// WithMode sets keep-vs-remove semantics explicitly. Must not be combined
// with the Keep/Remove convenience entry points.
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
		o.modeSet = true
	}
}

// WithMatchMode sets the pattern matching semantics (default MatchGlob).
// Ignored when the pattern source is another matrix, which forces fixed
// case-sensitive matching.
func WithMatchMode(mode MatchMode) Option {
	return func(o *options) {
		o.matchMode = mode
	}
}

// WithCaseSensitive disables the default case-insensitive matching.
func WithCaseSensitive() Option {
	return func(o *options) {
		o.caseInsensitive = false
	}
}

// WithLenRange bounds the character length of kept features. maxLen 0 means
// unbounded. The filter narrows the pattern result and never applies to
// padding columns.
func WithLenRange(minLen, maxLen int) Option {
	return func(o *options) {
		o.minLen = minLen
		o.maxLen = maxLen
	}
}

// WithVerbose enables the selection report (matched pattern count and net
// feature change), emitted through the configured logger at Info level.
// Reporting is observational only and never affects results.
func WithVerbose() Option {
	return func(o *options) {
		o.verbose = true
	}
}

// WithParallelism caps the number of goroutines used for pattern matching
// over large vocabularies. n <= 0 means GOMAXPROCS. Results are identical
// regardless of the value.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// selection operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		mode:             ModeKeep,
		matchMode:        MatchGlob,
		caseInsensitive:  true,
		minLen:           DefaultMinFeatureLen,
		maxLen:           DefaultMaxFeatureLen,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
