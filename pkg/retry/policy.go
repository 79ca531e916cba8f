package retry

import (
	"time"

	"github.com/jzx17/uiwait/pkg/types"
)

// Default retry budget. Ten short attempts outlast typical UI transitions
// while keeping the worst case around one second.
const (
	DefaultAttempts = 10
	DefaultSleep    = 100 * time.Millisecond
)

// Classifier decides whether a failure is eligible for another attempt.
type Classifier func(error) bool

// Policy controls how an operation is retried.
type Policy struct {
	attempts   int
	sleep      time.Duration
	classifier Classifier
	clock      types.Clock
}

// Option is a configuration option for a retry policy.
type Option func(*Policy)

// WithAttempts sets the maximum number of retries after the initial attempt.
func WithAttempts(attempts int) Option {
	return func(p *Policy) {
		p.attempts = attempts
	}
}

// WithSleep sets the delay between attempts.
func WithSleep(sleep time.Duration) Option {
	return func(p *Policy) {
		p.sleep = sleep
	}
}

// WithClassifier sets the failure classifier.
func WithClassifier(classifier Classifier) Option {
	return func(p *Policy) {
		p.classifier = classifier
	}
}

// WithClock sets the clock for time operations.
func WithClock(clock types.Clock) Option {
	return func(p *Policy) {
		p.clock = clock
	}
}

// NewPolicy creates a policy with the default transition-tolerant settings,
// then applies opts.
func NewPolicy(opts ...Option) Policy {
	p := Policy{
		attempts:   DefaultAttempts,
		sleep:      DefaultSleep,
		classifier: SeemsTransitional,
		clock:      types.NewRealClock(),
	}

	for _, opt := range opts {
		opt(&p)
	}

	return p
}
