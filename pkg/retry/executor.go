package retry

// Do invokes fn and returns its result on success. On failure, eligible
// errors are retried up to the policy budget with a fixed inter-attempt
// sleep; errors the classifier rejects are returned immediately without
// consuming any budget.
func Do[T any](fn func() (T, error), opts ...Option) (T, error) {
	policy := NewPolicy(opts...)

	previousAttempts := 0
	for {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		if previousAttempts > policy.attempts {
			return result, err
		}

		if !policy.classifier(err) {
			return result, err
		}

		policy.clock.Sleep(policy.sleep)
		previousAttempts++
	}
}

// Call is Do for operations without a result.
func Call(fn func() error, opts ...Option) error {
	_, err := Do(func() (struct{}, error) {
		return struct{}{}, fn()
	}, opts...)
	return err
}

// Wrap returns a function that runs fn through Call with the given options.
// It composes explicitly at call sites that repeatedly perform the same
// transition-sensitive action.
func Wrap(fn func() error, opts ...Option) func() error {
	return func() error {
		return Call(fn, opts...)
	}
}
