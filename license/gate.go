package license

import "fmt"

// CheckPro returns ErrProRequired unless the current license is Pro.
// The error names the feature and the environment variable to set.
func CheckPro(feature string) error {
	if Current().IsPro() {
		return nil
	}
	return fmt.Errorf("%w: %q requires a Pro license. Set the %s environment variable",
		ErrProRequired, feature, EnvVar)
}

// Gate wraps an operation behind a Pro-tier pre-check. The wrapped function
// runs unchanged, with its return value passed through, only when the current
// license is Pro. Arguments are carried by the caller's closure, so any
// signature composes with this.
func Gate[R any](feature string, fn func() (R, error)) func() (R, error) {
	return func() (R, error) {
		if err := CheckPro(feature); err != nil {
			var zero R
			return zero, err
		}
		return fn()
	}
}

// GateFunc is Gate for operations with no value result.
func GateFunc(feature string, fn func() error) func() error {
	return func() error {
		if err := CheckPro(feature); err != nil {
			return err
		}
		return fn()
	}
}
