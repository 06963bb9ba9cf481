// SPDX-License-Identifier: MIT

// Functional configuration for Build: no global state, and every flag is
// covered by tests.

package simplicial

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultClosure requires every face to be listed explicitly.
	// true ⇒ Build adds all missing faces (downward closure).
	DefaultClosure = false
)

// Option mutates build options. Safe to apply repeatedly (idempotent).
type Option func(*options)

type options struct {
	closure bool
}

// WithClosure makes Build complete the input with every face of every
// simplex instead of reporting ErrMissingFace.
func WithClosure() Option {
	return func(o *options) { o.closure = true }
}

// gatherOptions applies optFns over the documented defaults.
func gatherOptions(optFns ...Option) options {
	o := options{closure: DefaultClosure}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
