package stealpool

import "fmt"

// PoolError represents an error that occurred constructing or operating
// a Pool. It implements error and supports unwrapping via errors.Unwrap.
type PoolError struct {
	msg string
	err error
}

// Error returns a formatted error message, including the wrapped error
// if one is present.
func (e *PoolError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("stealpool: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("stealpool: %s", e.msg)
}

// Unwrap returns the underlying error, for use with errors.Is/errors.As.
func (e *PoolError) Unwrap() error {
	return e.err
}

// Sentinel errors returned by this package.
var (
	// ErrInvalidThreadCount is returned by NewPool when threadCount < 1.
	ErrInvalidThreadCount = &PoolError{msg: "thread count must be >= 1"}

	// ErrNilTask describes a nil task. No function in this package
	// returns it: Add returns nothing and silently drops a nil task.
	ErrNilTask = &PoolError{msg: "task is nil"}
)

func errInvalidConfig(msg string) error {
	return &PoolError{msg: "invalid config: " + msg}
}
