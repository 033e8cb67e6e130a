package custom_error

import "fmt"

// QueryFailedError marks a store-level failure. Handlers answer these with
// an opaque 500 body and log the wrapped cause server-side only.
type QueryFailedError struct {
	operation string
	err       error
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("%s: %v", e.operation, e.err)
}

func (e *QueryFailedError) Unwrap() error {
	return e.err
}

func WrapQueryError(operation string, err error) *QueryFailedError {
	return &QueryFailedError{
		operation: operation,
		err:       err,
	}
}
