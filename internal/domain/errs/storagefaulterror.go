package errs

import "fmt"

// StorageFaultError reports a repository whose internal state can no longer be trusted.
// It is fatal: callers surface it and never retry.
type StorageFaultError struct {
	message string
	cause   error
}

func (v *StorageFaultError) Error() string {
	if v.cause != nil {
		return fmt.Sprintf("%s: %v", v.message, v.cause)
	}
	return v.message
}

func (v *StorageFaultError) Unwrap() error {
	return v.cause
}

func StorageFaultErrorf(format string, args ...any) *StorageFaultError {
	return &StorageFaultError{
		message: fmt.Sprintf(format, args...),
	}
}

// WrapStorageFault builds a StorageFaultError around cause.
func WrapStorageFault(cause error, format string, args ...any) *StorageFaultError {
	return &StorageFaultError{
		message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

var _ error = &StorageFaultError{}
