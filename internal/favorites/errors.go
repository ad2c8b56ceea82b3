package favorites

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationRequired means a mutation was attempted with no
	// active user. Callers should prompt for sign-in.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrRemoteCallFailed matches any *RemoteCallError.
	ErrRemoteCallFailed = errors.New("remote call failed")
)

// RemoteCallError wraps a store failure with the operation that hit it.
// The local cache is never changed when one of these is returned.
type RemoteCallError struct {
	Op  string
	Err error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("favorites %s: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

func (e *RemoteCallError) Is(target error) bool { return target == ErrRemoteCallFailed }
