package gateway

import (
	"errors"
	"fmt"
)

// ErrProfileResolution is returned when a profile can neither be fetched nor
// created. Callers treat it as "no user".
var ErrProfileResolution = errors.New("failed to load or create the user profile")

// ErrSelfModification is returned when a super-user tries to change their own
// role or delete their own account.
var ErrSelfModification = errors.New("cannot modify your own account")

// RemoteWriteError wraps a failed create, update or delete against the backend.
type RemoteWriteError struct {
	Op  string
	Err error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}

func writeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteWriteError{Op: op, Err: err}
}
