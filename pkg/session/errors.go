package session

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError is returned if an Intent is not possible in the
// current State. The session is left unchanged.
type InvalidTransitionError struct {
	Intent Intent
	State  State
	Reason string
}

func (this *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %v while %v: %s", this.Intent, this.State, this.Reason)
}

func (this *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
