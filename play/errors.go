package play

import (
	"errors"
	"fmt"
)

var (
	// ErrPrematureEnd is returned when a state consumes past the last token.
	ErrPrematureEnd = errors.New("premature end of string")

	// ErrNoEndStates is returned when a machine is built without end states.
	ErrNoEndStates = errors.New("no ending states -- cannot process")
)

// ParseError describes why a single play description could not be parsed.
// State is the state that was running when the failure occurred.
type ParseError struct {
	State State
	Msg   string
	err   error
}

func errorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	if errors.Is(e.err, ErrPrematureEnd) {
		return fmt.Sprintf("premature end of string in %v", e.State)
	}
	if e.State == StateNone {
		return e.Msg
	}
	return fmt.Sprintf("%s, in %v", e.Msg, e.State)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// attribute binds err to the state it escaped from.
func attribute(state State, err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		if pe.State == StateNone {
			pe.State = state
		}
		return pe
	}
	return &ParseError{State: state, Msg: err.Error(), err: err}
}
