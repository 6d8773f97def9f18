package bvhfile

import "io"

type stateful struct {
	state state
	err   error
}

type state int

const (
	uninitialized state = 0x00
	invalid             = 0x01
	afterHeader         = 0x12
	afterIndex          = 0x22
)

func (s *stateful) close(a interface{}) error {
	if s.err == ErrClosed {
		return ErrClosed
	}

	s.err = ErrClosed

	if c, ok := a.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}

	return nil
}

func (s *stateful) sanityCheckState() {
	if s.state&invalid == invalid {
		fmtPanic("logic error: invalid state 0x%x", s.state)
	}
}

func (s *stateful) toState(expected, to state) (err error) {
	// Always fail if already in the error state.
	if s.err != nil {
		return s.err
	}

	// Happy path state transition, from the expected state.
	if s.state == expected {
		s.state = to
		return nil
	}

	// Check for bad internal state.
	s.sanityCheckState()

	// Indicate that the state transition is invalid.
	return errUnexpectedState
}

func (s *stateful) toErr(err error) error {
	if s.err != nil {
		textPanic("logic error: already in error state")
	}

	s.err = err
	return err
}
