package bazi

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores que llegan a la frontera de transporte.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindCalendarResolution
	KindInternal
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrCalendarResolution = errors.New("calendar resolution failure")
	ErrInternal           = errors.New("internal computation fault")
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindCalendarResolution:
		return "calendar_resolution_failure"
	default:
		return "internal_error"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindCalendarResolution:
		return ErrCalendarResolution
	default:
		return ErrInternal
	}
}

// Error lleva el tipo de fallo, la operación y la causa.
// errors.Is funciona tanto contra el sentinel del Kind como contra la causa.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind.sentinel())
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf devuelve el Kind de err; cualquier error no clasificado es interno.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func invalidInput(op string, err error) error {
	return &Error{Kind: KindInvalidInput, Op: op, Err: err}
}

func calendarFailure(op string, err error) error {
	return &Error{Kind: KindCalendarResolution, Op: op, Err: err}
}

func internalFault(op string, err error) error {
	return &Error{Kind: KindInternal, Op: op, Err: err}
}
