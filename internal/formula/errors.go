package formula

import (
	"errors"
	"fmt"
)

// Domain errors for formula evaluation.
var (
	// ErrDivisionByZero indicates a divisor evaluated to zero.
	ErrDivisionByZero = errors.New("formula: division by zero")

	// ErrInvalidInput indicates the wrong set of inputs was supplied.
	ErrInvalidInput = errors.New("formula: invalid input")
)

// Kind classifies an Error.
type Kind int

const (
	KindDivisionByZero Kind = iota + 1
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindInvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// Error is the failure variant of a formula evaluation.
type Error struct {
	Topic   string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Topic == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Topic, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindDivisionByZero:
		return ErrDivisionByZero
	case KindInvalidInput:
		return ErrInvalidInput
	default:
		return nil
	}
}

func divisionByZero(topic, divisor string) *Error {
	return &Error{
		Topic:   topic,
		Kind:    KindDivisionByZero,
		Message: divisor + " must not be zero",
	}
}

// InvalidInput builds an InvalidInput error for the given topic.
func InvalidInput(topic, format string, args ...any) *Error {
	return &Error{
		Topic:   topic,
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf reports the error kind carried by err, or 0 if err is not a
// formula error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	}
	return 0
}
