package parsec

import "fmt"

// Result is the outcome of running a Parser: either a success carrying a
// value and the unconsumed input, or a failure carrying a *ParseError.
type Result[T any] struct {
	value     T
	remaining string
	err       *ParseError
}

// Success builds a successful result.
func Success[T any](value T, remaining string) Result[T] {
	return Result[T]{value: value, remaining: remaining}
}

// Failure builds a failed result. A nil err is replaced with an ErrCustom
// error so that a failure can never be mistaken for a success.
func Failure[T any](err *ParseError) Result[T] {
	if err == nil {
		err = &ParseError{Kind: ErrCustom, Message: "parse failed"}
	}
	return Result[T]{err: err}
}

// Failf builds a failed result with a formatted message.
func Failf[T any](kind ErrorKind, format string, args ...any) Result[T] {
	return Failure[T](&ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// propagate relays a failure of one result type as a failure of another.
func propagate[B, A any](r Result[A]) Result[B] {
	return Result[B]{err: r.err}
}

func (r Result[T]) IsSuccess() bool { return r.err == nil }

func (r Result[T]) IsFailure() bool { return r.err != nil }

// Value returns the parsed value. It panics if r is a failure.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("parsec: Value called on a failed result: " + r.err.Message)
	}
	return r.value
}

// Remaining returns the unconsumed input. It panics if r is a failure.
func (r Result[T]) Remaining() string {
	if r.err != nil {
		panic("parsec: Remaining called on a failed result: " + r.err.Message)
	}
	return r.remaining
}

// Err returns the failure. It panics if r is a success.
func (r Result[T]) Err() *ParseError {
	if r.err == nil {
		panic("parsec: Err called on a successful result")
	}
	return r.err
}

// Message returns the failure message. It panics if r is a success.
func (r Result[T]) Message() string {
	return r.Err().Message
}

// Get returns the value, the remaining input and a nil error on success, or
// the zero value, "" and the *ParseError on failure.
func (r Result[T]) Get() (T, string, error) {
	if r.err != nil {
		var zero T
		return zero, "", r.err
	}
	return r.value, r.remaining, nil
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Failure(%s)", r.err.Message)
	}
	return fmt.Sprintf("Success(%v, %q)", r.value, r.remaining)
}
