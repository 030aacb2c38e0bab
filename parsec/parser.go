package parsec

import (
	"strings"
	"unicode/utf8"
)

// Parser maps an input string to a Result. Parsers hold no mutable state, so
// one value may be invoked any number of times, from any goroutine.
type Parser[T any] func(input string) Result[T]

// Parse runs p on input.
func (p Parser[T]) Parse(input string) Result[T] {
	return p(input)
}

// Satisfy returns a parser that consumes one rune if pred accepts it.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(input string) Result[rune] {
		if input == "" {
			return Failf[rune](ErrEndOfInput, "empty input")
		}
		r, size := utf8.DecodeRuneInString(input)
		if !pred(r) {
			return Failf[rune](ErrUnexpected, "Unexpected '%c': did not satisfy the condition", r)
		}
		return Success(r, input[size:])
	}
}

// Char returns a parser that consumes exactly the rune c.
func Char(c rune) Parser[rune] {
	return func(input string) Result[rune] {
		if input == "" {
			return Failf[rune](ErrEndOfInput, "empty input")
		}
		r, size := utf8.DecodeRuneInString(input)
		if r != c {
			return Failf[rune](ErrUnexpected, "Expecting %c, but got %c", c, r)
		}
		return Success(r, input[size:])
	}
}

// String returns a parser that consumes the literal s.
func String(s string) Parser[string] {
	chars := make([]Parser[rune], 0, utf8.RuneCountInString(s))
	for _, r := range s {
		chars = append(chars, Char(r))
	}
	return Map(Sequence(chars...), func(rs []rune) string { return string(rs) })
}

// Pure returns a parser that succeeds with v without consuming input.
func Pure[T any](v T) Parser[T] {
	return func(input string) Result[T] {
		return Success(v, input)
	}
}

// Fail returns a parser that always fails with message.
func Fail[T any](message string) Parser[T] {
	return func(string) Result[T] {
		return Failure[T](&ParseError{Kind: ErrCustom, Message: message})
	}
}

// EOF succeeds only when the input is exhausted.
func EOF() Parser[struct{}] {
	return func(input string) Result[struct{}] {
		if input != "" {
			return Failf[struct{}](ErrTrailingInput, "unexpected trailing input %q", truncate(input, 20))
		}
		return Success(struct{}{}, input)
	}
}

// ParseAll runs p on input and requires it to consume everything. The
// returned error, if any, is a *ParseError.
func ParseAll[T any](p Parser[T], input string) (T, error) {
	v, _, err := AndThenTakeFirst(p, EOF()).Parse(input).Get()
	return v, err
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	var b strings.Builder
	for i, r := range []rune(s) {
		if i == n {
			break
		}
		b.WriteRune(r)
	}
	b.WriteString("...")
	return b.String()
}
