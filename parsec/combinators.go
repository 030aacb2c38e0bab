package parsec

import "slices"

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// AndThen runs p1 and then p2 on what p1 left over. The first failure is
// returned as is; p2 never runs if p1 fails.
func AndThen[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return func(input string) Result[Pair[A, B]] {
		r1 := p1(input)
		if r1.IsFailure() {
			return propagate[Pair[A, B]](r1)
		}
		r2 := p2(r1.remaining)
		if r2.IsFailure() {
			return propagate[Pair[A, B]](r2)
		}
		return Success(Pair[A, B]{First: r1.value, Second: r2.value}, r2.remaining)
	}
}

// OrElse runs p1 and, if it fails, runs p2 on the same original input.
func OrElse[A any](p1, p2 Parser[A]) Parser[A] {
	return func(input string) Result[A] {
		if r := p1(input); r.IsSuccess() {
			return r
		}
		return p2(input)
	}
}

// Map transforms the value of a successful parse with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) Result[B] {
		r := p(input)
		if r.IsFailure() {
			return propagate[B](r)
		}
		return Success(f(r.value), r.remaining)
	}
}

// Any tries each parser in order and returns the first success, or the last
// failure if none succeed. With no parsers it always fails.
func Any[A any](parsers ...Parser[A]) Parser[A] {
	if len(parsers) == 0 {
		return func(string) Result[A] {
			return Failure[A](&ParseError{Kind: ErrNoAlternatives, Message: "no alternatives"})
		}
	}
	p := parsers[0]
	for _, next := range parsers[1:] {
		p = OrElse(p, next)
	}
	return p
}

// Sequence runs the parsers one after another and collects their values.
// An empty Sequence succeeds with an empty slice and consumes nothing.
func Sequence[A any](parsers ...Parser[A]) Parser[[]A] {
	acc := Pure([]A{})
	for _, p := range parsers {
		single := Map(p, func(a A) []A { return []A{a} })
		acc = Map(AndThen(acc, single), func(pair Pair[[]A, []A]) []A {
			return slices.Concat(pair.First, pair.Second)
		})
	}
	return acc
}

// AndThenTakeFirst runs p1 then p2 and keeps only p1's value.
func AndThenTakeFirst[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(AndThen(p1, p2), func(pair Pair[A, B]) A { return pair.First })
}

// AndThenTakeSecond runs p1 then p2 and keeps only p2's value.
func AndThenTakeSecond[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(AndThen(p1, p2), func(pair Pair[A, B]) B { return pair.Second })
}

// Between runs open, p and end in order and keeps p's value.
func Between[A, B, C any](open Parser[A], p Parser[B], end Parser[C]) Parser[B] {
	return AndThenTakeSecond(open, AndThenTakeFirst(p, end))
}

// Many applies p until it fails and never fails itself. The failed attempt
// is discarded, as is a success that consumed no input, which would
// otherwise repeat forever.
func Many[A any](p Parser[A]) Parser[[]A] {
	return func(input string) Result[[]A] {
		values := []A{}
		rest := input
		for {
			r := p(rest)
			if r.IsFailure() || len(r.remaining) == len(rest) {
				return Success(values, rest)
			}
			values = append(values, r.value)
			rest = r.remaining
		}
	}
}

// Many1 is like Many but requires at least one match.
func Many1[A any](p Parser[A]) Parser[[]A] {
	return Map(AndThen(p, Many(p)), func(pair Pair[A, []A]) []A {
		return append([]A{pair.First}, pair.Second...)
	})
}

// Optional runs p, succeeding with fallback and consuming nothing if p fails.
func Optional[A any](p Parser[A], fallback A) Parser[A] {
	return OrElse(p, Pure(fallback))
}

// SepBy parses zero or more p separated by sep.
func SepBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return OrElse(
		Map(AndThen(p, Many(AndThenTakeSecond(sep, p))), func(pair Pair[A, []A]) []A {
			return append([]A{pair.First}, pair.Second...)
		}),
		Pure([]A{}),
	)
}

// Label replaces any failure of p with message.
func Label[A any](p Parser[A], message string) Parser[A] {
	return func(input string) Result[A] {
		if r := p(input); r.IsSuccess() {
			return r
		}
		return Failure[A](&ParseError{Kind: ErrCustom, Message: message})
	}
}

// Lazy calls build each time the parser runs, which lets a grammar
// refer to itself.
func Lazy[A any](build func() Parser[A]) Parser[A] {
	return func(input string) Result[A] {
		return build()(input)
	}
}
