// Package parsec is a small parser-combinator engine.
//
// A Parser[T] is a plain function from an input string to a Result[T]. A
// Result is either a success, holding a value and the input left over, or a
// failure, holding a *ParseError. Parsers are built from two primitives and
// combined with a fixed set of combinators:
//
//   - Primitives: Satisfy and Char consume at most one rune.
//   - Sequencing: AndThen, AndThenTakeFirst, AndThenTakeSecond, Between,
//     Sequence.
//   - Alternation: OrElse, Any. Both retry from the original input.
//   - Transformation: Map.
//   - Repetition: Many, Many1, SepBy.
//
// Failures short-circuit: every combinator except OrElse, Any, Many and
// Optional relays the first failure it sees unchanged.
//
// Usage:
//
//	digit := parsec.Satisfy(func(r rune) bool { return r >= '0' && r <= '9' })
//	pair := parsec.AndThen(digit, parsec.Char('x'))
//	r := pair.Parse("7x rest")
//	if r.IsSuccess() {
//	    fmt.Printf("%c %q\n", r.Value().First, r.Remaining()) // 7 " rest"
//	}
//
// Parsers are immutable values and may be shared between goroutines.
package parsec
