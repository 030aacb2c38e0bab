package textparse

import (
	"github.com/martinemde/parsec/parsec"
	"github.com/samber/lo"
)

const digits = "0123456789"

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsWordChar reports whether r is an ASCII letter, digit or underscore.
func IsWordChar(r rune) bool {
	return IsLetter(r) || IsDigit(r) || r == '_'
}

var (
	// Digit matches one of '0' through '9'.
	Digit = parsec.Any(lo.Map([]rune(digits), func(r rune, _ int) parsec.Parser[rune] {
		return parsec.Char(r)
	})...)

	// Letter matches one ASCII letter.
	Letter = parsec.Satisfy(IsLetter)

	// WordChar matches one ASCII letter, digit or underscore.
	WordChar = parsec.Satisfy(IsWordChar)

	// Separator matches a date separator, '-' or '/'.
	Separator = parsec.OrElse(parsec.Char('-'), parsec.Char('/'))
)

// Word matches one or more word characters.
var Word = parsec.Map(parsec.Many1(WordChar), func(rs []rune) string { return string(rs) })
