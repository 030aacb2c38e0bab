package textparse

import (
	"fmt"

	"github.com/martinemde/parsec/parsec"
)

// ID is an identity number of the form A123456(7): a letter prefix, a run of
// digits, and a bracketed check digit. The check digit is not verified.
type ID struct {
	Prefix     string `json:"prefix" yaml:"prefix"`
	Digits     string `json:"digits" yaml:"digits"`
	CheckDigit string `json:"check_digit" yaml:"check_digit"`
}

func (id ID) String() string {
	return fmt.Sprintf("%s%s(%s)", id.Prefix, id.Digits, id.CheckDigit)
}

var (
	idBody = parsec.AndThen(Letter, parsec.Many(Digit))

	checkDigit = parsec.Between(parsec.Char('('), Digit, parsec.Char(')'))

	// IDParser matches a letter, any number of digits, then "(d)".
	IDParser = parsec.Map(parsec.AndThen(idBody, checkDigit), func(p parsec.Pair[parsec.Pair[rune, []rune], rune]) ID {
		return ID{
			Prefix:     string(p.First.First),
			Digits:     string(p.First.Second),
			CheckDigit: string(p.Second),
		}
	})
)
