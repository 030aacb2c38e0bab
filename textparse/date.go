package textparse

import (
	"fmt"
	"strconv"

	"github.com/martinemde/parsec/parsec"
)

// Date is a calendar date as written, without range validation.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// number parses exactly n digits as a decimal integer.
func number(n int) parsec.Parser[int] {
	ds := make([]parsec.Parser[rune], n)
	for i := range ds {
		ds[i] = Digit
	}
	return parsec.Map(parsec.Sequence(ds...), func(rs []rune) int {
		// n ASCII digits always convert.
		v, _ := strconv.Atoi(string(rs))
		return v
	})
}

var (
	year  = number(4)
	month = number(2)
	day   = number(2)

	yearMonth = parsec.AndThen(
		parsec.AndThenTakeFirst(year, Separator),
		parsec.AndThenTakeFirst(month, Separator),
	)

	// DateParser matches YYYY-MM-DD or YYYY/MM/DD.
	DateParser = parsec.Map(parsec.AndThen(yearMonth, day), func(p parsec.Pair[parsec.Pair[int, int], int]) Date {
		return Date{Year: p.First.First, Month: p.First.Second, Day: p.Second}
	})
)
