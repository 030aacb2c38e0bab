package textparse

import (
	"testing"

	"github.com/martinemde/parsec/parsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterClasses(t *testing.T) {
	for _, r := range "0123456789" {
		assert.True(t, IsDigit(r), "%q", r)
		assert.True(t, IsWordChar(r), "%q", r)
		assert.False(t, IsLetter(r), "%q", r)
	}
	for _, r := range "azAZ" {
		assert.True(t, IsLetter(r), "%q", r)
		assert.True(t, IsWordChar(r), "%q", r)
		assert.False(t, IsDigit(r), "%q", r)
	}
	assert.True(t, IsWordChar('_'))
	for _, r := range "-/ (é٣" {
		assert.False(t, IsWordChar(r), "%q", r)
	}
}

func TestDigit(t *testing.T) {
	for _, r := range digits {
		res := Digit.Parse(string(r) + "x")
		require.True(t, res.IsSuccess())
		assert.Equal(t, r, res.Value())
		assert.Equal(t, "x", res.Remaining())
	}

	res := Digit.Parse("a")
	require.True(t, res.IsFailure())
	assert.Equal(t, "Expecting 9, but got a", res.Message())
}

func TestLetterAndWord(t *testing.T) {
	assert.True(t, Letter.Parse("Q1").IsSuccess())
	assert.Equal(t, "Unexpected '1': did not satisfy the condition", Letter.Parse("1Q").Message())

	res := Word.Parse("snake_case1 rest")
	require.True(t, res.IsSuccess())
	assert.Equal(t, "snake_case1", res.Value())
	assert.Equal(t, " rest", res.Remaining())
	assert.True(t, Word.Parse(" x").IsFailure())
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, '-', Separator.Parse("-").Value())
	assert.Equal(t, '/', Separator.Parse("/").Value())
	assert.Equal(t, "Expecting /, but got x", Separator.Parse("x").Message())
}

func TestDateParser(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		want      Date
		remaining string
		message   string
	}{
		{name: "dashes", input: "2023-11-24", want: Date{Year: 2023, Month: 11, Day: 24}},
		{name: "slashes", input: "2023/11/24", want: Date{Year: 2023, Month: 11, Day: 24}},
		{name: "mixed separators", input: "2023-01/05", want: Date{Year: 2023, Month: 1, Day: 5}},
		{name: "trailing input", input: "1999-12-31T00", want: Date{Year: 1999, Month: 12, Day: 31}, remaining: "T00"},
		{name: "bad separator", input: "2023x11x24", message: "Expecting /, but got x"},
		{name: "letters in year", input: "abcd-11-24", message: "Expecting 9, but got a"},
		{name: "short year", input: "202-11-24", message: "Expecting 9, but got -"},
		{name: "truncated", input: "2023-11-2", message: "empty input"},
		{name: "empty", input: "", message: "empty input"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := DateParser.Parse(tc.input)
			if tc.message != "" {
				require.True(t, res.IsFailure())
				assert.Equal(t, tc.message, res.Message())
				return
			}
			require.True(t, res.IsSuccess(), res.String())
			assert.Equal(t, tc.want, res.Value())
			assert.Equal(t, tc.remaining, res.Remaining())
		})
	}
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2023-01-05", Date{Year: 2023, Month: 1, Day: 5}.String())
}

func TestIDParser(t *testing.T) {
	res := IDParser.Parse("A123456(7)")
	require.True(t, res.IsSuccess())
	assert.Equal(t, ID{Prefix: "A", Digits: "123456", CheckDigit: "7"}, res.Value())
	assert.Equal(t, "", res.Remaining())
	assert.Equal(t, "A123456(7)", res.Value().String())

	res = IDParser.Parse("Z(0)")
	require.True(t, res.IsSuccess())
	assert.Equal(t, ID{Prefix: "Z", CheckDigit: "0"}, res.Value())

	res = IDParser.Parse("123456(7)")
	require.True(t, res.IsFailure())
	assert.Equal(t, "Unexpected '1': did not satisfy the condition", res.Message())

	res = IDParser.Parse("A1234567")
	require.True(t, res.IsFailure())
	assert.Equal(t, "empty input", res.Message())

	res = IDParser.Parse("A123(x)")
	require.True(t, res.IsFailure())
	assert.Equal(t, "Expecting 9, but got x", res.Message())
}

func TestRegistryResolve(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"date", "digit", "id", "letter", "word"}, r.Names())

	entry, err := r.Resolve("date")
	require.NoError(t, err)
	assert.Equal(t, "date", entry.Name)
	assert.NotEmpty(t, entry.Description)

	res := entry.Parser.Parse("2023/11/24")
	require.True(t, res.IsSuccess())
	assert.Equal(t, Date{Year: 2023, Month: 11, Day: 24}, res.Value())

	_, err = r.Resolve("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no parser registered for "nope"`)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	Register(r, "x", "first", parsec.Char('x'))
	Register(r, "x", "second", parsec.String("xx"))

	entries := r.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].Description)
	assert.Equal(t, "xx", entries[0].Parser.Parse("xx").Value())
}

func TestEraseKeepsFailure(t *testing.T) {
	res := Erase(Digit).Parse("x")
	require.True(t, res.IsFailure())
	assert.Equal(t, parsec.ErrUnexpected, res.Err().Kind)
}
