package parsec

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	ErrCustom         ErrorKind = iota // Fail, Label
	ErrEndOfInput                      // a primitive ran out of input
	ErrUnexpected                      // the next unit did not match
	ErrNoAlternatives                  // Any with no parsers
	ErrTrailingInput                   // EOF found unconsumed input
)

var errorKindNames = map[ErrorKind]string{
	ErrCustom:         "custom",
	ErrEndOfInput:     "end_of_input",
	ErrUnexpected:     "unexpected",
	ErrNoAlternatives: "no_alternatives",
	ErrTrailingInput:  "trailing_input",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseError is the failure payload of a Result. Combinators relay the same
// *ParseError up the chain without wrapping it.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string { return e.Message }
