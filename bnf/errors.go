package bnf

import "fmt"

// Error reports a grammar that Compile could not turn into a parser:
// malformed BNF text, or a reference to a rule name that is never defined
// anywhere in the grammar. It is strictly a construction-time diagnostic --
// the parsers Compile produces still report parse failure solely through
// combinator.Parser's success/failure sentinel, never through an Error.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
