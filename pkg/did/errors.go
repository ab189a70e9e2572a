package did

import "fmt"

// ParseError reports why an identifier failed validation. Parsing is
// all-or-nothing: a ParseError means no part of the input was usable.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid DID %q: %s", e.Input, e.Reason)
}

func parseError(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
