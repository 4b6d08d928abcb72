package sfcparser

import (
	"errors"
	"fmt"
)

// ParseError is the base error type for all scan-level errors.
type ParseError struct {
	Message string
	Offset  int // byte offset into the source
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}

// MissingEndTagError reports a block that was opened but never closed before
// the input ended. Offset points at the '<' of the opening tag.
type MissingEndTagError struct {
	ParseError
	Name BlockName
}

// UnexpectedEndTagError reports an end tag that appeared with no open block.
// Offset points at the '<' of the end tag.
type UnexpectedEndTagError struct {
	ParseError
	Name BlockName
}

// IllegalCharError reports a character that is not permitted in a validated
// string value.
type IllegalCharError struct {
	Kind string // "block name", "attribute name", "attribute value"
	Char rune
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("%s cannot contain %q", e.Kind, e.Char)
}

var (
	// ErrBlockNameStart is returned when a block name is empty or does not
	// start with an ASCII letter.
	ErrBlockNameStart = errors.New("block name must start with an ASCII letter")

	// ErrEmptyRaw is returned when a raw section is empty once end-trimmed.
	ErrEmptyRaw = errors.New("raw section must not be empty once end-trimmed")
)

func missingEndTag(name BlockName, offset int) error {
	return &MissingEndTagError{
		ParseError: ParseError{
			Message: fmt.Sprintf("missing end tag: %q", name),
			Offset:  offset,
		},
		Name: name,
	}
}

func unexpectedEndTag(name BlockName, offset int) error {
	return &UnexpectedEndTagError{
		ParseError: ParseError{
			Message: fmt.Sprintf("unexpected end tag: %q", name),
			Offset:  offset,
		},
		Name: name,
	}
}
