package formula

import "errors"

// Sentinel errors returned by Parse. Callers should branch with errors.Is;
// the formatted message additionally carries the offending position.
var (
	// ErrUnexpectedEOF indicates the input ended while a token was expected.
	ErrUnexpectedEOF = errors.New("formula: unexpected end of input")

	// ErrUnexpectedToken indicates a token was found where it is not valid.
	ErrUnexpectedToken = errors.New("formula: unexpected token")

	// ErrUnterminatedParen indicates a "(" with no matching ")".
	ErrUnterminatedParen = errors.New("formula: unterminated parenthesis")

	// ErrTrailingInput indicates extra tokens remained after a complete parse.
	ErrTrailingInput = errors.New("formula: trailing input after expression")

	// ErrEmptyFormula indicates Parse was called on a blank line.
	ErrEmptyFormula = errors.New("formula: empty formula")
)
