package scan

import (
	"errors"
	"fmt"
)

var (
	ErrEOF               = errors.New("unexpected end of input")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumber            = errors.New("bad number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrBadSurrogate      = errors.New("bad surrogate pair")
	ErrStringControl     = errors.New("control character in string")
)

// Error is a lexical or syntactic failure at a position in the input.
type Error struct {
	Err error
	Pos Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(err error, p *Pos) *Error {
	return &Error{Err: err, Pos: *p}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewError(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewError(fmt.Errorf("unexpected %s", what), p)
}

// Offset extracts the byte offset carried by err, if any.
func Offset(err error) (int, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Pos.I, true
	}
	return 0, false
}
