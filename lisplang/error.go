package lisplang

import (
	"errors"
	"fmt"
)

var (
	ErrTrailingGarbage = errors.New("trailing garbage")
	ErrEmpty           = errors.New("empty program")
)

type UnknownCharError struct {
	Char rune
}

func (u UnknownCharError) Error() string {
	return fmt.Sprintf("unknown character '%c'", u.Char)
}

type UnmatchedError struct {
	Char rune
}

func (u UnmatchedError) Error() string {
	return fmt.Sprintf("unmatched '%c'", u.Char)
}

// Error is a failure attributed to a source location.
type Error struct {
	Err      error
	Location Location
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d column %d", e.Err.Error(), e.Location.Line, e.Location.Column)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func WithLocation(err error, loc Location) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{
		Err:      err,
		Location: loc,
	}
}
