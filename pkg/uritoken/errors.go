/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uritoken

import (
	"errors"
	"fmt"
)

var ErrUnexpectedInputError = errors.New("unexpected input")

// LexError is returned when the input can not be split into tokens.
type LexError struct {
	Position int
	Text     string
	Message  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v: %s at position %d «%s»", ErrUnexpectedInputError, e.Message, e.Position, e.Text)
}

func (e *LexError) Unwrap() error { return ErrUnexpectedInputError }

func errUnexpectedInput(pos int, text, msg string) error {
	return &LexError{Position: pos, Text: text, Message: msg}
}
