/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrTypeNotFound(t QName) error {
	return ErrNotFound("type «%v»", t)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

func ErrInvalidQName(s string) error {
	return ErrInvalid("qualified name «%s» must be in «namespace.name» form", s)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrCyclicError = errors.New("cyclic reference")

func ErrCyclic(msg string, args ...any) error {
	return EnrichError(ErrCyclicError, msg, args...)
}
