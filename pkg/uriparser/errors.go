/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/voedger/odata/pkg/uritoken"
)

var (
	ErrSyntax      = errors.New("syntax error")
	ErrSemantic    = errors.New("semantic error")
	ErrQueryOption = errors.New("query option error")

	// Returned for constructs which are recognized but not enabled by Config.Features
	ErrUnsupported = errors.ErrUnsupported
)

// Input does not match the grammar at position
type SyntaxError struct {
	Message  string
	Text     string
	Position int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s at position %d «%s»", ErrSyntax, e.Message, e.Position, e.Text)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Kind of semantic error
type SemanticErrorKey uint8

const (
	SemanticErrorKey_null SemanticErrorKey = iota
	SemanticErrorKey_UnknownProperty
	SemanticErrorKey_UnknownEntitySet
	SemanticErrorKey_UnknownType
	SemanticErrorKey_UnknownFunction
	SemanticErrorKey_IncompatibleTypes
	SemanticErrorKey_CollectionNotAllowed
	SemanticErrorKey_KeyPredicate
	SemanticErrorKey_DuplicateParameter
	SemanticErrorKey_InvalidParameterValue
	SemanticErrorKey_UnknownNamespace
	SemanticErrorKey_AliasValue
	SemanticErrorKey_NotComposable
	SemanticErrorKey_count
)

var semanticErrorKeyNames = [SemanticErrorKey_count]string{
	SemanticErrorKey_null:                  "null",
	SemanticErrorKey_UnknownProperty:       "UnknownProperty",
	SemanticErrorKey_UnknownEntitySet:      "UnknownEntitySet",
	SemanticErrorKey_UnknownType:           "UnknownType",
	SemanticErrorKey_UnknownFunction:       "UnknownFunction",
	SemanticErrorKey_IncompatibleTypes:     "IncompatibleTypes",
	SemanticErrorKey_CollectionNotAllowed:  "CollectionNotAllowed",
	SemanticErrorKey_KeyPredicate:          "KeyPredicate",
	SemanticErrorKey_DuplicateParameter:    "DuplicateParameter",
	SemanticErrorKey_InvalidParameterValue: "InvalidParameterValue",
	SemanticErrorKey_UnknownNamespace:      "UnknownNamespace",
	SemanticErrorKey_AliasValue:            "AliasValue",
	SemanticErrorKey_NotComposable:         "NotComposable",
}

func (k SemanticErrorKey) String() string {
	if k < SemanticErrorKey_count {
		return semanticErrorKeyNames[k]
	}
	return "SemanticErrorKey(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Resolvable construct refers to unknown or incompatible name, type or operation
type SemanticError struct {
	Key     SemanticErrorKey
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSemantic, e.Message)
}

func (e *SemanticError) Unwrap() error { return ErrSemantic }

// Illegal value or usage of system query option.
//
// Key is the message template, see Localize
type QueryOptionError struct {
	Option string
	Key    string
	Args   []any
}

func (e *QueryOptionError) Error() string {
	return fmt.Sprintf("%v: «%s»: %s", ErrQueryOption, e.Option, fmt.Sprintf(e.Key, e.Args...))
}

func (e *QueryOptionError) Unwrap() error { return ErrQueryOption }

// Returns message rendered for language. Falls back to English
func (e *QueryOptionError) Localize(tag language.Tag) string {
	p := message.NewPrinter(tag, message.Catalog(messages))
	return p.Sprintf(e.Key, e.Args...)
}

// Construct is recognized but feature is not enabled
type UnsupportedError struct {
	Feature   Feature
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: %s requires feature «%v»", ErrUnsupported, e.Construct, e.Feature)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

func errSemantic(key SemanticErrorKey, msg string, args ...any) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &SemanticError{Key: key, Message: msg}
}

func errQueryOption(option, key string, args ...any) error {
	return &QueryOptionError{Option: option, Key: key, Args: args}
}

// Converts tokenizer errors into syntax errors
func lexError(err error) error {
	var le *uritoken.LexError
	if errors.As(err, &le) {
		return &SyntaxError{Message: le.Message, Text: le.Text, Position: le.Position}
	}
	return &SyntaxError{Message: err.Error()}
}
