/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uritoken

// New returns a tokenizer for the specified expression text
func New(input string) (*Tokenizer, error) {
	tokens, err := lexAt(uriLexer, input, 0)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{input: input, tokens: tokens}, nil
}

// Search splits a $search expression into classified tokens.
//
// Returns LexError for an unterminated or empty phrase.
func Search(input string) ([]SearchToken, error) {
	return searchTokens(input)
}
