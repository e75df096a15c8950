/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uritoken

import "strings"

var searchSymbols = searchLexer.Symbols()

func searchTokens(input string) ([]SearchToken, error) {
	raw, err := lexAt(searchLexer, input, 0)
	if err != nil {
		return nil, err
	}
	tokens := make([]SearchToken, 0, len(raw))
	for _, r := range raw {
		tok := SearchToken{Text: r.Value, Position: r.Pos.Offset}
		switch r.Type {
		case searchSymbols[searchWhitespace]:
			continue
		case searchSymbols[searchOpen]:
			tok.Kind = SearchKind_Open
		case searchSymbols[searchClose]:
			tok.Kind = SearchKind_Close
		case searchSymbols[searchPhrase]:
			tok.Kind = SearchKind_Phrase
			tok.Text = unescapePhrase(r.Value[1 : len(r.Value)-1])
			if tok.Text == "" {
				return nil, errUnexpectedInput(r.Pos.Offset, r.Value, "empty phrase")
			}
		case searchSymbols[searchWord]:
			tok.Kind = SearchKind_Word
			if op, ok := searchOperators[r.Value]; ok {
				tok.Kind = op
			}
		default:
			return nil, errUnexpectedInput(r.Pos.Offset, input[r.Pos.Offset:], "unterminated phrase")
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func unescapePhrase(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	b := strings.Builder{}
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
