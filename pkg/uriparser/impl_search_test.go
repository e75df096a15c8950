/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSearch(t *testing.T) {
	p := testParser()

	tests := []struct {
		search string
		want   string
	}{
		{"blue", "blue"},
		{"blue green", "(blue and green)"},
		{"blue AND green", "(blue and green)"},
		{"blue OR green", "(blue or green)"},
		{"blue green OR red", "((blue and green) or red)"},
		{"blue OR green red", "(blue or (green and red))"},
		{"NOT red", "(not red)"},
		{"blue NOT red", "(blue and (not red))"},
		{"(blue OR green) AND red", "((blue or green) and red)"},
		{`"blue green"`, "blue green"},
		{`"say \"hi\""`, `say "hi"`},
		{"mountain-bike 2024", "(mountain-bike and 2024)"},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			require := require.New(t)
			opt, err := p.ParseSearch(tt.search)
			require.NoError(err)
			require.Equal(tt.want, Dump(opt.Expression))
		})
	}

	t.Run("terms are untyped literals", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseSearch("blue")
		require.NoError(err)
		require.Equal(&Literal{Text: "blue"}, opt.Expression)
		require.Nil(opt.Expression.Type())
	})
}

func TestParseSearch_Errors(t *testing.T) {
	p := testParser()

	for _, search := range []string{"", "   ", "blue AND", "blue OR", "NOT", "(blue", "blue)", ")", "()"} {
		t.Run(search, func(t *testing.T) {
			_, err := p.ParseSearch(search)
			require.ErrorIs(t, err, ErrSyntax)
		})
	}

	t.Run("nesting depth", func(t *testing.T) {
		shallow := New(testCatalog(), Config{MaxDepth: 3})
		deep := strings.Repeat("(", 5) + "blue" + strings.Repeat(")", 5)
		_, err := shallow.ParseSearch(deep)
		require.ErrorIs(t, err, ErrSyntax)

		_, err = p.ParseSearch(deep)
		require.NoError(t, err)
	})
}

func TestSearchExtent(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"blue", 4},
		{"blue;$top=1", 4},
		{"blue)", 4},
		{"(blue OR red))", 13},
		{`"a;b)";$top=1`, 6},
		{`"a\"b";x`, 6},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			require.Equal(t, tt.want, searchExtent(tt.s))
		})
	}
}
