/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uritoken

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizer_Literals(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"null", Kind_Null},
		{"true", Kind_BooleanValue},
		{"FALSE", Kind_BooleanValue},
		{"'O''Neil'", Kind_StringValue},
		{"42", Kind_IntegerValue},
		{"-42", Kind_IntegerValue},
		{"1.5", Kind_DecimalValue},
		{"-1.5e3", Kind_DoubleValue},
		{"2E10", Kind_DoubleValue},
		{"INF", Kind_DoubleValue},
		{"-INF", Kind_DoubleValue},
		{"NaN", Kind_DoubleValue},
		{"2012-09-03", Kind_DateValue},
		{"2012-09-03T08:09:02Z", Kind_DateTimeOffsetValue},
		{"2012-09-03T08:09:02.123+01:00", Kind_DateTimeOffsetValue},
		{"2012-09-03T08:09Z", Kind_DateTimeOffsetValue},
		{"08:09:02.5", Kind_TimeOfDayValue},
		{"23:59", Kind_TimeOfDayValue},
		{"duration'P1DT2H30M'", Kind_DurationValue},
		{"duration'-PT0.5S'", Kind_DurationValue},
		{"01234567-89ab-cdef-0123-456789abcdef", Kind_GuidValue},
		{"binary'T0RhdGE'", Kind_BinaryValue},
		{"NS.Color'Red,Blue'", Kind_EnumValue},
		{"geography'SRID=0;Point(142.1 64.1)'", Kind_GeographyPoint},
		{"geography'MultiPoint((1 1),(2 2))'", Kind_GeographyMultiPoint},
		{"geometry'Polygon((0 0,1 0,1 1,0 0))'", Kind_GeometryPolygon},
		{"geometry'Collection(Point(1 1))'", Kind_GeometryCollection},
		{`{"a":[1,2]}`, Kind_JSONArrayOrObject},
		{"[1,2,3]", Kind_JSONArrayOrObject},
		{"@p1", Kind_ParameterAliasName},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			require := require.New(t)
			tok, err := New(test.input)
			require.NoError(err)
			require.True(tok.Next(test.kind))
			require.Equal(test.input, tok.Text())
			require.Zero(tok.Position())
			require.True(tok.Next(Kind_EOF))
		})
	}
}

func TestTokenizer_InvalidLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"2012-13-03", Kind_DateValue},
		{"2012-02-30", Kind_DateValue},
		{"24:00", Kind_TimeOfDayValue},
		{"2012-09-03T25:00Z", Kind_DateTimeOffsetValue},
		{"duration'1D'", Kind_DurationValue},
		{"binary'***'", Kind_BinaryValue},
		{"geography'Point(1 1)'", Kind_GeometryPoint},
		{"geography'Point(1 1)'", Kind_GeographyPolygon},
		{"geography'MultiPoint((1 1))'", Kind_GeographyPoint},
		{"1.5", Kind_IntegerValue},
		{"42", Kind_DecimalValue},
		{"42", Kind_StringValue},
		{"[1,2", Kind_JSONArrayOrObject},
		{"True1", Kind_BooleanValue},
	}
	for _, test := range tests {
		t.Run(test.input+"/"+test.kind.String(), func(t *testing.T) {
			require := require.New(t)
			tok, err := New(test.input)
			require.NoError(err)
			require.False(tok.Next(test.kind))
			require.Zero(tok.Offset(), "position must not change")
		})
	}
}

func TestTokenizer_Expression(t *testing.T) {
	require := require.New(t)

	tok, err := New("not contains(Name,'x') and Price add 1 ge -5 or NS.Sub.Type/Tags/any(d:d eq 'a')")
	require.NoError(err)

	steps := []struct {
		kind Kind
		text string
	}{
		{Kind_NotOperator, "not"},
		{Kind_ContainsMethod, "contains"},
		{Kind_ODataIdentifier, "Name"},
		{Kind_Comma, ","},
		{Kind_StringValue, "'x'"},
		{Kind_Close, ")"},
		{Kind_AndOperator, "and"},
		{Kind_ODataIdentifier, "Price"},
		{Kind_AddOperator, "add"},
		{Kind_IntegerValue, "1"},
		{Kind_GreaterThanOrEqualsOperator, "ge"},
		{Kind_IntegerValue, "-5"},
		{Kind_OrOperator, "or"},
		{Kind_QualifiedName, "NS.Sub.Type"},
		{Kind_Slash, "/"},
		{Kind_ODataIdentifier, "Tags"},
		{Kind_Slash, "/"},
		{Kind_Any, "any"},
		{Kind_Open, "("},
		{Kind_ODataIdentifier, "d"},
		{Kind_Colon, ":"},
		{Kind_ODataIdentifier, "d"},
		{Kind_EqualsOperator, "eq"},
		{Kind_StringValue, "'a'"},
		{Kind_Close, ")"},
		{Kind_EOF, ""},
	}
	for _, s := range steps {
		require.True(tok.Next(s.kind), "%v expected at «%s»", s.kind, tok.Remaining())
		require.Equal(s.text, tok.Text())
	}
}

func TestTokenizer_KindDirected(t *testing.T) {
	t.Run("operators require whitespace", func(t *testing.T) {
		require := require.New(t)
		tok, err := New("a eq(1)")
		require.NoError(err)
		require.True(tok.Next(Kind_ODataIdentifier))
		require.False(tok.Next(Kind_EqualsOperator))
	})

	t.Run("method requires parenthesis", func(t *testing.T) {
		require := require.New(t)
		tok, err := New("geo.distance (a,b)")
		require.NoError(err)
		require.False(tok.Next(Kind_GeoDistanceMethod))
		require.True(tok.Next(Kind_QualifiedName))
		require.Equal("geo.distance", tok.Text())
	})

	t.Run("qualified name stops before star", func(t *testing.T) {
		require := require.New(t)
		tok, err := New("Org.Sales.*")
		require.NoError(err)
		require.True(tok.Next(Kind_QualifiedName))
		require.Equal("Org.Sales", tok.Text())
		require.True(tok.Next(Kind_Dot))
		require.True(tok.Next(Kind_Star))
		require.True(tok.Next(Kind_EOF))
	})

	t.Run("single identifier is not a qualified name", func(t *testing.T) {
		require := require.New(t)
		tok, err := New("Sales.*")
		require.NoError(err)
		require.False(tok.Next(Kind_QualifiedName))
		require.True(tok.Next(Kind_ODataIdentifier))
	})

	t.Run("minus", func(t *testing.T) {
		require := require.New(t)
		tok, err := New("- Price")
		require.NoError(err)
		require.True(tok.Next(Kind_MinusOperator))
		require.True(tok.Next(Kind_ODataIdentifier))

		tok, err = New("-INF")
		require.NoError(err)
		require.False(tok.Next(Kind_MinusOperator))
		require.True(tok.Next(Kind_DoubleValue))
	})

	t.Run("order suffixes", func(t *testing.T) {
		require := require.New(t)
		tok, err := New("Name desc,Price ascending")
		require.NoError(err)
		require.True(tok.Next(Kind_ODataIdentifier))
		require.False(tok.Next(Kind_AscSuffix))
		require.True(tok.Next(Kind_DescSuffix))
		require.Equal("desc", tok.Text())
		require.True(tok.Next(Kind_Comma))
		require.True(tok.Next(Kind_ODataIdentifier))
		require.False(tok.Next(Kind_AscSuffix))
	})

	t.Run("too long identifier", func(t *testing.T) {
		require := require.New(t)
		long := make([]byte, maxIdentifierLength+1)
		for i := range long {
			long[i] = 'a'
		}
		tok, err := New(string(long))
		require.NoError(err)
		require.False(tok.Next(Kind_ODataIdentifier))
	})

	t.Run("whitespace", func(t *testing.T) {
		require := require.New(t)
		tok, err := New("(  a )")
		require.NoError(err)
		require.True(tok.Next(Kind_Open))
		require.False(tok.Next(Kind_ODataIdentifier))
		require.True(tok.Next(Kind_BWS))
		require.True(tok.Next(Kind_ODataIdentifier))
		require.Equal(3, tok.Position())
		require.True(tok.Next(Kind_BWS))
		require.True(tok.Next(Kind_Close))
		require.True(tok.Next(Kind_BWS))
		require.True(tok.Next(Kind_EOF))
	})
}

func TestTokenizer_JSON(t *testing.T) {
	require := require.New(t)

	tok, err := New(`{"n":"it's"}/x eq 1`)
	require.NoError(err)

	m := tok.Mark()
	require.True(tok.Next(Kind_JSONArrayOrObject))
	require.Equal(`{"n":"it's"}`, tok.Text())
	require.True(tok.Next(Kind_Slash))

	tok.Reset(m)
	require.True(tok.Next(Kind_JSONArrayOrObject), "JSON token must survive reset")
	require.Equal(`{"n":"it's"}`, tok.Text())
	require.True(tok.Next(Kind_Slash))
	require.True(tok.Next(Kind_ODataIdentifier))
	require.Equal("x", tok.Text())
	require.True(tok.Next(Kind_EqualsOperator))
	require.True(tok.Next(Kind_IntegerValue))
	require.True(tok.Next(Kind_EOF))
}

func TestTokenizer_MarkReset(t *testing.T) {
	require := require.New(t)

	tok, err := New("a/b")
	require.NoError(err)
	require.True(tok.Next(Kind_ODataIdentifier))
	m := tok.Mark()
	require.True(tok.Next(Kind_Slash))
	require.True(tok.Next(Kind_ODataIdentifier))
	require.Equal("b", tok.Text())

	tok.Reset(m)
	require.Equal("a", tok.Text())
	require.Equal("/b", tok.Remaining())
	require.Equal("a/b", tok.Input())
}

func TestTokenizer_Skip(t *testing.T) {
	require := require.New(t)

	tok, err := New(`$search="don't";$top=5`)
	require.NoError(err)
	require.True(tok.Next(Kind_Search))
	require.True(tok.Next(Kind_Eq))
	require.NoError(tok.Skip(len(`"don't"`)))
	require.Equal(`"don't"`, tok.Text())
	require.Equal(8, tok.Position())
	require.True(tok.Next(Kind_Semi))
	require.True(tok.Next(Kind_Top))
	require.True(tok.Next(Kind_Eq))
	require.True(tok.Next(Kind_IntegerValue))
	require.True(tok.Next(Kind_EOF))
}

func TestSearch(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		require := require.New(t)
		tokens, err := Search(`"blue green" AND NOT (red OR yellow) shoe "say \"hi\""`)
		require.NoError(err)

		kinds := []SearchKind{}
		texts := []string{}
		for _, tok := range tokens {
			kinds = append(kinds, tok.Kind)
			texts = append(texts, tok.Text)
		}
		require.Equal([]SearchKind{
			SearchKind_Phrase, SearchKind_And, SearchKind_Not, SearchKind_Open, SearchKind_Word,
			SearchKind_Or, SearchKind_Word, SearchKind_Close, SearchKind_Word, SearchKind_Phrase,
		}, kinds)
		require.Equal([]string{"blue green", "AND", "NOT", "(", "red", "OR", "yellow", ")", "shoe", `say "hi"`}, texts)
		require.Equal(13, tokens[1].Position)
	})

	t.Run("operators are case sensitive", func(t *testing.T) {
		require := require.New(t)
		tokens, err := Search("and or")
		require.NoError(err)
		require.Len(tokens, 2)
		require.Equal(SearchKind_Word, tokens[0].Kind)
		require.Equal(SearchKind_Word, tokens[1].Kind)
	})

	t.Run("errors", func(t *testing.T) {
		for _, input := range []string{`"unterminated`, `a ""`} {
			_, err := Search(input)
			require.ErrorIs(t, err, ErrUnexpectedInputError, input)
			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
		}
	})
}

func TestKind_String(t *testing.T) {
	require := require.New(t)
	require.Equal("EOF", Kind_EOF.String())
	require.Equal("GeoDistanceMethod", Kind_GeoDistanceMethod.String())
	require.Equal("Kind(250)", Kind(250).String())
	require.Equal("Phrase", SearchKind_Phrase.String())
	require.Equal("SearchKind(99)", SearchKind(99).String())
}
